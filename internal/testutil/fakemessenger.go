// Package testutil provides testing utilities.
package testutil

import (
	"sync"

	"cartbot/internal/chat"
)

// SentReply records one Send call.
type SentReply struct {
	ChatID int64
	Reply  chat.Reply
}

// EditedReply records one Edit call.
type EditedReply struct {
	ChatID    int64
	MessageID int
	Reply     chat.Reply
}

// CallbackAnswer records one Answer call.
type CallbackAnswer struct {
	CallbackID string
	Text       string
}

// FakeMessenger is an in-memory implementation of chat.Messenger for
// testing. It records every call; failed calls are not recorded.
type FakeMessenger struct {
	mu      sync.Mutex
	sent    []SentReply
	edits   []EditedReply
	answers []CallbackAnswer

	// Error injection for testing
	SendErr   error
	EditErr   error
	AnswerErr error
}

// NewFakeMessenger creates an empty FakeMessenger.
func NewFakeMessenger() *FakeMessenger {
	return &FakeMessenger{}
}

// Send implements chat.Messenger.
func (f *FakeMessenger) Send(chatID int64, r chat.Reply) error {
	if f.SendErr != nil {
		return f.SendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, SentReply{ChatID: chatID, Reply: r})
	return nil
}

// Edit implements chat.Messenger.
func (f *FakeMessenger) Edit(chatID int64, messageID int, r chat.Reply) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, EditedReply{ChatID: chatID, MessageID: messageID, Reply: r})
	return nil
}

// Answer implements chat.Messenger.
func (f *FakeMessenger) Answer(callbackID, text string) error {
	if f.AnswerErr != nil {
		return f.AnswerErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, CallbackAnswer{CallbackID: callbackID, Text: text})
	return nil
}

// Sent returns every recorded Send call in order.
func (f *FakeMessenger) Sent() []SentReply {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentReply, len(f.sent))
	copy(out, f.sent)
	return out
}

// LastSent returns the most recent Send call and whether one exists.
func (f *FakeMessenger) LastSent() (SentReply, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return SentReply{}, false
	}
	return f.sent[len(f.sent)-1], true
}

// Edits returns every recorded Edit call in order.
func (f *FakeMessenger) Edits() []EditedReply {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]EditedReply, len(f.edits))
	copy(out, f.edits)
	return out
}

// Answers returns every recorded Answer call in order.
func (f *FakeMessenger) Answers() []CallbackAnswer {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CallbackAnswer, len(f.answers))
	copy(out, f.answers)
	return out
}

// LastAnswer returns the most recent Answer call and whether one exists.
func (f *FakeMessenger) LastAnswer() (CallbackAnswer, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.answers) == 0 {
		return CallbackAnswer{}, false
	}
	return f.answers[len(f.answers)-1], true
}
