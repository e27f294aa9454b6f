// Package chat defines the transport-agnostic types for the conversation.
package chat

// Message is an inbound free-text or command message.
type Message struct {
	ChatID int64
	Text   string
}

// Callback is an inbound button press on a previously sent keyboard.
type Callback struct {
	// ID identifies the press for acknowledgement.
	ID string

	ChatID int64

	// MessageID is the message carrying the pressed keyboard.
	MessageID int

	// Data is the action token bound to the button.
	Data string
}

// Update is one inbound chat event. Exactly one field is set.
type Update struct {
	Message  *Message
	Callback *Callback
}

// Button is one inline keyboard button.
type Button struct {
	Label string
	Data  string
}

// Reply is an outbound message, optionally with an inline keyboard.
// Keyboard rows are rendered in order.
type Reply struct {
	Text     string
	Keyboard [][]Button
}

// Messenger defines the interface for the chat transport.
// Handlers never import the Telegram SDK directly.
type Messenger interface {
	// Send delivers a new message to the chat.
	Send(chatID int64, r Reply) error

	// Edit rewrites a previously sent message in place.
	Edit(chatID int64, messageID int, r Reply) error

	// Answer acknowledges a button press. An empty text acknowledges
	// silently; a non-empty text shows a transient notice to the user.
	Answer(callbackID, text string) error
}
