// Package session tracks the per-chat add-item dialogue.
//
// Each chat walks a short flow: pick a category, send an item name, send a
// quantity. The tracker holds the flow state in memory only; a restart
// forgets every open dialogue, which costs the user at most one retyped
// item.
package session

import "sync"

// Phase is a step of the add-item dialogue.
type Phase int

const (
	// None means the chat has no dialogue in progress.
	None Phase = iota
	// AwaitingName means the bot expects the item name next.
	AwaitingName
	// AwaitingQuantity means the bot expects the quantity next.
	AwaitingQuantity
)

// Outcome reports what Advance did with a free-text message.
type Outcome int

const (
	// Ignored means the message did not fit the dialogue and was dropped.
	Ignored Outcome = iota
	// NeedQuantity means the name was recorded and a quantity is expected.
	NeedQuantity
	// Completed means the dialogue finished and the draft is ready.
	Completed
)

// Draft carries the collected item fields.
type Draft struct {
	Category string
	Name     string
	Quantity string
}

type state struct {
	phase    Phase
	category string
	name     string
}

// Tracker holds the dialogue state for every chat. Safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	states map[int64]*state
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[int64]*state)}
}

// Begin starts a fresh dialogue for the chat, replacing any previous one.
// No category is chosen yet, so free text is ignored until one is.
func (t *Tracker) Begin(chatID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.states[chatID] = &state{phase: AwaitingName}
}

// ChooseCategory records the chosen category and prompts for a name. It
// restarts the dialogue if one was already past this point, and starts one
// if none was in progress.
func (t *Tracker) ChooseCategory(chatID int64, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.states[chatID] = &state{phase: AwaitingName, category: key}
}

// Advance feeds a free-text message into the chat's dialogue. It returns
// the draft collected so far and what happened. On Completed the dialogue
// is over and the chat is back to no state.
func (t *Tracker) Advance(chatID int64, text string) (Draft, Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.states[chatID]
	if !ok {
		return Draft{}, Ignored
	}

	switch st.phase {
	case AwaitingName:
		if st.category == "" {
			// A name means nothing until a category was picked.
			return Draft{}, Ignored
		}
		st.name = text
		st.phase = AwaitingQuantity
		return Draft{Category: st.category, Name: st.name}, NeedQuantity

	case AwaitingQuantity:
		draft := Draft{Category: st.category, Name: st.name, Quantity: text}
		delete(t.states, chatID)
		return draft, Completed
	}

	return Draft{}, Ignored
}

// Phase returns the chat's current dialogue step.
func (t *Tracker) Phase(chatID int64) Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.states[chatID]
	if !ok {
		return None
	}
	return st.phase
}
