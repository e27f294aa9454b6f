package bot

import (
	"log"
	"strings"

	"cartbot/internal/action"
	"cartbot/internal/category"
	"cartbot/internal/chat"
	"cartbot/internal/commands"
	"cartbot/internal/render"
	"cartbot/internal/session"
	"cartbot/internal/store"
)

// unknownCommandText answers messages that look like a command but match
// none.
const unknownCommandText = "I don't know that command. Send /help for the list."

// unknownCategoryText answers a category button whose key is not in the
// registry, which can happen with menus from an older deployment.
const unknownCategoryText = "That category does not exist."

// Handle processes one update.
func (b *Bot) Handle(upd chat.Update) {
	switch {
	case upd.Message != nil:
		b.handleMessage(*upd.Message)
	case upd.Callback != nil:
		b.handleCallback(*upd.Callback)
	}
}

func (b *Bot) handleMessage(msg chat.Message) {
	// Command matching runs before dialogue input so a stuck flow can
	// always be escaped. A command anywhere in the text triggers it.
	if cmd, ok := b.registry.Dispatch(msg.Text); ok {
		if err := cmd.Run(b.items, b.sessions, b.m, msg); err != nil {
			log.Printf("command %s: %v", cmd.Name(), err)
		}
		return
	}

	// A message that looks like a command but matches none gets a hint
	// instead of being fed to the dialogue.
	if strings.HasPrefix(msg.Text, commands.Prefix) {
		b.send(msg.ChatID, chat.Reply{Text: unknownCommandText})
		return
	}

	b.advanceDialogue(msg)
}

func (b *Bot) advanceDialogue(msg chat.Message) {
	draft, outcome := b.sessions.Advance(msg.ChatID, msg.Text)
	switch outcome {
	case session.NeedQuantity:
		b.send(msg.ChatID, chat.Reply{Text: render.QuantityPrompt(draft.Name)})

	case session.Completed:
		it := store.Item{
			Name:     draft.Name,
			Quantity: draft.Quantity,
			Category: draft.Category,
		}
		b.items.Add(it)
		b.send(msg.ChatID, chat.Reply{Text: render.Added(it)})

	default:
		b.debugf("chat %d: dropping text outside any dialogue", msg.ChatID)
	}
}

func (b *Bot) handleCallback(cb chat.Callback) {
	act, err := action.Parse(cb.Data)
	if err != nil {
		b.debugf("chat %d: callback %q: %v", cb.ChatID, cb.Data, err)
		b.answer(cb.ID, "")
		return
	}

	switch act.Kind {
	case action.PickCategory:
		b.pickCategory(cb, act.Key)
	case action.Toggle:
		b.toggle(cb, act.Index)
	case action.Remove:
		b.remove(cb, act.Index)
	}
}

func (b *Bot) pickCategory(cb chat.Callback, key string) {
	if !category.Valid(key) {
		b.answer(cb.ID, unknownCategoryText)
		return
	}

	b.sessions.ChooseCategory(cb.ChatID, key)
	b.answer(cb.ID, "")
	b.editOrSend(cb, chat.Reply{Text: render.NamePrompt(key)})
}

func (b *Bot) toggle(cb chat.Callback, index int) {
	it, err := b.items.ToggleAt(index)
	if err != nil {
		b.answer(cb.ID, render.StaleActionText)
		return
	}

	b.answer(cb.ID, render.Toggled(it))
	b.editOrSend(cb, render.List(b.items.Items()))
}

func (b *Bot) remove(cb chat.Callback, index int) {
	it, err := b.items.RemoveAt(index)
	if err != nil {
		b.answer(cb.ID, render.StaleActionText)
		return
	}

	b.answer(cb.ID, render.Removed(it))
	b.editOrSend(cb, render.RemoveMenu(b.items.Items()))
}

// editOrSend rewrites the message carrying the pressed keyboard so its
// positions stay current, falling back to a fresh message if the edit is
// rejected.
func (b *Bot) editOrSend(cb chat.Callback, r chat.Reply) {
	if err := b.m.Edit(cb.ChatID, cb.MessageID, r); err != nil {
		log.Printf("edit message %d in chat %d: %v", cb.MessageID, cb.ChatID, err)
		b.send(cb.ChatID, r)
	}
}

func (b *Bot) send(chatID int64, r chat.Reply) {
	if err := b.m.Send(chatID, r); err != nil {
		log.Printf("send to chat %d: %v", chatID, err)
	}
}

func (b *Bot) answer(callbackID, text string) {
	if err := b.m.Answer(callbackID, text); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func (b *Bot) debugf(format string, args ...any) {
	if b.cfg.Debug {
		log.Printf(format, args...)
	}
}
