// Package bot routes inbound chat updates to commands, the add-item
// dialogue, and button actions.
package bot

import (
	"context"
	"sync"

	"cartbot/internal/chat"
	"cartbot/internal/commands"
	"cartbot/internal/config"
	"cartbot/internal/list"
	"cartbot/internal/session"
)

// Version is reported at startup.
const Version = "0.1.0"

// Bot holds the shared state every handler works against.
type Bot struct {
	cfg      *config.Config
	m        chat.Messenger
	items    *list.Service
	sessions *session.Tracker
	registry *commands.Registry
}

// New creates a bot.
func New(cfg *config.Config, m chat.Messenger, items *list.Service, sessions *session.Tracker, registry *commands.Registry) *Bot {
	return &Bot{
		cfg:      cfg,
		m:        m,
		items:    items,
		sessions: sessions,
		registry: registry,
	}
}

// Run consumes updates until ctx is cancelled or the channel closes.
// Every update is handled in its own goroutine, so handlers from
// different chats never block each other; in-flight handlers are waited
// for before Run returns.
func (b *Bot) Run(ctx context.Context, updates <-chan chat.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.Handle(upd)
			}()
		}
	}
}
