package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&StartCmd{})
}

const welcomeText = "👋 *Welcome to cartbot!*\n" +
	"I keep one shared shopping list for everyone in this chat. " +
	"Add items, check them off at the store, and clear the list when you're done.\n\n"

// StartCmd implements the start command.
type StartCmd struct{}

func (c *StartCmd) Name() string     { return "start" }
func (c *StartCmd) Synopsis() string { return "Show the welcome message" }

func (c *StartCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	text := welcomeText + "*Commands*\n" + render.CommandSummary(summaryEntries(DefaultRegistry))
	return m.Send(msg.ChatID, chat.Reply{Text: text})
}
