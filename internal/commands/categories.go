package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&CategoriesCmd{})
}

// CategoriesCmd implements the categories command.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Name() string     { return "categories" }
func (c *CategoriesCmd) Synopsis() string { return "List the categories" }

func (c *CategoriesCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	return m.Send(msg.ChatID, chat.Reply{Text: render.Categories()})
}
