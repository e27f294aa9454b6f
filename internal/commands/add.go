package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. It starts the add-item dialogue;
// the item itself arrives through category selection and free text.
type AddCmd struct{}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Add an item to the list" }

func (c *AddCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	sessions.Begin(msg.ChatID)
	return m.Send(msg.ChatID, render.CategoryMenu())
}
