package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string     { return "remove" }
func (c *RemoveCmd) Synopsis() string { return "Remove an item from the list" }

func (c *RemoveCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	return m.Send(msg.ChatID, render.RemoveMenu(svc.Items()))
}
