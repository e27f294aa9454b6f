package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string     { return "list" }
func (c *ListCmd) Synopsis() string { return "Show the shopping list" }

func (c *ListCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	return m.Send(msg.ChatID, render.List(svc.Items()))
}
