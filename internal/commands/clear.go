package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command. There is no confirmation step;
// the list is emptied immediately.
type ClearCmd struct{}

func (c *ClearCmd) Name() string     { return "clear" }
func (c *ClearCmd) Synopsis() string { return "Empty the whole list" }

func (c *ClearCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	svc.Clear()
	return m.Send(msg.ChatID, chat.Reply{Text: render.ClearedText})
}
