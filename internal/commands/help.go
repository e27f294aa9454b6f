package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/render"
	"cartbot/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string     { return "help" }
func (c *HelpCmd) Synopsis() string { return "Show commands and categories" }

func (c *HelpCmd) Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error {
	text := "*Commands*\n" + render.CommandSummary(summaryEntries(DefaultRegistry)) +
		"\n" + render.Categories()
	return m.Send(msg.ChatID, chat.Reply{Text: text})
}

// summaryEntries collects the name and synopsis of every registered
// command for the summary, in name order.
func summaryEntries(r *Registry) []render.CommandEntry {
	var entries []render.CommandEntry
	for _, c := range r.All() {
		entries = append(entries, render.CommandEntry{Name: c.Name(), Synopsis: c.Synopsis()})
	}
	return entries
}
