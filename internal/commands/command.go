// Package commands provides the chat command interface and implementations.
package commands

import (
	"cartbot/internal/chat"
	"cartbot/internal/list"
	"cartbot/internal/session"
)

// Prefix is the character that marks a message as a command.
const Prefix = "/"

// Command defines the interface for chat commands.
type Command interface {
	// Name returns the command name without the prefix.
	Name() string

	// Synopsis returns a short description for the command summary.
	Synopsis() string

	// Run executes the command for the message that triggered it.
	// Replies go back through m.
	Run(svc *list.Service, sessions *session.Tracker, m chat.Messenger, msg chat.Message) error
}
