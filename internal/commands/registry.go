package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds []Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a command to the registry.
// Returns an error if the name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cmds {
		if existing.Name() == c.Name() {
			return fmt.Errorf("command already registered: %s", c.Name())
		}
	}

	r.cmds = append(r.cmds, c)
	return nil
}

// All returns all commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, len(r.cmds))
	copy(result, r.cmds)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Dispatch finds the command triggered by a message text. Matching is a
// case-sensitive substring search for the prefixed name, so the command
// may appear anywhere in the text; the first match in name order wins.
func (r *Registry) Dispatch(text string) (Command, bool) {
	for _, c := range r.All() {
		if strings.Contains(text, Prefix+c.Name()) {
			return c, true
		}
	}
	return nil, false
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
