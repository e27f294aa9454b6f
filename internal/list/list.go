// Package list implements the shopping list operations on top of the store.
//
// Every operation is a single load, mutate, save cycle against the file.
// Nothing is cached between calls, so a rendered menu always reflects the
// list as it was at render time. Concurrent handlers can interleave and the
// last save wins; the list is small and shared by a handful of people, so
// lost updates are tolerated rather than locked out.
package list

import (
	"errors"
	"log"

	"cartbot/internal/store"
)

// ErrOutOfRange indicates a position that is not a valid index into the
// current list, typically from a button rendered against an older list.
var ErrOutOfRange = errors.New("position out of range")

// Service exposes the list operations.
type Service struct {
	store *store.Store
}

// New returns a service backed by st.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Items returns the current list.
func (s *Service) Items() []store.Item {
	return s.load()
}

// Add appends it to the end of the list. Duplicates are allowed.
func (s *Service) Add(it store.Item) {
	items := s.load()
	s.save(append(items, it))
}

// RemoveAt deletes the item at the zero-based position i and returns it.
// Positions outside the current list yield ErrOutOfRange and leave the
// list untouched.
func (s *Service) RemoveAt(i int) (store.Item, error) {
	items := s.load()
	if i < 0 || i >= len(items) {
		return store.Item{}, ErrOutOfRange
	}

	removed := items[i]
	s.save(append(items[:i], items[i+1:]...))
	return removed, nil
}

// ToggleAt flips the checked state of the item at the zero-based position i
// and returns the item with its new state. Positions outside the current
// list yield ErrOutOfRange and leave the list untouched.
func (s *Service) ToggleAt(i int) (store.Item, error) {
	items := s.load()
	if i < 0 || i >= len(items) {
		return store.Item{}, ErrOutOfRange
	}

	items[i].Checked = !items[i].Checked
	s.save(items)
	return items[i], nil
}

// Clear empties the list.
func (s *Service) Clear() {
	s.save(nil)
}

// load reads the list, degrading to an empty list if the file cannot be
// read or parsed. The error is logged; the bot keeps serving.
func (s *Service) load() []store.Item {
	items, err := s.store.Load()
	if err != nil {
		log.Printf("load shopping list: %v", err)
		return nil
	}
	return items
}

// save writes the list. A failed write is logged and otherwise swallowed;
// the user is not told.
func (s *Service) save(items []store.Item) {
	if err := s.store.Save(items); err != nil {
		log.Printf("save shopping list: %v", err)
	}
}
