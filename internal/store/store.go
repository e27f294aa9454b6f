// Package store persists the shopping list as a JSON file on disk.
//
// The whole list is read and written in one piece. The file is plain
// indented JSON so it stays easy to inspect and edit by hand.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Item is one entry on the shopping list.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
}

// document is the on-disk shape of the list file.
type document struct {
	Items []Item `json:"items"`
}

// Store reads and writes the shopping list file.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file does not have to
// exist yet; it is created on the first Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the full list from disk. A missing file is not an error and
// yields an empty list.
func (s *Store) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read list file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode list file: %w", err)
	}
	return doc.Items, nil
}

// Save writes the full list to disk, replacing the previous contents.
func (s *Store) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}

	data, err := json.MarshalIndent(document{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode list file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write list file: %w", err)
	}
	return nil
}
