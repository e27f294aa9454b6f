// Package action encodes and decodes the data tokens carried by inline
// keyboard buttons.
package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies what a button press asks for.
type Kind int

const (
	// PickCategory selects the category for the item being added.
	PickCategory Kind = iota + 1
	// Toggle flips the checked state of one list position.
	Toggle
	// Remove deletes one list position.
	Remove
)

// Action is a decoded button token.
type Action struct {
	Kind Kind

	// Key is the category key. Set only for PickCategory.
	Key string

	// Index is the zero-based list position. Set only for Toggle and Remove.
	Index int
}

// ErrUnknownAction indicates a token that matches no known form.
var ErrUnknownAction = errors.New("unknown action")

const (
	categoryPrefix = "category_"
	togglePrefix   = "toggle_"
	removePrefix   = "remove_"
)

// CategoryToken returns the button token that selects the category key.
func CategoryToken(key string) string {
	return categoryPrefix + key
}

// ToggleToken returns the button token that toggles the item at index.
func ToggleToken(index int) string {
	return togglePrefix + strconv.Itoa(index)
}

// RemoveToken returns the button token that removes the item at index.
func RemoveToken(index int) string {
	return removePrefix + strconv.Itoa(index)
}

// Parse decodes a button token.
//
// Token forms:
//
//	category_<key>    pick a category while adding an item
//	toggle_<index>    toggle the checked state at a zero-based position
//	remove_<index>    remove the item at a zero-based position
//
// Anything else yields ErrUnknownAction. A malformed index yields its own
// error so the caller can tell a stale button from a corrupt one.
func Parse(data string) (Action, error) {
	switch {
	case strings.HasPrefix(data, categoryPrefix):
		return Action{Kind: PickCategory, Key: data[len(categoryPrefix):]}, nil

	case strings.HasPrefix(data, togglePrefix):
		i, err := parseIndex(data[len(togglePrefix):])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: Toggle, Index: i}, nil

	case strings.HasPrefix(data, removePrefix):
		i, err := parseIndex(data[len(removePrefix):])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: Remove, Index: i}, nil
	}

	return Action{}, ErrUnknownAction
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position: %q", s)
	}
	return i, nil
}
