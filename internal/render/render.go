// Package render builds the replies and menus shown to the user.
package render

import (
	"fmt"
	"strings"

	"cartbot/internal/action"
	"cartbot/internal/category"
	"cartbot/internal/chat"
	"cartbot/internal/store"
)

const (
	// CheckedMark marks an item that has been checked off.
	CheckedMark = "✅"
	// UncheckedMark marks an item still to buy.
	UncheckedMark = "⬜"
)

// EmptyListText is shown whenever a list view is requested and the list
// has nothing on it.
const EmptyListText = "The shopping list is empty. Send /add to put something on it."

// StaleActionText is shown when a button references a position that no
// longer exists.
const StaleActionText = "That item is no longer on the list."

// ClearedText confirms that the list was emptied.
const ClearedText = "🗑 The list was cleared."

// List builds the list view. Every item is a button that toggles its
// checked state; positions are bound at render time.
func List(items []store.Item) chat.Reply {
	if len(items) == 0 {
		return chat.Reply{Text: EmptyListText}
	}

	rows := make([][]chat.Button, 0, len(items))
	for i, it := range items {
		rows = append(rows, []chat.Button{{
			Label: itemLabel(it),
			Data:  action.ToggleToken(i),
		}})
	}

	return chat.Reply{
		Text:     "🛒 *Shopping list*\nTap an item to check it off or back on.",
		Keyboard: rows,
	}
}

// CategoryMenu builds the category picker shown at the start of the
// add-flow, two categories per row.
func CategoryMenu() chat.Reply {
	var rows [][]chat.Button
	var row []chat.Button
	for _, e := range category.Entries() {
		row = append(row, chat.Button{
			Label: e.Glyph + " " + e.Key,
			Data:  action.CategoryToken(e.Key),
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return chat.Reply{
		Text:     "What kind of item is it?",
		Keyboard: rows,
	}
}

// RemoveMenu builds the removal picker. Every item is a button that
// removes it; positions are bound at render time.
func RemoveMenu(items []store.Item) chat.Reply {
	if len(items) == 0 {
		return chat.Reply{Text: EmptyListText}
	}

	rows := make([][]chat.Button, 0, len(items))
	for i, it := range items {
		rows = append(rows, []chat.Button{{
			Label: itemLabel(it),
			Data:  action.RemoveToken(i),
		}})
	}

	return chat.Reply{
		Text:     "Which item should go?",
		Keyboard: rows,
	}
}

// Categories lists every category with its glyph, one per line.
func Categories() string {
	var b strings.Builder
	b.WriteString("*Categories*\n")
	for _, e := range category.Entries() {
		fmt.Fprintf(&b, "%s %s\n", e.Glyph, e.Key)
	}
	return b.String()
}

// CommandEntry is one line of the command summary.
type CommandEntry struct {
	Name     string
	Synopsis string
}

// CommandSummary formats the command reference.
// Format: "/{NAME} - {SYNOPSIS}\n" per entry.
func CommandSummary(entries []CommandEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "/%s - %s\n", e.Name, e.Synopsis)
	}
	return b.String()
}

// NamePrompt asks for the item name after a category was picked.
func NamePrompt(categoryKey string) string {
	return fmt.Sprintf("%s %s it is. What's the item called?",
		category.GlyphOrFallback(categoryKey), categoryKey)
}

// QuantityPrompt asks for the quantity after a name arrived.
func QuantityPrompt(name string) string {
	return fmt.Sprintf("How much %q do you need? Send it as text, e.g. \"2\" or \"500 g\".", name)
}

// Added confirms a completed add-flow.
func Added(it store.Item) string {
	return "Added: " + plainLabel(it)
}

// Removed confirms a removal.
func Removed(it store.Item) string {
	return "Removed: " + plainLabel(it)
}

// Toggled describes the item's new checked state, kept short because it is
// shown as a transient notice.
func Toggled(it store.Item) string {
	if it.Checked {
		return "Checked: " + it.Name
	}
	return "Unchecked: " + it.Name
}

// itemLabel formats an item for a button.
// Format: "{MARK} {GLYPH} {NAME}" plus " ({QUANTITY})" when a quantity is set.
func itemLabel(it store.Item) string {
	mark := UncheckedMark
	if it.Checked {
		mark = CheckedMark
	}
	return mark + " " + plainLabel(it)
}

// plainLabel formats an item without its checked mark.
func plainLabel(it store.Item) string {
	label := category.GlyphOrFallback(it.Category) + " " + it.Name
	if it.Quantity != "" {
		label += " (" + it.Quantity + ")"
	}
	return label
}
