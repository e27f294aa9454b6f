// Package category defines the fixed set of shopping categories.
package category

// Entry pairs a category key with the glyph shown next to its items.
type Entry struct {
	Key   string
	Glyph string
}

// Fallback is the glyph used for items whose category is unknown.
const Fallback = "❔"

// entries lists every category in menu order.
var entries = []Entry{
	{Key: "fruits", Glyph: "🍎"},
	{Key: "vegetables", Glyph: "🥕"},
	{Key: "dairy", Glyph: "🥛"},
	{Key: "meat", Glyph: "🥩"},
	{Key: "bakery", Glyph: "🍞"},
	{Key: "drinks", Glyph: "🧃"},
	{Key: "frozen", Glyph: "🧊"},
	{Key: "household", Glyph: "🧽"},
	{Key: "other", Glyph: "🛒"},
}

// Entries returns all categories in menu order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Glyph returns the glyph for key and whether the key is known.
func Glyph(key string) (string, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Glyph, true
		}
	}
	return "", false
}

// GlyphOrFallback returns the glyph for key, or Fallback if the key is
// unknown.
func GlyphOrFallback(key string) string {
	if g, ok := Glyph(key); ok {
		return g
	}
	return Fallback
}

// Valid reports whether key names a known category.
func Valid(key string) bool {
	_, ok := Glyph(key)
	return ok
}
