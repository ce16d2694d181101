package model

import (
	"strings"
	"unicode"
)

// DefaultIcon is the generic glyph for categories without a dedicated one.
const DefaultIcon = "📦"

// Category represents a named, iconized grouping of products. Default
// categories are seeded at first start and cannot be deleted.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault"`
}

// Slugify derives a category id from a display name: lowercased, with runs
// of whitespace replaced by a single underscore.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Capitalize upper-cases the first rune of an id, producing the display name
// for categories synthesized from orphaned product references.
func Capitalize(id string) string {
	if id == "" {
		return ""
	}
	r := []rune(id)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// categoryIcons is the fixed id→glyph table for well-known category ids.
// The set is closed; anything else falls back to DefaultIcon.
var categoryIcons = map[string]string{
	"carne":      "🥩",
	"verdure":    "🥬",
	"frutta":     "🍎",
	"formaggi":   "🧀",
	"pasta":      "🍝",
	"condimenti": "🫒",
	"pesce":      "🐟",
	"dolci":      "🍰",
	"pane":       "🍞",
	"bevande":    "🥤",
	"latticini":  "🥛",
	"spezie":     "🌶️",
	"conserve":   "🥫",
	"surgelati":  "🧊",
	"altri":      "📦",
}

// IconFor returns the glyph for a known category id, or DefaultIcon.
func IconFor(id string) string {
	if icon, ok := categoryIcons[id]; ok {
		return icon
	}
	return DefaultIcon
}
