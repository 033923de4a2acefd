// Package grapheme wraps uniseg and go-runewidth for the cell model used by
// the buffer and the editor renderer.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
// Carriage returns are dropped; callers split lines on '\n' first.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		s := g.Str()
		if s == "\r" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return len(Split(text))
}

// Width returns the terminal cell width of a single cluster.
// Tabs are reported as tabWidth cells.
func Width(cluster string, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			return 1
		}
		return tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
