package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// First returns the first rune of cluster, or -1 for an empty cluster.
func First(cluster string) rune {
	for _, r := range cluster {
		return r
	}
	return -1
}

// IsDigit reports whether cluster starts with an ASCII decimal digit.
func IsDigit(cluster string) bool {
	r := First(cluster)
	return r >= '0' && r <= '9'
}

// Width returns the terminal cell width of text.
//
// Zero-width results fall back to uniseg so that combining sequences still
// occupy a cell.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}
