package keyboard

import "golang.org/x/text/unicode/norm"

// NBSP is what the space key types.
const NBSP = "\u00a0"

// Normalize converts a key symbol to the text handed to an input: spaces
// become non-breaking spaces, the HTML entities used in layouts are decoded,
// and the result is NFC composed.
func Normalize(symbol string) string {
	switch symbol {
	case " ", "&nbsp;":
		return NBSP
	case "&lt;":
		return "<"
	case "&gt;":
		return ">"
	case "&amp;":
		return "&"
	}
	return norm.NFC.String(symbol)
}
