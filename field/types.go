package field

import (
	"fmt"
	"strings"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// Cell is one position of the character buffer.
//
// Business logic reads Value; presentation reads DisplayValue.
type Cell struct {
	Value        string
	DisplayValue string
	IsUserInput  bool
	IsEditable   bool
}

// CursorMode controls how a write at the cursor affects neighbouring cells.
type CursorMode uint8

const (
	// CursorInsert shifts subsequent cells right.
	CursorInsert CursorMode = iota
	// CursorReplace overwrites the cell at the cursor.
	CursorReplace
	// CursorReplaceAll is reserved for whole-buffer replacement.
	CursorReplaceAll
)

func (m CursorMode) String() string {
	switch m {
	case CursorInsert:
		return "insert"
	case CursorReplace:
		return "replace"
	case CursorReplaceAll:
		return "replace-all"
	default:
		return fmt.Sprintf("CursorMode(%d)", uint8(m))
	}
}

type Cursor struct {
	Position int
	Mode     CursorMode
}

// State is a read-only snapshot of a Field.
type State struct {
	Cells        []Cell
	IsValid      bool
	HasUserInput bool
	Value        string
}

// Mode selects the editing strategy.
type Mode string

const (
	ModeString   Mode = "string"
	ModeMask     Mode = "mask"
	ModeFraction Mode = "fraction"
)

// ParseMode converts a declared mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeString, ModeMask, ModeFraction:
		return m, nil
	default:
		return "", fmt.Errorf("field: mode %q: %w", s, ErrUnknownMode)
	}
}

type cellOption func(*Cell)

func withDisplay(s string) cellOption {
	return func(c *Cell) { c.DisplayValue = s }
}

func asPlaceholder() cellOption {
	return func(c *Cell) { c.IsUserInput = false }
}

func withEditable(editable bool) cellOption {
	return func(c *Cell) { c.IsEditable = editable }
}

// newCell builds a user-input, editable cell showing ch, then applies opts.
func newCell(ch string, opts ...cellOption) Cell {
	c := Cell{
		Value:        ch,
		DisplayValue: ch,
		IsUserInput:  true,
		IsEditable:   true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// cellBuffer is the state every strategy shares.
type cellBuffer struct {
	cells  []Cell
	cursor Cursor
}

func (b *cellBuffer) insert(i int, c Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[i+1:], b.cells[i:])
	b.cells[i] = c
}

func (b *cellBuffer) remove(i int) {
	b.cells = append(b.cells[:i], b.cells[i+1:]...)
}

// set overwrites cell i, appending when i is one past the end.
func (b *cellBuffer) set(i int, c Cell) {
	if i == len(b.cells) {
		b.cells = append(b.cells, c)
		return
	}
	b.cells[i] = c
}

func (b *cellBuffer) anyUserInput(from int) bool {
	for _, c := range b.cells[from:] {
		if c.IsUserInput {
			return true
		}
	}
	return false
}

func (b *cellBuffer) joinValues(onlyUserInput bool) string {
	var sb strings.Builder
	for _, c := range b.cells {
		if onlyUserInput && !c.IsUserInput {
			continue
		}
		sb.WriteString(c.Value)
	}
	return sb.String()
}

func isDigitChar(ch string) bool {
	return len(ch) == 1 && grapheme.IsDigit(ch)
}
