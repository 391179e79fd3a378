package field

import (
	"math"
	"strconv"
)

// fractionEditor edits a number laid out as integer digits, one pointer cell
// and Scale fraction digits. The layout is always fully present; untouched
// positions hold placeholder zeros.
type fractionEditor struct {
	cellBuffer
	cfg *Config

	// pointer is the index of the pointer cell, -1 when Scale is zero.
	pointer int
}

func newFractionEditor(cfg *Config) (*fractionEditor, error) {
	return &fractionEditor{cfg: cfg, pointer: -1}, nil
}

func (e *fractionEditor) buffer() *cellBuffer { return &e.cellBuffer }

func zeroCell() Cell {
	return newCell("0", asPlaceholder())
}

func (e *fractionEditor) init(setValue bool) {
	e.cells = nil
	e.pointer = -1
	e.cursor = Cursor{Position: 0, Mode: CursorReplace}

	e.cells = append(e.cells, zeroCell())
	if e.cfg.Fraction.Scale > 0 {
		e.pointer = len(e.cells)
		e.cells = append(e.cells, newCell(".", withDisplay(e.cfg.Fraction.Pointer), asPlaceholder()))
		for i := 0; i < e.cfg.Fraction.Scale; i++ {
			e.cells = append(e.cells, zeroCell())
		}
	}

	if setValue && e.cfg.Value != "" {
		pasteAll(e, e.cfg.Value)
	}
}

// pointerPos returns the pointer index, or the buffer length when there is
// no fraction part.
func (e *fractionEditor) pointerPos() int {
	if e.pointer < 0 {
		return len(e.cells)
	}
	return e.pointer
}

func (e *fractionEditor) insertCell(i int, c Cell) {
	e.insert(i, c)
	if e.pointer >= 0 && i <= e.pointer {
		e.pointer++
	}
}

func (e *fractionEditor) removeCell(i int) {
	e.remove(i)
	if e.pointer >= 0 && i < e.pointer {
		e.pointer--
	}
}

func (e *fractionEditor) completed() bool {
	for _, c := range e.cells {
		if !c.IsUserInput {
			return false
		}
	}
	return true
}

func (e *fractionEditor) pasteChar(ch string) bool {
	if ch == "" {
		return false
	}
	// Any non-digit activates the pointer.
	if !isDigitChar(ch) {
		return e.pastePointer()
	}

	c := newCell(ch, withDisplay(e.cfg.displayFor(ch)))
	integerPart := e.cursor.Position < e.pointerPos()

	switch e.cursor.Mode {
	case CursorInsert:
		e.insertCell(e.cursor.Position, c)
		e.cursor.Position++
	case CursorReplace:
		e.set(e.cursor.Position, c)
		if integerPart || e.cursor.Position < len(e.cells)-1 {
			e.cursor.Position++
		}
	}

	e.stateChanged(true)
	return true
}

func (e *fractionEditor) pastePointer() bool {
	if e.pointer < 0 {
		return false
	}
	if e.cursor.Position > e.pointer {
		return false
	}
	e.cells[e.pointer].IsUserInput = true
	e.cursor.Position = e.pointer + 1
	e.stateChanged(false)
	return true
}

// stateChanged normalizes the buffer after a mutation.
func (e *fractionEditor) stateChanged(updatePointer bool) {
	if e.pointer >= 0 && updatePointer {
		e.cells[e.pointer].IsUserInput = e.anyUserInput(e.pointer + 1)
	}

	// At least one integer digit.
	if e.pointerPos() == 0 {
		e.insertCell(0, zeroCell())
	}

	// No leading zero unless it is the only integer digit.
	for e.pointerPos() > 1 && e.cells[0].Value == "0" {
		e.removeCell(0)
		if e.cursor.Position > 0 {
			e.cursor.Position--
		}
	}

	// Everything left of the rightmost entered digit counts as entered.
	for i := len(e.cells) - 1; i >= 0; i-- {
		if e.cells[i].IsUserInput {
			for j := 0; j < i; j++ {
				e.cells[j].IsUserInput = true
			}
			break
		}
	}

	p := e.pointerPos()
	if e.cursor.Position <= p {
		e.cursor.Mode = CursorInsert
		if e.cursor.Position == 0 {
			e.cursor.Mode = CursorReplace
		}
		return
	}
	if p == e.cursor.Position-1 && !e.cells[p].IsUserInput {
		e.cursor.Mode = CursorInsert
		e.cursor.Position--
		return
	}
	e.cursor.Mode = CursorReplace
}

func (e *fractionEditor) backspace() bool {
	if e.cursor.Position == 0 {
		return false
	}

	switch e.cursor.Mode {
	case CursorInsert:
		e.removeCell(e.cursor.Position - 1)
		e.cursor.Position--
	case CursorReplace:
		// Inside the fraction part digits are reset instead of removed. The
		// cursor stays put on a completed value and right after the pointer,
		// so repeated backspaces walk left one digit at a time.
		if e.pointer >= 0 && e.cells[e.pointer].IsUserInput {
			if !e.completed() && e.pointer != e.cursor.Position-1 {
				e.cursor.Position--
			}
			e.set(e.cursor.Position, zeroCell())
		}
	}

	e.stateChanged(true)
	return true
}

func (e *fractionEditor) value() string { return e.joinValues(false) }

func (e *fractionEditor) hasUserInput() bool { return e.anyUserInput(0) }

func (e *fractionEditor) valid() bool {
	v := e.joinValues(true)
	fc := e.cfg.Fraction

	if e.cfg.IsRequired && v == "" {
		return false
	}
	if fc.Precision > 0 && len(v) > fc.Precision {
		return false
	}

	n, ok := parseFloatPrefix(v)
	if !ok {
		// Nothing numeric was entered: only an unbounded range accepts it.
		return math.IsInf(fc.Min, -1) && math.IsInf(fc.Max, 1)
	}
	return n >= fc.Min && n <= fc.Max
}

// parseFloatPrefix parses the longest leading decimal number of s
// ([sign] digits [. digits]). ok is false when s has no leading digit.
func parseFloatPrefix(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	end := i
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		end = i
	}
	if digits == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
