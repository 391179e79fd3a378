package field

import (
	"time"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// maskEditor fills a fixed layout compiled from a format string. The cell
// buffer always has the same length and alignment as slots.
type maskEditor struct {
	cellBuffer
	cfg   *Config
	slots []MaskSlot

	firstEditable int // -1 when the mask has no editable slot
	lastEditable  int
	lastRequired  int

	// locked is set once the last editable slot accepted a character and
	// cleared by the next backspace.
	locked bool

	minDate, maxDate time.Time
	hasMin, hasMax   bool
}

func newMaskEditor(cfg *Config) (*maskEditor, error) {
	e := &maskEditor{cfg: cfg, slots: ParseMask(cfg.Mask)}

	e.firstEditable = e.nextEditable(-1, true)
	e.lastEditable = e.lastIndex(func(s MaskSlot) bool { return s.IsEditable })
	e.lastRequired = e.lastIndex(func(s MaskSlot) bool { return s.IsRequired && s.IsMandatory })

	var err error
	if cfg.Mask.MinDate != "" {
		if e.minDate, err = parseDateBound(cfg.Mask.MinDate); err != nil {
			return nil, err
		}
		e.hasMin = true
	}
	if cfg.Mask.MaxDate != "" {
		if e.maxDate, err = parseDateBound(cfg.Mask.MaxDate); err != nil {
			return nil, err
		}
		e.hasMax = true
	}
	return e, nil
}

func (e *maskEditor) buffer() *cellBuffer { return &e.cellBuffer }

// Slots returns the compiled mask of f, or nil for non-mask fields.
func (f *Field) Slots() []MaskSlot {
	m, ok := f.s.(*maskEditor)
	if !ok {
		return nil
	}
	out := make([]MaskSlot, len(m.slots))
	copy(out, m.slots)
	return out
}

func (e *maskEditor) init(setValue bool) {
	e.locked = false

	pos := e.firstEditable
	if pos < 0 {
		pos = 0
	}
	e.cursor = Cursor{Position: pos, Mode: CursorInsert}

	e.cells = make([]Cell, len(e.slots))
	for i := range e.slots {
		e.cells[i] = e.placeholder(i)
	}
	e.reconcile()

	if setValue && e.cfg.Value != "" {
		pasteAll(e, e.cfg.Value)
	}
}

func (e *maskEditor) placeholder(i int) Cell {
	s := e.slots[i]
	if s.IsEditable {
		return newCell(s.DisplayValue, asPlaceholder())
	}
	return newCell(s.Char, withDisplay(s.DisplayValue), asPlaceholder(), withEditable(false))
}

// nextEditable walks from start towards right (or left) and returns the
// first editable slot index, or start when there is none.
func (e *maskEditor) nextEditable(start int, right bool) int {
	step := -1
	if right {
		step = 1
	}
	for i := start + step; i >= 0 && i < len(e.slots); i += step {
		if e.slots[i].IsEditable {
			return i
		}
	}
	return start
}

// lastIndex returns the rightmost slot index matching pred, or 0.
func (e *maskEditor) lastIndex(pred func(MaskSlot) bool) int {
	for i := len(e.slots) - 1; i >= 0; i-- {
		if pred(e.slots[i]) {
			return i
		}
	}
	return 0
}

// reconcile re-derives user input flags from the last edited editable cell:
// everything up to it counts as entered, everything after it shows the
// placeholder. Literals preceding the first editable slot always count, so
// a mask without editable slots is entered as a whole.
func (e *maskEditor) reconcile() {
	if e.firstEditable < 0 {
		for i := range e.cells {
			e.cells[i].IsUserInput = true
		}
		return
	}
	limit := e.firstEditable - 1
	for i := len(e.cells) - 1; i > limit; i-- {
		if e.slots[i].IsEditable && e.cells[i].IsUserInput {
			limit = i
			break
		}
	}
	for i := range e.cells {
		if i <= limit {
			e.cells[i].IsUserInput = true
			continue
		}
		e.cells[i] = e.placeholder(i)
	}
}

func (e *maskEditor) accepts(t SlotType, ch string) bool {
	switch t {
	case SlotLetter:
		return e.isLetter(ch)
	case SlotDigit:
		return isDigitChar(ch)
	default:
		return true
	}
}

func (e *maskEditor) isLetter(ch string) bool {
	code := int(grapheme.First(ch))
	for _, r := range e.cfg.Mask.AllowedCharCodes {
		switch len(r) {
		case 1:
			if code == r[0] {
				return true
			}
		case 2:
			if code >= r[0] && code <= r[1] {
				return true
			}
		}
	}
	return false
}

func (e *maskEditor) pasteChar(ch string) bool {
	pos := e.cursor.Position
	if ch == "" || pos >= len(e.slots) || !e.slots[pos].IsEditable {
		return false
	}
	if !e.accepts(e.slots[pos].Type, ch) {
		return false
	}
	if e.locked {
		return false
	}

	if pos == e.lastEditable {
		e.locked = true
	}
	e.cells[pos] = newCell(ch, withDisplay(e.cfg.displayFor(ch)))
	e.cursor.Position = e.nextEditable(pos, true)
	e.reconcile()
	return true
}

func (e *maskEditor) backspace() bool {
	pos := e.cursor.Position
	if pos == 0 {
		return false
	}

	target := pos
	if !e.locked {
		target = e.nextEditable(pos, false)
		if target == pos {
			return false
		}
	}

	e.cursor.Position = target
	e.cells[target] = e.placeholder(target)
	e.locked = false
	e.reconcile()
	return true
}

func (e *maskEditor) value() string { return e.joinValues(true) }

func (e *maskEditor) hasUserInput() bool {
	for i, c := range e.cells {
		if c.IsUserInput && e.slots[i].IsEditable {
			return true
		}
	}
	return false
}

func (e *maskEditor) valid() bool {
	if e.cfg.Mask.IsDate {
		return e.validDate()
	}

	required := false
	for _, s := range e.slots {
		if s.IsRequired {
			required = true
			break
		}
	}
	if !required {
		return true
	}

	lastDone := e.cells[e.lastRequired].IsUserInput
	if e.cfg.IsRequired {
		return lastDone
	}

	allEditable := true
	for _, c := range e.cells {
		if !c.IsEditable {
			allEditable = false
			break
		}
	}
	if allEditable {
		return lastDone || e.value() == ""
	}

	if e.firstEditable < 0 || !e.cells[e.firstEditable].IsUserInput {
		return true
	}
	return lastDone
}

func (e *maskEditor) validDate() bool {
	if len(e.cells) == 0 || !e.cells[e.lastEditable].IsUserInput {
		return !e.cfg.IsRequired && !e.hasUserInput()
	}

	day, month, year, ok := splitDate(e.value())
	if !ok || !validDay(day, month, year) {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if e.hasMin && t.Before(e.minDate) {
		return false
	}
	if e.hasMax && t.After(e.maxDate) {
		return false
	}
	return true
}
