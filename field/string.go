package field

import (
	"fmt"
	"regexp"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// stringEditor inserts characters at the cursor without layout constraints.
type stringEditor struct {
	cellBuffer
	cfg *Config
	re  *regexp.Regexp
}

func newStringEditor(cfg *Config) (*stringEditor, error) {
	e := &stringEditor{cfg: cfg}
	if cfg.String.Regexp != "" {
		re, err := regexp.Compile(cfg.String.Regexp)
		if err != nil {
			return nil, fmt.Errorf("field: regexp %q: %w: %w", cfg.String.Regexp, ErrInvalidConfig, err)
		}
		e.re = re
	}
	return e, nil
}

func (e *stringEditor) buffer() *cellBuffer { return &e.cellBuffer }

func (e *stringEditor) init(setValue bool) {
	e.cells = nil
	e.cursor = Cursor{Position: 0, Mode: CursorInsert}
	if setValue && e.cfg.Value != "" {
		pasteAll(e, e.cfg.Value)
	}
}

func (e *stringEditor) pasteChar(ch string) bool {
	if ch == "" {
		return false
	}
	if limit := e.cfg.String.MaxSymbols; limit >= 0 && len(e.cells) >= limit {
		return false
	}
	e.insert(e.cursor.Position, newCell(ch, withDisplay(e.cfg.displayFor(ch))))
	e.cursor.Position++
	return true
}

func (e *stringEditor) backspace() bool {
	if e.cursor.Position == 0 {
		return false
	}
	e.remove(e.cursor.Position - 1)
	e.cursor.Position--
	return true
}

func (e *stringEditor) value() string { return e.joinValues(false) }

func (e *stringEditor) hasUserInput() bool { return e.anyUserInput(0) }

func (e *stringEditor) valid() bool {
	minLen := e.cfg.String.MinSymbols
	if !e.cfg.IsRequired && e.re == nil && minLen == 0 {
		return true
	}

	v := e.value()
	n := grapheme.Count(v)
	if e.cfg.IsRequired && n == 0 {
		return false
	}
	if e.re != nil {
		return e.re.MatchString(v) && n >= minLen
	}
	return n >= minLen
}
