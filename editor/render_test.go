package editor

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fallereugene/screen-keyboard-input-components/field"
)

func TestNew_UnknownMode(t *testing.T) {
	_, err := New(Config{Mode: field.Mode("date")})
	if !errors.Is(err, field.ErrUnknownMode) {
		t.Fatalf("error: got %v, want %v", err, field.ErrUnknownMode)
	}
}

func TestRender_PlainCells(t *testing.T) {
	m := newModel(t, field.ModeFraction, nil).Blur()
	if got, want := m.View(), "0.00"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	m = newModel(t, field.ModeMask, func(c *Config) {
		c.Label = "Phone"
		c.Field.Mask.Format = "+7 ([000])"
		c.Field.Value = "92"
	}).Blur()
	if got, want := m.View(), "Phone+7 (920)"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_ZeroWidthCellGetsBase(t *testing.T) {
	m := newModel(t, field.ModeString, func(c *Config) {
		c.Field.Value = "\u0301b"
	}).Blur()
	if got, want := m.View(), "\u25cc\u0301b"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_CursorPastLastCell(t *testing.T) {
	m := newModel(t, field.ModeString, func(c *Config) {
		c.Field.Value = "ab"
		c.Style = Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)}
	})

	got := m.renderContent()
	want := "ab  "
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorStylesFollowMode(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Input:         r.NewStyle(),
		Placeholder:   r.NewStyle().Faint(true),
		Literal:       r.NewStyle(),
		Cursor:        r.NewStyle().Reverse(true),
		CursorReplace: r.NewStyle().Underline(true),
	}
	m := newModel(t, field.ModeFraction, func(c *Config) { c.Style = st })

	// Fresh fraction: replace cursor on the leading zero.
	got := m.renderContent()
	want := st.CursorReplace.Inherit(st.Placeholder).Render("0") +
		st.Placeholder.Render(".") +
		st.Placeholder.Render("0") + st.Placeholder.Render("0")
	if got != want {
		t.Fatalf("replace cursor:\n got: %q\nwant: %q", got, want)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", got)
	}

	m, _ = m.Update(runes("7"))
	got = m.renderContent()
	want = st.Input.Render("7") +
		st.Cursor.Inherit(st.Placeholder).Render(".") +
		st.Placeholder.Render("0") + st.Placeholder.Render("0")
	if got != want {
		t.Fatalf("insert cursor:\n got: %q\nwant: %q", got, want)
	}

	if plain := m.Blur().renderContent(); strings.Contains(plain, "\x1b[7m") {
		t.Fatalf("blurred model renders a cursor: %q", plain)
	}
}

func TestRender_InvalidFrame(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	st := Style{
		Valid:   r.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Invalid: r.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
	}
	m := newModel(t, field.ModeString, func(c *Config) {
		c.Field.IsRequired = true
		c.Style = st
	}).Blur()

	if got := m.View(); !strings.Contains(got, "╔══╗") {
		t.Fatalf("required empty field should use the invalid frame:\n%s", got)
	}
	m.Field().PasteChar("a")
	if got := m.View(); !strings.Contains(got, "─") || lipgloss.Height(got) != 3 {
		t.Fatalf("valid field should use the valid frame:\n%s", got)
	}
}
