package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallereugene/screen-keyboard-input-components/field"
)

func TestLoadFile_FormatsAgree(t *testing.T) {
	toml, err := LoadFile(filepath.Join("testdata", "payment.toml"))
	require.NoError(t, err)
	yml, err := LoadFile(filepath.Join("testdata", "payment.yaml"))
	require.NoError(t, err)
	js, err := LoadFile(filepath.Join("testdata", "payment.json"))
	require.NoError(t, err)

	assert.Equal(t, toml, yml)
	assert.Equal(t, toml, js)
}

func TestLoadFile_KeepsDefaults(t *testing.T) {
	form, err := LoadFile(filepath.Join("testdata", "payment.toml"))
	require.NoError(t, err)

	assert.Equal(t, "Payment", form.Title)
	assert.Equal(t, "numeric", form.Keyboard)
	require.Len(t, form.Inputs, 4)

	card := form.Inputs[0]
	assert.Equal(t, field.ModeMask, card.Mode)
	assert.True(t, card.Field.IsRequired)
	assert.Equal(t, "*", card.Field.PwdChar)
	assert.Equal(t, field.GroupSyntax{Start: "[", End: "]"}, card.Field.Mask.Mask)

	amount := form.Inputs[1]
	assert.Equal(t, "amount", amount.Label, "label defaults to the name")
	assert.Equal(t, ",", amount.Field.Fraction.Pointer)
	assert.Equal(t, 1.0, amount.Field.Fraction.Min)
	assert.Equal(t, 500.0, amount.Field.Fraction.Max)
	assert.Equal(t, 18, amount.Field.Fraction.Precision)

	holder := form.Inputs[2]
	assert.Equal(t, 10, holder.Field.String.MaxSymbols)
	assert.Equal(t, 2, holder.Field.String.MinSymbols)

	expires := form.Inputs[3]
	assert.Equal(t, "_", expires.Field.Mask.Replacements["0"])
	assert.Equal(t, "#", expires.Field.Mask.Replacements[field.ReplacementUnknown])
	assert.NotEmpty(t, expires.Field.Mask.AllowedCharCodes)
}

func TestParse_InfiniteBoundsInTOML(t *testing.T) {
	form, err := Parse([]byte(`
[[fields]]
name = "delta"
mode = "fraction"
[fields.fraction]
min = -inf
`), ".toml")
	require.NoError(t, err)
	assert.True(t, math.IsInf(form.Inputs[0].Field.Fraction.Min, -1))
	assert.Equal(t, "full", form.Keyboard)
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no fields", doc: `{"title": "x"}`},
		{name: "empty fields", doc: `{"fields": []}`},
		{name: "unknown mode", doc: `{"fields": [{"name": "a", "mode": "date"}]}`},
		{name: "missing name", doc: `{"fields": [{"mode": "string"}]}`},
		{name: "unknown key", doc: `{"fields": [{"name": "a", "mode": "string", "colour": "red"}]}`},
		{name: "wrong type", doc: `{"fields": [{"name": "a", "mode": "string", "string": {"max_symbols": "ten"}}]}`},
		{name: "fractional scale", doc: `{"fields": [{"name": "a", "mode": "fraction", "fraction": {"scale": 1.5}}]}`},
		{name: "bad code range", doc: `{"fields": [{"name": "a", "mode": "mask", "mask": {"allowed_char_codes": [[1, 2, 3]]}}]}`},
		{name: "unknown keyboard", doc: `{"keyboard": "qwerty", "fields": [{"name": "a", "mode": "string"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), ".json")
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParse_SchemaErrorsInYAML(t *testing.T) {
	_, err := Parse([]byte("fields:\n  - name: a\n    mode: string\n    required: maybe\n"), ".yml")
	assert.ErrorIs(t, err, ErrSchema)
}

func TestParse_InvalidFieldConfig(t *testing.T) {
	_, err := Parse([]byte(`{"fields": [{"name": "a", "mode": "string", "string": {"regexp": "("}}]}`), ".json")
	require.ErrorIs(t, err, field.ErrInvalidConfig)

	_, err = Parse([]byte(`{"fields": [{"name": "d", "mode": "mask", "mask": {"format": "00/00/0000", "date": true, "max_date": "soon"}}]}`), ".json")
	require.ErrorIs(t, err, field.ErrInvalidConfig)

	_, err = Parse([]byte(`{"fields": [{"name": "a", "mode": "string"}, {"name": "a", "mode": "mask"}]}`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParse_MaskWithoutFormat(t *testing.T) {
	form, err := Parse([]byte(`{"fields": [{"name": "m", "mode": "mask"}, {"name": "lit", "mode": "mask", "mask": {"format": "#/#"}}]}`), ".json")
	require.NoError(t, err)
	require.Len(t, form.Inputs, 2)
	assert.Equal(t, "", form.Inputs[0].Field.Mask.Format)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte(`fields = []`), ".ini")
	assert.Error(t, err)

	_, err = Parse([]byte(`{"fields": [`), ".json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchema)
}

func TestDefaultForm_IsValid(t *testing.T) {
	form := DefaultForm()
	require.NoError(t, form.Validate())
	for _, in := range form.Inputs {
		_, err := field.New(in.Mode, in.Field)
		assert.NoError(t, err, in.Name)
	}
}


func writeForm(t *testing.T, path, title string) {
	t.Helper()
	data := []byte(`{"title": "` + title + `", "fields": [{"name": "a", "mode": "string"}]}`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoader_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	writeForm(t, path, "first")

	l := NewLoader(path)
	l.SetDebounce(50 * time.Millisecond)
	t.Cleanup(func() { _ = l.Close() })

	form, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "first", form.Title)
	assert.Same(t, form, l.Form())

	changed := make(chan *Form, 4)
	l.OnChange(func(f *Form) { changed <- f })
	require.NoError(t, l.Watch())

	writeForm(t, path, "second")
	select {
	case f := <-changed:
		assert.Equal(t, "second", f.Title)
		assert.Equal(t, "second", l.Form().Title)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	drainErrors(l)
	require.NoError(t, os.WriteFile(path, []byte(`{"fields": []}`), 0o644))
	select {
	case err := <-l.Errors():
		assert.ErrorIs(t, err, ErrSchema)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
	assert.Equal(t, "second", l.Form().Title, "invalid reload keeps the previous form")
}

func drainErrors(l *Loader) {
	for {
		select {
		case <-l.Errors():
		default:
			return
		}
	}
}

func TestLoader_CloseEndsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	writeForm(t, path, "first")

	l := NewLoader(path)
	require.NoError(t, l.Watch())

	drained := make(chan struct{})
	go func() {
		for range l.Errors() {
		}
		close(drained)
	}()

	require.NoError(t, l.Close())
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("Errors channel still open after Close")
	}
	assert.NoError(t, l.Close(), "second Close")
}

func TestLoader_CloseWithoutWatch(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, l.Close())
	_, open := <-l.Errors()
	assert.False(t, open)
}
