// Package config loads form definitions: a title, a keyboard and a list of
// inputs with their field configuration.
//
// Files are TOML, YAML or JSON, chosen by extension. Every input is decoded
// on top of field.DefaultConfig for its mode, so a file only names what it
// changes.
package config

import (
	"errors"
	"fmt"

	"github.com/fallereugene/screen-keyboard-input-components/field"
)

// ErrSchema is returned when a document does not match the form schema.
var ErrSchema = errors.New("form does not match schema")

// Form is a validated form definition.
type Form struct {
	Title string
	// Keyboard names a builtin keyboard set.
	Keyboard string
	Inputs   []Input
}

// Input is one named field of a form.
type Input struct {
	Name  string
	Label string
	Mode  field.Mode
	Field field.Config
}

// header holds the per-input keys that are not field configuration.
type header struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Label string `toml:"label" yaml:"label" json:"label"`
	Mode  string `toml:"mode" yaml:"mode" json:"mode"`
}

func (h header) input() (Input, error) {
	mode, err := field.ParseMode(h.Mode)
	if err != nil {
		return Input{}, fmt.Errorf("input %q: %w", h.Name, err)
	}
	label := h.Label
	if label == "" {
		label = h.Name
	}
	return Input{Name: h.Name, Label: label, Mode: mode, Field: field.DefaultConfig(mode)}, nil
}

// Validate checks that names are unique and that every input builds.
func (f *Form) Validate() error {
	if f.Keyboard == "" {
		f.Keyboard = "full"
	}
	seen := make(map[string]bool, len(f.Inputs))
	for _, in := range f.Inputs {
		if seen[in.Name] {
			return fmt.Errorf("duplicate input name %q", in.Name)
		}
		seen[in.Name] = true
		if _, err := field.New(in.Mode, in.Field); err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
	}
	return nil
}

// DefaultForm is shown when no form file is given.
func DefaultForm() *Form {
	name := field.DefaultConfig(field.ModeString)
	name.IsRequired = true
	name.String.MaxSymbols = 24
	name.String.MinSymbols = 2

	phone := field.DefaultConfig(field.ModeMask)
	phone.Mask.Format = "+7 ([000]) [000]-[00]-[00]"
	phone.IsRequired = true

	birth := field.DefaultConfig(field.ModeMask)
	birth.Mask.Format = "00/00/0000"
	birth.Mask.IsDate = true
	birth.Mask.MinDate = "01/01/1900"

	amount := field.DefaultConfig(field.ModeFraction)
	amount.Fraction.Min = 1
	amount.Fraction.Max = 100000

	pin := field.DefaultConfig(field.ModeMask)
	pin.Mask.Format = "[0000]"
	pin.IsPwd = true

	return &Form{
		Title:    "Payment",
		Keyboard: "full",
		Inputs: []Input{
			{Name: "name", Label: "Name", Mode: field.ModeString, Field: name},
			{Name: "phone", Label: "Phone", Mode: field.ModeMask, Field: phone},
			{Name: "birth", Label: "Birth date", Mode: field.ModeMask, Field: birth},
			{Name: "amount", Label: "Amount", Mode: field.ModeFraction, Field: amount},
			{Name: "pin", Label: "PIN", Mode: field.ModeMask, Field: pin},
		},
	}
}
