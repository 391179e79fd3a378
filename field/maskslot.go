package field

import (
	"strings"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// SlotType is the kind of character a mask slot accepts.
type SlotType uint8

const (
	SlotAny SlotType = iota
	SlotLetter
	SlotDigit
	SlotUnknown
)

func (t SlotType) String() string {
	switch t {
	case SlotAny:
		return "any"
	case SlotLetter:
		return "letter"
	case SlotDigit:
		return "digit"
	default:
		return "unknown"
	}
}

// MaskSlot describes one position of a compiled mask.
type MaskSlot struct {
	Type SlotType
	// Char is the format character the slot was compiled from.
	Char         string
	DisplayValue string
	IsEditable   bool
	IsMandatory  bool
	IsRequired   bool
}

// ParseMask compiles cfg.Format into slots, one per non-control character.
//
// Characters between cfg.Mask.Start and cfg.Mask.End are changeable: known
// definition characters become typed editable slots, anything else an
// Unknown literal shown with the "unknown" replacement. Characters outside
// changeable groups are literals shown as themselves. A format without any
// changeable group marker treats the letter and digit definitions as
// changeable; the "any" definitions stay literals there, so "0000-00-00"
// keeps its separators.
func ParseMask(cfg MaskConfig) []MaskSlot {
	implicit := cfg.Mask.Start == "" || !strings.Contains(cfg.Format, cfg.Mask.Start)

	var (
		slots      []MaskSlot
		changeable bool
		mandatory  bool
	)
	for _, ch := range grapheme.Split(cfg.Format) {
		switch ch {
		case cfg.Mask.Start:
			changeable = true
			continue
		case cfg.Mask.End:
			changeable = false
			continue
		case cfg.Mandatory.Start:
			mandatory = true
			continue
		case cfg.Mandatory.End:
			mandatory = false
			continue
		}

		editable := changeable
		if implicit {
			typ, _ := cfg.Definitions.classify(ch)
			editable = typ == SlotLetter || typ == SlotDigit
		}
		slots = append(slots, parseSlot(ch, editable, mandatory, cfg))
	}
	return slots
}

func parseSlot(ch string, editable, mandatory bool, cfg MaskConfig) MaskSlot {
	s := MaskSlot{
		Type:         SlotAny,
		Char:         ch,
		DisplayValue: ch,
		IsEditable:   editable,
		IsMandatory:  mandatory,
	}
	if !editable {
		return s
	}

	typ, required := cfg.Definitions.classify(ch)
	s.Type = typ
	s.IsRequired = required
	s.IsMandatory = true
	if typ == SlotUnknown {
		s.IsEditable = false
		s.DisplayValue = replacement(cfg.Replacements, ReplacementUnknown, ch)
		return s
	}
	s.DisplayValue = replacement(cfg.Replacements, ch, ch)
	return s
}

func replacement(m map[string]string, key, fallback string) string {
	if r, ok := m[key]; ok && r != "" {
		return r
	}
	return fallback
}

// classify returns the slot type of a format character and whether it is the
// required variant.
func (d Definitions) classify(ch string) (SlotType, bool) {
	switch ch {
	case d.Chr, d.ChrOpt:
		return SlotLetter, ch == d.Chr
	case d.Digit, d.DigitOpt:
		return SlotDigit, ch == d.Digit
	case d.Any, d.AnyOpt:
		return SlotAny, ch == d.Any
	default:
		return SlotUnknown, false
	}
}
