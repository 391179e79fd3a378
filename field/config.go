package field

import (
	"errors"
	"maps"
	"math"
	"slices"
)

var (
	// ErrUnknownMode is returned by New and ParseMode for an unrecognized mode.
	ErrUnknownMode = errors.New("unknown input mode")
	// ErrInvalidConfig is returned by New when a configuration value cannot be
	// compiled (regular expression, date bound).
	ErrInvalidConfig = errors.New("invalid field config")
)

// Config is the resolved configuration of a Field.
//
// Values are layered: DefaultConfig supplies the global and the mode
// defaults, callers (or decoders) override fields on the returned value and
// pass it to New. A Field never observes later changes to the value it was
// built from.
type Config struct {
	Value      string `toml:"value" yaml:"value" json:"value"`
	IsRequired bool   `toml:"required" yaml:"required" json:"required"`
	IsPwd      bool   `toml:"password" yaml:"password" json:"password"`
	PwdChar    string `toml:"password_char" yaml:"password_char" json:"password_char"`

	String   StringConfig   `toml:"string" yaml:"string" json:"string"`
	Fraction FractionConfig `toml:"fraction" yaml:"fraction" json:"fraction"`
	Mask     MaskConfig     `toml:"mask" yaml:"mask" json:"mask"`
}

type StringConfig struct {
	// MinSymbols is the minimal valid length in grapheme clusters.
	MinSymbols int `toml:"min_symbols" yaml:"min_symbols" json:"min_symbols"`
	// MaxSymbols bounds the buffer length. Negative means unbounded.
	MaxSymbols int    `toml:"max_symbols" yaml:"max_symbols" json:"max_symbols"`
	Regexp     string `toml:"regexp" yaml:"regexp" json:"regexp"`
}

type FractionConfig struct {
	// Scale is the number of fraction digits. Zero disables the pointer.
	Scale   int     `toml:"scale" yaml:"scale" json:"scale"`
	Pointer string  `toml:"pointer" yaml:"pointer" json:"pointer"`
	Min     float64 `toml:"min" yaml:"min" json:"min"`
	Max     float64 `toml:"max" yaml:"max" json:"max"`
	// Precision limits the number of entered symbols. Zero disables the check.
	Precision int `toml:"precision" yaml:"precision" json:"precision"`
}

// GroupSyntax is a pair of control characters delimiting a mask group.
type GroupSyntax struct {
	Start string `toml:"start" yaml:"start" json:"start"`
	End   string `toml:"end" yaml:"end" json:"end"`
}

// Definitions maps format characters to slot types. Each type has a required
// and an optional glyph; optional glyphs are meant for trailing positions.
type Definitions struct {
	Chr      string `toml:"chr" yaml:"chr" json:"chr"`
	ChrOpt   string `toml:"chr_opt" yaml:"chr_opt" json:"chr_opt"`
	Digit    string `toml:"digit" yaml:"digit" json:"digit"`
	DigitOpt string `toml:"digit_opt" yaml:"digit_opt" json:"digit_opt"`
	Any      string `toml:"any" yaml:"any" json:"any"`
	AnyOpt   string `toml:"any_opt" yaml:"any_opt" json:"any_opt"`
}

// ReplacementUnknown is the Replacements key used for unrecognized format
// characters inside a changeable group.
const ReplacementUnknown = "unknown"

type MaskConfig struct {
	Format      string      `toml:"format" yaml:"format" json:"format"`
	Mask        GroupSyntax `toml:"group" yaml:"group" json:"group"`
	Mandatory   GroupSyntax `toml:"mandatory" yaml:"mandatory" json:"mandatory"`
	Definitions Definitions `toml:"definitions" yaml:"definitions" json:"definitions"`
	// Replacements maps a format character to its placeholder glyph.
	Replacements map[string]string `toml:"replacements" yaml:"replacements" json:"replacements"`
	// AllowedCharCodes lists accepted letter code points: one-element entries
	// match a single code, two-element entries an inclusive range.
	AllowedCharCodes [][]int `toml:"allowed_char_codes" yaml:"allowed_char_codes" json:"allowed_char_codes"`

	IsDate  bool   `toml:"date" yaml:"date" json:"date"`
	MinDate string `toml:"min_date" yaml:"min_date" json:"min_date"`
	MaxDate string `toml:"max_date" yaml:"max_date" json:"max_date"`
}

// DefaultConfig returns the global defaults layered with the defaults of
// mode. Sections of other modes are left zero; an unknown mode gets the
// global layer only.
func DefaultConfig(mode Mode) Config {
	cfg := Config{PwdChar: "*"}
	switch mode {
	case ModeString:
		cfg.String = StringConfig{MaxSymbols: 10}
	case ModeFraction:
		cfg.Fraction = FractionConfig{
			Scale:     2,
			Pointer:   ".",
			Min:       math.Inf(-1),
			Max:       math.Inf(1),
			Precision: 18,
		}
	case ModeMask:
		cfg.Mask = defaultMaskConfig()
	}
	return cfg
}

func defaultMaskConfig() MaskConfig {
	return MaskConfig{
		Mask:      GroupSyntax{Start: "[", End: "]"},
		Mandatory: GroupSyntax{Start: "{", End: "}"},
		Definitions: Definitions{
			Chr:      "A",
			ChrOpt:   "a",
			Digit:    "0",
			DigitOpt: "9",
			Any:      "_",
			AnyOpt:   "-",
		},
		Replacements: map[string]string{
			"A":                "A",
			"a":                "A",
			"0":                "0",
			"9":                "0",
			"_":                "_",
			"-":                "_",
			ReplacementUnknown: "#",
		},
		// Latin letters and Cyrillic (including Ё/ё).
		AllowedCharCodes: [][]int{
			{0x41, 0x5A}, {0x61, 0x7A},
			{0x401}, {0x410, 0x44F}, {0x451},
		},
	}
}

func (c Config) clone() Config {
	out := c
	out.Mask.Replacements = maps.Clone(c.Mask.Replacements)
	if c.Mask.AllowedCharCodes != nil {
		out.Mask.AllowedCharCodes = make([][]int, len(c.Mask.AllowedCharCodes))
		for i, r := range c.Mask.AllowedCharCodes {
			out.Mask.AllowedCharCodes[i] = slices.Clone(r)
		}
	}
	return out
}

// displayFor returns what a user-typed ch shows as.
func (c *Config) displayFor(ch string) string {
	if c.IsPwd {
		return c.PwdChar
	}
	return ch
}
