package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when a layout row names an action key the
// keyboard does not implement, or an action token is malformed.
var ErrUnknownAction = errors.New("unknown key action")

type Action string

const (
	ActionNone      Action = ""
	ActionBackspace Action = "bksp"
	ActionClear     Action = "clear"
	ActionSpace     Action = "space"
	ActionShift     Action = "shift"
	ActionLang      Action = "lang"
	ActionNum       Action = "num"
)

func parseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionBackspace, ActionClear, ActionSpace, ActionShift, ActionLang, ActionNum:
		return a, true
	default:
		return ActionNone, false
	}
}

// Key is one button of a layout.
type Key struct {
	// Label is the text drawn on the button.
	Label string
	// Symbol is the emitted text of a symbol key.
	Symbol string

	Action Action
	// Param is the target layout of shift and lang keys.
	Param string
}

func (k Key) IsAction() bool { return k.Action != ActionNone }

// Layout is a named grid of keys.
type Layout struct {
	Name string
	Rows [][]Key
}

// ParseRow parses one row description.
func ParseRow(row string) ([]Key, error) {
	tokens := strings.Fields(row)
	keys := make([]Key, 0, len(tokens))
	for _, tok := range tokens {
		k, err := parseKey(tok)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseKey(tok string) (Key, error) {
	isAction := len(tok) > 2 && strings.HasSuffix(tok, "}") &&
		(strings.HasPrefix(tok, "{") || strings.HasPrefix(tok, "["))
	if !isAction {
		return Key{Label: tok, Symbol: tok}, nil
	}

	var label string
	body := tok
	if strings.HasPrefix(tok, "[") {
		end := strings.Index(tok, "]")
		if end < 0 {
			return Key{}, fmt.Errorf("keyboard: key %q: %w", tok, ErrUnknownAction)
		}
		label, body = tok[1:end], tok[end+1:]
	}
	if len(body) < 3 || body[0] != '{' {
		return Key{}, fmt.Errorf("keyboard: key %q: %w", tok, ErrUnknownAction)
	}

	name, param, _ := strings.Cut(body[1:len(body)-1], ":")
	action, ok := parseAction(name)
	if !ok {
		return Key{}, fmt.Errorf("keyboard: action %q: %w", name, ErrUnknownAction)
	}
	if label == "" {
		label = name
	}
	return Key{Label: label, Action: action, Param: param}, nil
}

// ParseLayout parses every row of a layout.
func ParseLayout(name string, rows []string) (Layout, error) {
	l := Layout{Name: name, Rows: make([][]Key, 0, len(rows))}
	for i, row := range rows {
		keys, err := ParseRow(row)
		if err != nil {
			return Layout{}, fmt.Errorf("layout %s row %d: %w", name, i+1, err)
		}
		l.Rows = append(l.Rows, keys)
	}
	return l, nil
}

// Set is a group of layouts a keyboard switches between. Names keeps the
// declaration order; the first name is the initial layout.
type Set struct {
	Names   []string
	Layouts map[string]Layout
}

// NewSet parses rows for every name in names.
func NewSet(names []string, rows map[string][]string) (Set, error) {
	if len(names) == 0 {
		return Set{}, errors.New("keyboard: empty layout set")
	}
	s := Set{Names: names, Layouts: make(map[string]Layout, len(names))}
	for _, name := range names {
		r, ok := rows[name]
		if !ok {
			return Set{}, fmt.Errorf("keyboard: layout %q has no rows", name)
		}
		l, err := ParseLayout(name, r)
		if err != nil {
			return Set{}, fmt.Errorf("keyboard: %w", err)
		}
		s.Layouts[name] = l
	}
	return s, nil
}

func (s Set) Initial() string {
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[0]
}

func (s Set) Has(name string) bool {
	_, ok := s.Layouts[name]
	return ok
}
