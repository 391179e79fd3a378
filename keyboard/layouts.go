package keyboard

import "fmt"

var fullNames = []string{"ru-normal", "ru-shift", "en-normal", "en-shift", "num"}

var fullRows = map[string][]string{
	"ru-normal": {
		`й ц у к е н г ш щ з х {bksp}`,
		`ф ы в а п р о л д ж э ъ`,
		`{shift:ru-shift} я ч с м и т ь б ю , .`,
		`[123&]{num} {space} [EN]{lang:en-normal} @ {clear}`,
	},
	"ru-shift": {
		`Й Ц У К Е Н Г Ш Щ З Х {bksp}`,
		`Ф Ы В А П Р О Л Д Ж Э Ъ`,
		`{shift:ru-normal} Я Ч С М И Т Ь Б Ю , _`,
		`[123&]{num} {space} [EN]{lang:en-shift} @ {clear}`,
	},
	"en-normal": {
		`q w e r t y u i o p " {bksp}`,
		`a s d f g h j k l = [ ]`,
		`{shift:en-shift} z x c v b n m { } , .`,
		`[123&]{num} {space} [RU]{lang:ru-normal} @ -`,
	},
	"en-shift": {
		`Q W E R T Y U I O P " {bksp}`,
		`A S D F G H J K L = [ ]`,
		`{shift:en-normal} Z X C V B N M { } , .`,
		`[123&]{num} {space} [RU]{lang:ru-shift} @ -`,
	},
	"num": {
		`1 2 3 4 5 6 7 8 9 0 / {bksp}`,
		`! " № $ % ^ & * ( ) = +`,
		`{shift} ~ # € ; : ? ' < > , _`,
		`[123&]{num} {space} [RU]{lang:ru-normal} @ .`,
	},
}

var numericNames = []string{"numeric"}

var numericRows = map[string][]string{
	"numeric": {
		`1 2 3`,
		`4 5 6`,
		`7 8 9`,
		`. 0 {bksp}`,
		`[C]{clear}`,
	},
}

// FullSet returns the Cyrillic/Latin keyboard with a symbols layout.
func FullSet() Set { return mustSet(fullNames, fullRows) }

// NumericSet returns a keypad with digits, a pointer, backspace and clear.
func NumericSet() Set { return mustSet(numericNames, numericRows) }

// BuiltinSet returns a builtin set by name: "full" or "numeric".
func BuiltinSet(name string) (Set, error) {
	switch name {
	case "full":
		return FullSet(), nil
	case "numeric":
		return NumericSet(), nil
	default:
		return Set{}, fmt.Errorf("keyboard: unknown builtin set %q", name)
	}
}

func mustSet(names []string, rows map[string][]string) Set {
	s, err := NewSet(names, rows)
	if err != nil {
		panic(err)
	}
	return s
}
