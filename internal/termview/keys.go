// internal/termview/keys.go
package termview

import (
	"unicode"

	"go-rail-defense/internal/input"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyTab:        "Tab",
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF5:         "F5",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF8:         "F8",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF11:        "F11",
	tcell.KeyF12:        "F12",
}

// Терминал присылает символы, а не физические клавиши: '+' и '=' на
// одной клавише, поэтому оба дают Equal.
var runeKeys = map[rune]input.Key{
	' ': "Space",
	'-': "Minus",
	'_': "Minus",
	'=': "Equal",
	'+': "Equal",
	',': "Comma",
	'.': "Period",
	'/': "Slash",
}

// keyName переводит нажатие tcell в имя клавиши привязок.
func keyName(k tcell.Key, r rune) (input.Key, bool) {
	if k != tcell.KeyRune {
		name, ok := specialKeys[k]
		return name, ok
	}
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return input.Key(string(unicode.ToUpper(r))), true
	case r >= '0' && r <= '9':
		return input.Key(string(r)), true
	}
	name, ok := runeKeys[r]
	return name, ok
}
