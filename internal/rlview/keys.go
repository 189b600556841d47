// internal/rlview/keys.go
package rlview

import (
	"go-rail-defense/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibKeys переводит коды raylib в имена клавиш привязок.
var raylibKeys = map[int32]input.Key{
	rl.KeyA: "A", rl.KeyB: "B", rl.KeyC: "C", rl.KeyD: "D", rl.KeyE: "E",
	rl.KeyF: "F", rl.KeyG: "G", rl.KeyH: "H", rl.KeyI: "I", rl.KeyJ: "J",
	rl.KeyK: "K", rl.KeyL: "L", rl.KeyM: "M", rl.KeyN: "N", rl.KeyO: "O",
	rl.KeyP: "P", rl.KeyQ: "Q", rl.KeyR: "R", rl.KeyS: "S", rl.KeyT: "T",
	rl.KeyU: "U", rl.KeyV: "V", rl.KeyW: "W", rl.KeyX: "X", rl.KeyY: "Y",
	rl.KeyZ: "Z",

	rl.KeyZero: "0", rl.KeyOne: "1", rl.KeyTwo: "2", rl.KeyThree: "3", rl.KeyFour: "4",
	rl.KeyFive: "5", rl.KeySix: "6", rl.KeySeven: "7", rl.KeyEight: "8", rl.KeyNine: "9",

	rl.KeySpace:     "Space",
	rl.KeyTab:       "Tab",
	rl.KeyEscape:    "Escape",
	rl.KeyEnter:     "Enter",
	rl.KeyBackspace: "Backspace",
	rl.KeyMinus:     "Minus",
	rl.KeyEqual:     "Equal",
	rl.KeyComma:     "Comma",
	rl.KeyPeriod:    "Period",
	rl.KeySlash:     "Slash",

	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",

	rl.KeyF1: "F1", rl.KeyF2: "F2", rl.KeyF3: "F3", rl.KeyF4: "F4",
	rl.KeyF5: "F5", rl.KeyF6: "F6", rl.KeyF7: "F7", rl.KeyF8: "F8",
	rl.KeyF9: "F9", rl.KeyF10: "F10", rl.KeyF11: "F11", rl.KeyF12: "F12",
}

// pressedKeys опустошает очередь нажатий raylib за кадр.
func pressedKeys() []input.Key {
	var keys []input.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if name, ok := raylibKeys[k]; ok {
			keys = append(keys, name)
		}
	}
	return keys
}
