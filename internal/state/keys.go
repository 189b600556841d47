// internal/state/keys.go
package state

import (
	"go-rail-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys переводит коды ebiten в имена клавиш привязок.
var ebitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeyA: "A", ebiten.KeyB: "B", ebiten.KeyC: "C", ebiten.KeyD: "D",
	ebiten.KeyE: "E", ebiten.KeyF: "F", ebiten.KeyG: "G", ebiten.KeyH: "H",
	ebiten.KeyI: "I", ebiten.KeyJ: "J", ebiten.KeyK: "K", ebiten.KeyL: "L",
	ebiten.KeyM: "M", ebiten.KeyN: "N", ebiten.KeyO: "O", ebiten.KeyP: "P",
	ebiten.KeyQ: "Q", ebiten.KeyR: "R", ebiten.KeyS: "S", ebiten.KeyT: "T",
	ebiten.KeyU: "U", ebiten.KeyV: "V", ebiten.KeyW: "W", ebiten.KeyX: "X",
	ebiten.KeyY: "Y", ebiten.KeyZ: "Z",

	ebiten.KeyDigit0: "0", ebiten.KeyDigit1: "1", ebiten.KeyDigit2: "2",
	ebiten.KeyDigit3: "3", ebiten.KeyDigit4: "4", ebiten.KeyDigit5: "5",
	ebiten.KeyDigit6: "6", ebiten.KeyDigit7: "7", ebiten.KeyDigit8: "8",
	ebiten.KeyDigit9: "9",

	ebiten.KeySpace:     "Space",
	ebiten.KeyTab:       "Tab",
	ebiten.KeyEscape:    "Escape",
	ebiten.KeyEnter:     "Enter",
	ebiten.KeyBackspace: "Backspace",
	ebiten.KeyMinus:     "Minus",
	ebiten.KeyEqual:     "Equal",
	ebiten.KeyComma:     "Comma",
	ebiten.KeyPeriod:    "Period",
	ebiten.KeySlash:     "Slash",

	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",

	ebiten.KeyF1: "F1", ebiten.KeyF2: "F2", ebiten.KeyF3: "F3", ebiten.KeyF4: "F4",
	ebiten.KeyF5: "F5", ebiten.KeyF6: "F6", ebiten.KeyF7: "F7", ebiten.KeyF8: "F8",
	ebiten.KeyF9: "F9", ebiten.KeyF10: "F10", ebiten.KeyF11: "F11", ebiten.KeyF12: "F12",
}

// justPressedKeys возвращает клавиши, нажатые в этом кадре, в именах привязок.
func justPressedKeys(buf []ebiten.Key) ([]input.Key, []ebiten.Key) {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	keys := make([]input.Key, 0, len(buf))
	for _, k := range buf {
		if name, ok := ebitenKeys[k]; ok {
			keys = append(keys, name)
		}
	}
	return keys, buf
}
