// internal/input/keys.go
package input

// Key — имя клавиши, не зависящее от фронтенда. Каждый фронтенд
// переводит свои коды клавиш в эти имена.
type Key string

const NoKey Key = ""

// KnownKeys lists every key name a binding may use.
var KnownKeys = func() []Key {
	keys := make([]Key, 0, 64)
	for c := 'A'; c <= 'Z'; c++ {
		keys = append(keys, Key(string(c)))
	}
	for c := '0'; c <= '9'; c++ {
		keys = append(keys, Key(string(c)))
	}
	keys = append(keys,
		"Space", "Tab", "Escape", "Enter", "Backspace",
		"Minus", "Equal", "Comma", "Period", "Slash",
		"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
		"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	)
	return keys
}()

var knownKeySet = func() map[Key]bool {
	m := make(map[Key]bool, len(KnownKeys))
	for _, k := range KnownKeys {
		m[k] = true
	}
	return m
}()

// Valid reports whether k is one of KnownKeys.
func (k Key) Valid() bool {
	return knownKeySet[k]
}
