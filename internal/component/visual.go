// internal/component/visual.go
package component

import "image/color"

// FloatingText — всплывающее число урона.
type FloatingText struct {
	Position Position
	Text     string
	Life     float64 // Сколько времени осталось
	Duration float64 // Общая продолжительность эффекта
	Rise     float64 // pixels per second upward
	Color    color.RGBA
}

// Alpha returns the remaining opacity in [0,1].
func (t *FloatingText) Alpha() float64 {
	if t.Duration <= 0 {
		return 0
	}
	a := t.Life / t.Duration
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
