// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/layout"
	"go-rail-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок, цвет которого показывает фазу забега.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	phase      component.Phase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор; смена фазы даёт пульсацию.
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.phase {
		i.phase = phase
		i.LastChange = time.Now()
	}
	currentRadius := i.Radius * utils.Pulse(time.Since(i.LastChange).Seconds())

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, layout.PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
