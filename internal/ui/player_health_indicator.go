// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-rail-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCircleRadius  = 4.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает целостность базы рядом кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует по кружку на единицу здоровья. Когда здоровья мало,
// заполненные кружки краснеют.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	fill := config.HealthOKColor
	if health <= config.LowHealthThreshold {
		fill = config.HealthLowColor
	}

	label := "Base " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, face, int(i.X), int(i.Y)+5, config.TextLightColor)

	startX := i.X + float32(text.BoundString(face, label).Dx()) + 10
	for j := 0; j < maxHealth; j++ {
		x := startX + float32(j)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		c := config.HealthBackColor
		if j < health {
			c = fill
		}
		vector.DrawFilledCircle(screen, x, i.Y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, i.Y, HealthCircleRadius, 1, config.TextDimColor, true)
	}
}
