// internal/ui/tower_level_indicator.go
package ui

import (
	"image/color"

	"go-rail-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	levelRectWidth  = 16
	levelRectHeight = 10
	levelRectGap    = 6
	borderWidth     = 1
)

var levelFillColor = color.RGBA{70, 130, 180, 220}

// TowerLevelIndicator рисует ряд прямоугольников: заполненные — набранные уровни.
type TowerLevelIndicator struct {
	X, Y float32
}

func NewTowerLevelIndicator(x, y float32) *TowerLevelIndicator {
	return &TowerLevelIndicator{X: x, Y: y}
}

func (i *TowerLevelIndicator) Draw(screen *ebiten.Image, level int) {
	for j := 0; j < config.MaxTowerLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, color.White, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, levelFillColor, true)
		}
	}
}
