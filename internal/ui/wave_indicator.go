// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-rail-defense/internal/config"
	"go-rail-defense/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и её название.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.IdleStateColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
	}
}

// Draw отрисовывает индикатор. waveNumber считается с единицы.
// Последняя волна выделяется красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber, waveCount int, label string) {
	if waveNumber <= 0 {
		return
	}
	caption := layout.WaveCaption(waveNumber, waveCount, label)

	textColor := i.Color
	if waveNumber == waveCount {
		textColor = config.DefeatColor
	}

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, caption, face, i.X+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, caption, face, i.X, i.Y, textColor)
}
