// internal/ui/wave_progress_indicator.go
package ui

import (
	"image/color"

	"go-rail-defense/internal/config"
	"go-rail-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WaveProgressIndicator показывает, какая доля врагов волны уже вышла.
type WaveProgressIndicator struct {
	X, Y          float32
	Width, Height float32
	shown         float32 // плавно догоняет реальную долю
}

func NewWaveProgressIndicator(x, y, width, height float32) *WaveProgressIndicator {
	return &WaveProgressIndicator{X: x, Y: y, Width: width, Height: height}
}

// progressColor: синий в начале волны, жёлтый ближе к концу.
func progressColor(pct float32) color.RGBA {
	switch {
	case pct > 0.66:
		return color.RGBA{220, 200, 60, 255}
	case pct > 0.33:
		return color.RGBA{220, 160, 60, 255}
	default:
		return config.IdleStateColor
	}
}

// Draw рисует полосу; pct — от 0.0 до 1.0.
func (i *WaveProgressIndicator) Draw(screen *ebiten.Image, pct float32) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBackColor, false)
	if pct > 1 {
		pct = 1
	}
	if pct < i.shown {
		i.shown = pct // новая волна или сброс: без анимации
	} else {
		i.shown = utils.Lerp(i.shown, pct, 0.2)
	}
	if i.shown > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, i.Width*i.shown, i.Height, progressColor(i.shown), false)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, config.TextDimColor, false)
}
