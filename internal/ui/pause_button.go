// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"go-rail-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — две полоски во время игры, треугольник на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// SetPaused синхронизирует кнопку с игрой, пульсируя при смене вида.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * utils.Pulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		// Треугольник (play)
		drawTriangle(screen, b.X-rectSize, b.Y-rectSize*1.2, b.X-rectSize, b.Y+rectSize*1.2, b.X+rectSize, b.Y, b.PlayColor)
		return
	}
	// Две полоски (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}
