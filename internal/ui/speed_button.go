// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"go-rail-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка скорости: два треугольника, цвет по множителю.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetState синхронизирует кнопку с индексом скорости игры.
// Смена состояния запускает короткую пульсацию.
func (b *SpeedButton) SetState(index int) {
	if index < 0 || index >= len(b.StateColors) || index == b.CurrentState {
		return
	}
	b.CurrentState = index
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * utils.Pulse(time.Since(b.LastClickTime).Seconds())

	c := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

// drawTriangle заливает треугольник и обводит его белым.
func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	vector.FillPath(screen, &p, &vector.FillOptions{}, pathOptions(c))
	vector.StrokePath(screen, &p, &vector.StrokeOptions{Width: 1}, pathOptions(color.RGBA{255, 255, 255, 255}))
}

func pathOptions(c color.RGBA) *vector.DrawPathOptions {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c)
	return &vector.DrawPathOptions{AntiAlias: true, ColorScale: cs}
}
