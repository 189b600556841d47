// internal/ui/log_panel.go
package ui

import (
	"image"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LogPanel выводит последние записи журнала, новые сверху.
type LogPanel struct {
	Rect     image.Rectangle
	fontFace font.Face
}

func NewLogPanel(rect image.Rectangle, face font.Face) *LogPanel {
	return &LogPanel{Rect: rect, fontFace: face}
}

func (p *LogPanel) Draw(screen *ebiten.Image, entries []app.Entry) {
	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	vector.DrawFilledRect(screen, x, y, float32(p.Rect.Dx()), float32(p.Rect.Dy()), config.BackgroundColor, false)
	vector.StrokeRect(screen, x, y, float32(p.Rect.Dx()), float32(p.Rect.Dy()), 1, config.TextDimColor, false)

	lh := p.fontFace.Metrics().Height.Ceil() + 2
	maxWidth := p.Rect.Dx() - 16
	lineY := p.Rect.Min.Y + lh
	for i, e := range entries {
		if lineY > p.Rect.Max.Y-4 {
			break
		}
		c := config.TextDimColor
		if i == 0 {
			c = config.TextLightColor
		}
		text.Draw(screen, p.fit(e.String(), maxWidth), p.fontFace, p.Rect.Min.X+8, lineY, c)
		lineY += lh
	}
}

// fit обрезает строку по ширине панели.
func (p *LogPanel) fit(s string, width int) string {
	if text.BoundString(p.fontFace, s).Dx() <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && text.BoundString(p.fontFace, string(r)+"…").Dx() > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
