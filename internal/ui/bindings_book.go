// internal/ui/bindings_book.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BindingRow — строка таблицы клавиш: действие и назначенная клавиша.
type BindingRow struct {
	Label string
	Key   string
}

// BindingsBook отображает окно настроек с таблицей клавиш.
type BindingsBook struct {
	X, Y      float32
	Width     float32
	Height    float32
	fontFace  font.Face
	titleFace font.Face
}

func NewBindingsBook(x, y, width, height float32, regular, title font.Face) *BindingsBook {
	return &BindingsBook{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		fontFace:  regular,
		titleFace: title,
	}
}

// Draw рисует таблицу. selected — строка под курсором; awaiting — ждём
// нажатия новой клавиши для неё. status — строка подсказки внизу.
func (b *BindingsBook) Draw(screen *ebiten.Image, rows []BindingRow, selected int, awaiting bool, status string) {
	whiteColor := color.RGBA{255, 255, 255, 255}
	grayColor := color.RGBA{140, 140, 150, 255}
	accentColor := color.RGBA{220, 160, 60, 255}

	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 235}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, borderColor, false)

	title := "Key bindings"
	titleBounds := text.BoundString(b.titleFace, title)
	titleX := b.X + (b.Width-float32(titleBounds.Dx()))/2
	titleY := b.Y + 30
	text.Draw(screen, title, b.titleFace, int(titleX), int(titleY), whiteColor)

	lineHeight := b.RowHeight()
	keyX := b.X + b.Width - 140

	for i, row := range rows {
		top, bottom := b.RowSpan(i, lineHeight)
		rowY := bottom - 6
		labelColor := grayColor
		if i == selected {
			labelColor = whiteColor
			vector.DrawFilledRect(screen, b.X+10, float32(top), b.Width-20, float32(bottom-top), color.RGBA{40, 50, 80, 255}, false)
		}
		text.Draw(screen, row.Label, b.fontFace, int(b.X+20), rowY, labelColor)

		key := row.Key
		keyColor := labelColor
		if i == selected && awaiting {
			key = "press a key..."
			keyColor = accentColor
		}
		text.Draw(screen, key, b.fontFace, int(keyX), rowY, keyColor)
	}

	if status != "" {
		text.Draw(screen, status, b.fontFace, int(b.X+20), int(b.Y+b.Height-16), grayColor)
	}
}

// RowHeight — высота строки таблицы.
func (b *BindingsBook) RowHeight() int {
	return b.fontFace.Metrics().Height.Ceil() + 10
}

// RowSpan returns the vertical extent of row i on screen.
func (b *BindingsBook) RowSpan(i, rowHeight int) (top, bottom int) {
	top = int(b.Y) + 50 + i*rowHeight
	return top, top + rowHeight
}
