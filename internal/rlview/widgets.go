// internal/rlview/widgets.go
package rlview

import (
	"image"
	"image/color"
	"time"

	"go-rail-defense/internal/config"
	"go-rail-defense/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func rectToRL(r image.Rectangle) rl.Rectangle {
	return rl.NewRectangle(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()))
}

// pulse — короткое увеличение после щелчка или смены состояния.
func pulse(since time.Time) float32 {
	return utils.Pulse(time.Since(since).Seconds())
}

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Disabled   bool
	Font       rl.Font
	FontSize   float32
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rectToRL(rect),
		Text:       text,
		TextColor:  colorToRL(config.TextLightColor),
		BgColor:    colorToRL(config.ButtonColor),
		HoverColor: colorToRL(config.ButtonHoverColor),
		Font:       font,
		FontSize:   config.FontSize,
	}
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	textColor := b.TextColor
	if b.Disabled {
		bgColor = colorToRL(config.PanelColor)
		textColor = colorToRL(config.TextDimColor)
	} else if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 1, colorToRL(config.TextDimColor))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2
	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, textColor)
}

// SpeedButtonRL - версия кнопки скорости для Raylib
type SpeedButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []rl.Color
	CurrentState  int
}

func NewSpeedButtonRL(x, y, size float32, stateColors []color.RGBA) *SpeedButtonRL {
	colors := make([]rl.Color, len(stateColors))
	for i, c := range stateColors {
		colors[i] = colorToRL(c)
	}
	return &SpeedButtonRL{X: x, Y: y, Size: size, StateColors: colors}
}

func (b *SpeedButtonRL) SetState(index int) {
	if index < 0 || index >= len(b.StateColors) || index == b.CurrentState {
		return
	}
	b.CurrentState = index
	b.LastClickTime = time.Now()
}

func (b *SpeedButtonRL) Draw() {
	triangleSize := b.Size * pulse(b.LastClickTime)
	rlColor := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		// raylib ждёт вершины против часовой стрелки
		p1 := rl.NewVector2(b.X-width+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X-width+dx, b.Y+height/2)
		p3 := rl.NewVector2(b.X+dx, b.Y)
		rl.DrawTriangle(p1, p2, p3, rlColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

// PauseButtonRL - версия кнопки паузы для Raylib
type PauseButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButtonRL(x, y, size float32, pauseColor, playColor color.Color) *PauseButtonRL {
	return &PauseButtonRL{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButtonRL) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func (b *PauseButtonRL) Draw() {
	rectSize := b.Size * pulse(b.LastClickTime)

	if b.IsPaused {
		// Треугольник (play)
		rlColor := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-rectSize, b.Y-rectSize*1.2)
		p2 := rl.NewVector2(b.X-rectSize, b.Y+rectSize*1.2)
		p3 := rl.NewVector2(b.X+rectSize, b.Y)
		rl.DrawTriangle(p1, p2, p3, rlColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}
	// Два прямоугольника (pause)
	rlColor := colorToRL(b.PauseColor)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rl.DrawRectangleV(rl.NewVector2(x, b.Y-height/2), rl.NewVector2(width, height), rlColor)
		rl.DrawRectangleLines(int32(x), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	}
}

// StateIndicatorRL - версия индикатора для Raylib
type StateIndicatorRL struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	color      color.RGBA
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор; смена цвета даёт пульсацию.
func (i *StateIndicatorRL) Draw(stateColor color.RGBA) {
	if stateColor != i.color {
		i.color = stateColor
		i.LastChange = time.Now()
	}
	currentRadius := i.Radius * pulse(i.LastChange)
	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, colorToRL(stateColor))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}
