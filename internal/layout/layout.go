// internal/layout/layout.go
package layout

import (
	"image"

	"go-rail-defense/internal/config"
	"go-rail-defense/pkg/grid"
)

// Control — кнопка интерфейса вне игрового поля.
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlNextWave
	ControlReset
	ControlUpgrade
	ControlSettings
	ControlPause
	ControlSpeed
)

const (
	panelMargin   = 12
	cardHeight    = 64
	cardGap       = 6
	buttonHeight  = 30
	buttonGap     = 7
	infoHeight    = 100
	roundHitScale = 1.5 // круглые кнопки ловят клик чуть шире своего размера
)

// Layout — положение всех элементов экрана. Используется ebiten и raylib
// фронтендами, поэтому не зависит ни от одного из них.
type Layout struct {
	Field     image.Rectangle
	TopBar    image.Rectangle
	Panel     image.Rectangle
	Cards     []image.Rectangle
	Start     image.Rectangle
	NextWave  image.Rectangle
	Reset     image.Rectangle
	Upgrade   image.Rectangle
	Settings  image.Rectangle
	InfoPanel image.Rectangle
	LogPanel  image.Rectangle

	PauseCenter     image.Point
	SpeedCenter     image.Point
	IndicatorCenter image.Point
}

// Default lays out the screen for towerCount tower cards.
func Default(towerCount int) Layout {
	l := Layout{
		Field:  image.Rect(config.FieldOffsetX, config.FieldOffsetY, config.FieldOffsetX+config.FieldWidth, config.FieldOffsetY+config.FieldHeight),
		TopBar: image.Rect(0, 0, config.ScreenWidth, config.FieldOffsetY),
		Panel:  image.Rect(config.SidePanelX, config.FieldOffsetY, config.ScreenWidth, config.ScreenHeight),
	}

	x0 := l.Panel.Min.X + panelMargin
	x1 := l.Panel.Max.X - panelMargin
	y := l.Panel.Min.Y + 32 // место под заголовок

	for i := 0; i < towerCount; i++ {
		l.Cards = append(l.Cards, image.Rect(x0, y, x1, y+cardHeight))
		y += cardHeight + cardGap
	}

	y += buttonGap
	w := (x1 - x0 - 2*buttonGap) / 3
	l.Start = image.Rect(x0, y, x0+w, y+buttonHeight)
	l.NextWave = image.Rect(x0+w+buttonGap, y, x0+2*w+buttonGap, y+buttonHeight)
	l.Reset = image.Rect(x0+2*(w+buttonGap), y, x1, y+buttonHeight)
	y += buttonHeight + 2*buttonGap

	l.InfoPanel = image.Rect(x0, y, x1, y+infoHeight)
	l.Upgrade = image.Rect(x0+8, y+infoHeight-buttonHeight-8, x0+148, y+infoHeight-8)
	y += infoHeight + buttonGap

	l.LogPanel = image.Rect(x0, y, x1, l.Panel.Max.Y-panelMargin)

	barMid := l.TopBar.Min.Y + l.TopBar.Dy()/2
	l.Settings = image.Rect(config.ScreenWidth-250, barMid-12, config.ScreenWidth-150, barMid+12)
	l.IndicatorCenter = image.Pt(config.ScreenWidth-120, barMid)
	l.PauseCenter = image.Pt(config.ScreenWidth-80, barMid)
	l.SpeedCenter = image.Pt(config.ScreenWidth-35, barMid)
	return l
}

// FieldPoint converts screen coordinates into field coordinates.
// ok is false outside the field.
func (l Layout) FieldPoint(x, y int) (grid.Point, bool) {
	pt := image.Pt(x, y)
	p := grid.Point{X: float64(x - l.Field.Min.X), Y: float64(y - l.Field.Min.Y)}
	return p, pt.In(l.Field)
}

// ScreenPoint converts field coordinates to screen coordinates.
func (l Layout) ScreenPoint(p grid.Point) (float32, float32) {
	return float32(p.X) + float32(l.Field.Min.X), float32(p.Y) + float32(l.Field.Min.Y)
}

// CardAt returns the tower card under the cursor.
func (l Layout) CardAt(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	for i, r := range l.Cards {
		if pt.In(r) {
			return i, true
		}
	}
	return 0, false
}

// ControlAt returns the button under the cursor.
func (l Layout) ControlAt(x, y int) Control {
	pt := image.Pt(x, y)
	switch {
	case pt.In(l.Start):
		return ControlStart
	case pt.In(l.NextWave):
		return ControlNextWave
	case pt.In(l.Reset):
		return ControlReset
	case pt.In(l.Upgrade):
		return ControlUpgrade
	case pt.In(l.Settings):
		return ControlSettings
	case inCircle(pt, l.PauseCenter, config.PauseButtonSize*roundHitScale):
		return ControlPause
	case inCircle(pt, l.SpeedCenter, config.SpeedButtonSize*roundHitScale):
		return ControlSpeed
	}
	return ControlNone
}

func inCircle(p, c image.Point, r float64) bool {
	dx := float64(p.X - c.X)
	dy := float64(p.Y - c.Y)
	return dx*dx+dy*dy <= r*r
}
