// internal/ui/tower_card.go
package ui

import (
	"fmt"
	"image"

	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TowerCard — карточка типа башни в боковой панели.
type TowerCard struct {
	Rect   image.Rectangle
	Def    defs.TowerDefinition
	Hotkey string
}

// Draw рисует карточку. active — выбранный для постройки тип,
// affordable — хватает ли денег.
func (c *TowerCard) Draw(screen *ebiten.Image, regular, title font.Face, active, affordable bool) {
	x, y := float32(c.Rect.Min.X), float32(c.Rect.Min.Y)
	w, h := float32(c.Rect.Dx()), float32(c.Rect.Dy())
	bg := config.PanelColor
	if active {
		bg = config.ActiveCardColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, c.Def.Color.RGBA(), false)
	vector.DrawFilledCircle(screen, x+14, y+16, 7, c.Def.Color.RGBA(), true)

	nameX := c.Rect.Min.X + 28
	text.Draw(screen, c.Def.Name, title, nameX, c.Rect.Min.Y+22, config.TextLightColor)

	costColor := config.TextLightColor
	if !affordable {
		costColor = config.HealthLowColor
	}
	cost := fmt.Sprintf("%d cr  [%s]", c.Def.Cost, c.Hotkey)
	costW := text.BoundString(regular, cost).Dx()
	text.Draw(screen, cost, regular, c.Rect.Max.X-costW-8, c.Rect.Min.Y+20, costColor)

	text.Draw(screen, c.Def.Description, regular, c.Rect.Min.X+8, c.Rect.Min.Y+40, config.TextDimColor)
	text.Draw(screen, layout.StatsLine(c.Def.Stats), regular, c.Rect.Min.X+8, c.Rect.Min.Y+56, config.TextLightColor)
}
