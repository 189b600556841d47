// pkg/render/entity_renderer.go
package render

import (
	"image/color"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Hover — предпросмотр постройки под курсором.
type Hover struct {
	Center grid.Point // центр клетки
	Range  float64
	Valid  bool
}

// Scene — всё, что меняется от кадра к кадру.
type Scene struct {
	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Texts       []*component.FloatingText
	Selected    *component.Tower // nil — ничего не выбрано
	Hover       *Hover           // nil — курсор вне поля
}

// EntityRenderer рисует динамические сущности поверх фона поля.
type EntityRenderer struct {
	offsetX, offsetY float32
	fontFace         font.Face
}

func NewEntityRenderer(offsetX, offsetY float64, face font.Face) *EntityRenderer {
	return &EntityRenderer{offsetX: float32(offsetX), offsetY: float32(offsetY), fontFace: face}
}

func (r *EntityRenderer) at(p component.Position) (float32, float32) {
	return float32(p.X) + r.offsetX, float32(p.Y) + r.offsetY
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, s Scene) {
	if s.Hover != nil {
		r.drawHover(screen, s.Hover)
	}
	if s.Selected != nil {
		x, y := r.at(s.Selected.Position)
		vector.StrokeCircle(screen, x, y, float32(s.Selected.Stats.Range), 1.5, config.SelectionColor, true)
	}

	for _, t := range s.Towers {
		r.drawTower(screen, t, t == s.Selected)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range s.Projectiles {
		x, y := r.at(p.Position)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, p.Color, true)
	}
	for _, t := range s.Texts {
		x, y := r.at(t.Position)
		c := WithAlpha(t.Color, t.Alpha())
		w := text.BoundString(r.fontFace, t.Text).Dx()
		text.Draw(screen, t.Text, r.fontFace, int(x)-w/2, int(y), c)
	}
}

func (r *EntityRenderer) drawHover(screen *ebiten.Image, h *Hover) {
	x := float32(h.Center.X) + r.offsetX
	y := float32(h.Center.Y) + r.offsetY
	var c color.RGBA
	if h.Valid {
		c = config.ValidHoverColor
	} else {
		c = config.InvalidHoverColor
	}
	half := float32(config.GridSize / 2)
	vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, false)
	vector.StrokeCircle(screen, x, y, float32(h.Range), 1, c, true)
}

func (r *EntityRenderer) drawTower(screen *ebiten.Image, t *component.Tower, selected bool) {
	x, y := r.at(t.Position)
	strokeColor := LightenColor(t.Color, 60)
	if selected {
		strokeColor = config.SelectionColor
	}
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+2, strokeColor, true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, DarkenColor(t.Color), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius-4, t.Color, true)
	// точки уровня
	for i := 0; i < t.Level; i++ {
		px := x - 4 + float32(i)*8
		vector.DrawFilledCircle(screen, px, y+config.TowerRadius+5, 2, config.TextLightColor, true)
	}
}

func (r *EntityRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := r.at(e.Position)
	body := e.Color
	if e.Slow.Timer > 0 {
		body = LightenColor(DarkenColor(body), 50)
	}
	vector.DrawFilledCircle(screen, x, y, float32(e.Radius), body, true)
	if e.Elite {
		vector.StrokeCircle(screen, x, y, float32(e.Radius)+2, 2, config.EliteEnemyColor, true)
	}

	// полоска здоровья над врагом
	frac := e.HealthFraction()
	barX := x - config.HealthBarWidth/2
	barY := y - float32(e.Radius) - config.HealthBarHeight - 4
	vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)
	fill := config.HealthOKColor
	if frac < config.HealthBarLow {
		fill = config.HealthLowColor
	}
	vector.DrawFilledRect(screen, barX, barY, float32(config.HealthBarWidth*frac), config.HealthBarHeight, fill, false)
}
