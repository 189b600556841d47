// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/layout"
	"go-rail-defense/internal/types"
	"go-rail-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel displays information about the selected tower.
// Содержимое выезжает сверху вниз при выборе новой башни.
type InfoPanel struct {
	Rect          image.Rectangle
	UpgradeButton *Button
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	level         *TowerLevelIndicator
	currentY      float64 // смещение содержимого, 0 — на месте
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(rect, upgradeRect image.Rectangle, regular, title font.Face) *InfoPanel {
	return &InfoPanel{
		Rect:          rect,
		UpgradeButton: NewButton(upgradeRect, "Upgrade", regular),
		fontFace:      regular,
		titleFontFace: title,
		level:         NewTowerLevelIndicator(float32(rect.Max.X-60), float32(rect.Min.Y+12)),
	}
}

// SetTarget переключает панель на башню; 0 — ничего не выбрано.
func (p *InfoPanel) SetTarget(id types.EntityID) {
	if id == p.TargetEntity {
		return
	}
	p.TargetEntity = id
	if id != 0 {
		p.currentY = -float64(p.Rect.Dy()) / 2
	}
}

func (p *InfoPanel) Update() {
	p.currentY = utils.Approach(p.currentY, 0, animationSpeed)
}

// Draw рисует панель. tower — выбранная башня или nil, upgradeCost и money
// нужны, чтобы показать доступность улучшения.
func (p *InfoPanel) Draw(screen *ebiten.Image, tower *component.Tower, upgradeCost, money, cursorX, cursorY int) {
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	if tower == nil {
		text.Draw(screen, "Click a tower to select it.", p.fontFace, p.Rect.Min.X+10, p.Rect.Min.Y+24, config.TextDimColor)
		return
	}

	offset := int(p.currentY)
	startX := p.Rect.Min.X + 10
	yPos := p.Rect.Min.Y + 22 + offset
	text.Draw(screen, tower.Name, p.titleFontFace, startX, yPos, config.TextLightColor)
	if offset == 0 {
		p.level.Draw(screen, tower.Level)
	}
	yPos += lineHeight
	text.Draw(screen, layout.StatsLine(tower.Stats), p.fontFace, startX, yPos, config.TextLightColor)
	if tower.Stats.Slow != nil {
		yPos += lineHeight
		slow := fmt.Sprintf("Slow %.0f%% for %.1fs", (1-tower.Stats.Slow.Factor)*100, tower.Stats.Slow.Duration)
		text.Draw(screen, slow, p.fontFace, startX, yPos, config.TextDimColor)
	}

	p.drawUpgradeButton(screen, tower, upgradeCost, money, cursorX, cursorY)
}

func (p *InfoPanel) drawUpgradeButton(screen *ebiten.Image, tower *component.Tower, cost, money, cursorX, cursorY int) {
	b := p.UpgradeButton
	if tower.Level >= config.MaxTowerLevel {
		b.Text = "Max level"
		b.Disabled = true
	} else {
		b.Text = fmt.Sprintf("Upgrade %d cr", cost)
		b.Disabled = money < cost
	}
	b.Draw(screen, cursorX, cursorY)
}
