// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/assets"
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/layout"
	"go-rail-defense/internal/types"
	"go-rail-defense/internal/ui"
	"go-rail-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	bindings *input.Bindings
	layout   layout.Layout
	fonts    *assets.Fonts

	field    *render.FieldRenderer
	entities *render.EntityRenderer

	indicator       *ui.StateIndicator
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.PlayerHealthIndicator
	waveProgress    *ui.WaveProgressIndicator
	cards           []*ui.TowerCard
	startButton     *ui.Button
	nextButton      *ui.Button
	resetButton     *ui.Button
	settingsButton  *ui.Button
	infoPanel       *ui.InfoPanel
	logPanel        *ui.LogPanel

	keyBuf        []ebiten.Key
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, g *app.Game, bindings *input.Bindings, fonts *assets.Fonts) *GameState {
	l := layout.Default(len(g.Defs.Towers))

	fieldColors := render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		PathColor:       config.PathColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		PathWidth:       config.PathWidth,
		GridLineWidth:   1,
	}
	offX, offY := float64(l.Field.Min.X), float64(l.Field.Min.Y)

	gs := &GameState{
		sm:              sm,
		game:            g,
		bindings:        bindings,
		layout:          l,
		fonts:           fonts,
		field:           render.NewFieldRenderer(g.World.Grid, g.Path(), offX, offY, fieldColors),
		entities:        render.NewEntityRenderer(offX, offY, fonts.Regular),
		indicator:       ui.NewStateIndicator(float32(l.IndicatorCenter.X), float32(l.IndicatorCenter.Y), 10),
		speedButton:     ui.NewSpeedButton(float32(l.SpeedCenter.X), float32(l.SpeedCenter.Y), config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:     ui.NewPauseButton(float32(l.PauseCenter.X), float32(l.PauseCenter.Y), config.PauseButtonSize, config.PauseColor, config.PlayColor),
		waveIndicator:   ui.NewWaveIndicator(450, l.TopBar.Min.Y+26),
		healthIndicator: ui.NewPlayerHealthIndicator(120, float32(l.TopBar.Min.Y+l.TopBar.Dy()/2)),
		waveProgress:    ui.NewWaveProgressIndicator(640, float32(l.TopBar.Min.Y+14), 120, 12),
		startButton:     ui.NewButton(l.Start, "Start", fonts.Regular),
		nextButton:      ui.NewButton(l.NextWave, "Next wave", fonts.Regular),
		resetButton:     ui.NewButton(l.Reset, "Reset", fonts.Regular),
		settingsButton:  ui.NewButton(l.Settings, "Settings", fonts.Regular),
		infoPanel:       ui.NewInfoPanel(l.InfoPanel, l.Upgrade, fonts.Regular, fonts.Title),
		logPanel:        ui.NewLogPanel(l.LogPanel, fonts.Regular),
		lastClickTime:   time.Now(),
	}
	for i, def := range g.Defs.Towers {
		gs.cards = append(gs.cards, &ui.TowerCard{Rect: l.Cards[i], Def: def})
	}
	return gs
}

func (g *GameState) Enter() {
	g.keyBuf = g.keyBuf[:0]
}

func (g *GameState) Update(deltaTime float64) {
	var keys []input.Key
	keys, g.keyBuf = justPressedKeys(g.keyBuf)
	for _, k := range keys {
		if a, ok, _ := input.HandleKey(g.game, g.bindings, k); ok && a == input.Settings {
			g.openSettings()
			return
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		x, y := ebiten.CursorPosition()
		g.lastClickTime = time.Now()
		if a, ok, _ := input.Click(g.game, g.layout, x, y); ok && a == input.Settings {
			g.openSettings()
			return
		}
	}
	// Правый клик снимает выбор башни
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelection()
	}

	g.game.Update(deltaTime)
	g.syncWidgets()
}

func (g *GameState) openSettings() {
	g.sm.SetState(NewSettingsState(g.sm, g, g.bindings, g.fonts))
}

// syncWidgets подтягивает состояние кнопок из игры.
func (g *GameState) syncWidgets() {
	g.speedButton.SetState(g.game.Run.SpeedIndex)
	g.pauseButton.SetPaused(g.game.IsPaused())

	g.infoPanel.SetTarget(g.selectedID())
	g.infoPanel.Update()

	phase := g.game.Phase()
	g.startButton.Disabled = phase != component.Idle
	g.nextButton.Disabled = phase != component.WaveCleared
	for i, c := range g.cards {
		c.Hotkey = string(g.bindings.Key(input.SelectTower1 + input.Action(i)))
	}
}

func (g *GameState) selectedID() types.EntityID {
	if t, ok := g.game.SelectedTower(); ok {
		return t.ID
	}
	return 0
}

func (g *GameState) scene() render.Scene {
	s := render.Scene{
		Towers:      g.game.Towers(),
		Enemies:     g.game.Enemies(),
		Projectiles: g.game.Projectiles(),
		Texts:       g.game.Texts(),
	}
	if t, ok := g.game.SelectedTower(); ok {
		s.Selected = t
	}
	if g.game.Phase().Terminal() {
		return s
	}
	x, y := ebiten.CursorPosition()
	if p, ok := g.layout.FieldPoint(x, y); ok {
		pv := g.game.PlacementPreview(p)
		s.Hover = &render.Hover{Center: pv.Center, Range: pv.Range, Valid: pv.Err == nil}
	}
	return s
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	g.field.Draw(screen)
	g.entities.Draw(screen, g.scene())
	g.drawTopBar(screen)
	g.drawSidePanel(screen)
	g.drawOverlay(screen)
}

func (g *GameState) drawTopBar(screen *ebiten.Image) {
	run := g.game.Run
	bar := g.layout.TopBar
	mid := bar.Min.Y + bar.Dy()/2

	text.Draw(screen, fmt.Sprintf("Credits %d", run.Money), g.fonts.Regular, 12, mid+5, config.TextLightColor)
	g.healthIndicator.Draw(screen, g.fonts.Regular, run.DisplayHealth(), config.StartingHealth)
	g.waveIndicator.Draw(screen, g.fonts.Regular, run.Wave+1, g.game.WaveCount(), g.game.WaveLabel())
	g.waveProgress.Draw(screen, float32(g.game.WaveProgress()))
	clock := app.Entry{Time: g.game.GetGameTime()}.Stamp()
	text.Draw(screen, clock, g.fonts.Regular, 780, mid+5, config.TextDimColor)

	x, y := ebiten.CursorPosition()
	g.settingsButton.Draw(screen, x, y)
	g.indicator.Draw(screen, g.game.Phase())
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
}

func (g *GameState) drawSidePanel(screen *ebiten.Image) {
	panel := g.layout.Panel
	text.Draw(screen, "Towers", g.fonts.Title, panel.Min.X+12, panel.Min.Y+22, config.TextLightColor)

	money := g.game.Run.Money
	active := g.game.ActiveTower().ID
	for _, c := range g.cards {
		c.Draw(screen, g.fonts.Regular, g.fonts.Title, c.Def.ID == active, money >= c.Def.Cost)
	}

	x, y := ebiten.CursorPosition()
	g.startButton.Draw(screen, x, y)
	g.nextButton.Draw(screen, x, y)
	g.resetButton.Draw(screen, x, y)

	tower, _ := g.game.SelectedTower()
	cost := 0
	if tower != nil {
		cost = g.game.UpgradeCost(tower)
	}
	g.infoPanel.Draw(screen, tower, cost, money, x, y)
	g.logPanel.Draw(screen, g.game.Journal.Latest(config.LogPanelLines))
}

// drawOverlay затемняет поле на паузе и после конца забега.
func (g *GameState) drawOverlay(screen *ebiten.Image) {
	var title string
	var c color.RGBA
	switch {
	case g.game.Phase() == component.Victory:
		title, c = "VICTORY", config.VictoryColor
	case g.game.Phase() == component.Defeat:
		title, c = "DEFEAT", config.DefeatColor
	case g.game.IsPaused():
		title, c = "PAUSED", config.TextLightColor
	default:
		return
	}

	f := g.layout.Field
	vector.DrawFilledRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), config.OverlayColor, false)
	w := text.BoundString(g.fonts.Title, title).Dx()
	text.Draw(screen, title, g.fonts.Title, f.Min.X+(f.Dx()-w)/2, f.Min.Y+f.Dy()/2, c)
	if g.game.Phase().Terminal() {
		hint := fmt.Sprintf("Press %s or Reset to play again", g.bindings.Key(input.Reset))
		hw := text.BoundString(g.fonts.Regular, hint).Dx()
		text.Draw(screen, hint, g.fonts.Regular, f.Min.X+(f.Dx()-hw)/2, f.Min.Y+f.Dy()/2+28, config.TextDimColor)
	}
}

func (g *GameState) Exit() {}
