// internal/rlview/view.go
package rlview

import (
	"fmt"
	"image"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// View — raylib-фронтенд: тот же экран, что у ebiten, нарисованный
// примитивами raylib. Настройки открываются поверх поля.
type View struct {
	game     *app.Game
	bindings *input.Bindings
	layout   layout.Layout
	font     rl.Font

	indicator   *StateIndicatorRL
	speedButton *SpeedButtonRL
	pauseButton *PauseButtonRL
	start       *Button
	next        *Button
	reset       *Button
	settings    *Button
	upgrade     *Button

	menu *input.RebindMenu // nil, пока настройки закрыты
}

func NewView(g *app.Game, bindings *input.Bindings, font rl.Font) *View {
	l := layout.Default(len(g.Defs.Towers))
	return &View{
		game:        g,
		bindings:    bindings,
		layout:      l,
		font:        font,
		indicator:   NewStateIndicatorRL(float32(l.IndicatorCenter.X), float32(l.IndicatorCenter.Y), 10),
		speedButton: NewSpeedButtonRL(float32(l.SpeedCenter.X), float32(l.SpeedCenter.Y), config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: NewPauseButtonRL(float32(l.PauseCenter.X), float32(l.PauseCenter.Y), config.PauseButtonSize, config.PauseColor, config.PlayColor),
		start:       NewButton(l.Start, "Start", font),
		next:        NewButton(l.NextWave, "Next wave", font),
		reset:       NewButton(l.Reset, "Reset", font),
		settings:    NewButton(l.Settings, "Settings", font),
		upgrade:     NewButton(l.Upgrade, "Upgrade", font),
	}
}

// Update обрабатывает ввод за кадр и продвигает симуляцию.
func (v *View) Update(deltaTime float64) {
	keys := pressedKeys()
	if v.menu != nil {
		v.updateSettings(keys)
		if v.menu != nil && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			pos := rl.GetMousePosition()
			if row, ok := settingsRowAt(int(pos.X), int(pos.Y), len(v.menu.Rows())); ok {
				v.menu.Select(row)
			}
		}
		return
	}

	for _, k := range keys {
		if a, ok, _ := input.HandleKey(v.game, v.bindings, k); ok && a == input.Settings {
			v.menu = input.NewRebindMenu(v.bindings)
			return
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if a, ok, _ := input.Click(v.game, v.layout, int(pos.X), int(pos.Y)); ok && a == input.Settings {
			v.menu = input.NewRebindMenu(v.bindings)
			return
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		v.game.ClearSelection()
	}

	v.game.Update(deltaTime)
	v.speedButton.SetState(v.game.Run.SpeedIndex)
	v.pauseButton.SetPaused(v.game.IsPaused())
}

func (v *View) updateSettings(keys []input.Key) {
	for _, k := range keys {
		if v.menu.HandleKey(k) {
			v.menu = nil
			return
		}
	}
}

func (v *View) Draw() {
	rl.ClearBackground(colorToRL(config.PanelColor))
	v.drawField()
	v.drawEntities()
	v.drawTopBar()
	v.drawSidePanel()
	v.drawOverlay()
	if v.menu != nil {
		v.drawSettings()
	}
}

func (v *View) text(s string, x, y int, size float32, c rl.Color) {
	rl.DrawTextEx(v.font, s, rl.NewVector2(float32(x), float32(y)), size, 1, c)
}

func (v *View) point(p component.Position) rl.Vector2 {
	x, y := v.layout.ScreenPoint(p)
	return rl.NewVector2(x, y)
}

func (v *View) drawField() {
	f := v.layout.Field
	rl.DrawRectangleRec(rectToRL(f), colorToRL(config.BackgroundColor))

	grid := v.game.World.Grid
	lineColor := colorToRL(config.GridLineColor)
	for c := 0; c <= grid.Cols(); c++ {
		x := int32(f.Min.X + int(float64(c)*grid.Size))
		rl.DrawLine(x, int32(f.Min.Y), x, int32(f.Max.Y), lineColor)
	}
	for r := 0; r <= grid.Rows(); r++ {
		y := int32(f.Min.Y + int(float64(r)*grid.Size))
		rl.DrawLine(int32(f.Min.X), y, int32(f.Max.X), y, lineColor)
	}

	path := v.game.Path()
	pathColor := colorToRL(config.PathColor)
	for i := 0; i < path.Segments(); i++ {
		a, b := path.Segment(i)
		rl.DrawLineEx(v.point(a), v.point(b), config.PathWidth, pathColor)
	}
	for _, p := range path.Points() {
		rl.DrawCircleV(v.point(p), config.PathWidth/2, pathColor)
	}
	if path.Len() > 0 {
		rl.DrawCircleV(v.point(path.Start()), config.PathWidth/3, colorToRL(config.EntryColor))
		rl.DrawCircleV(v.point(path.Point(path.Len()-1)), config.PathWidth/3, colorToRL(config.ExitColor))
	}
}

func (v *View) drawEntities() {
	selected, hasSelected := v.game.SelectedTower()
	mouse := rl.GetMousePosition()
	if p, ok := v.layout.FieldPoint(int(mouse.X), int(mouse.Y)); ok && !v.game.Phase().Terminal() && v.menu == nil {
		pv := v.game.PlacementPreview(p)
		c := colorToRL(config.ValidHoverColor)
		if pv.Err != nil {
			c = colorToRL(config.InvalidHoverColor)
		}
		center := v.point(pv.Center)
		half := float32(config.GridSize / 2)
		rl.DrawRectangleV(rl.NewVector2(center.X-half, center.Y-half), rl.NewVector2(half*2, half*2), c)
		rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(pv.Range), c)
	}
	if hasSelected {
		c := v.point(selected.Position)
		rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(selected.Stats.Range), colorToRL(config.SelectionColor))
	}

	for _, t := range v.game.Towers() {
		c := v.point(t.Position)
		stroke := colorToRL(config.TextDimColor)
		if hasSelected && t == selected {
			stroke = colorToRL(config.SelectionColor)
		}
		rl.DrawCircleV(c, config.TowerRadius+2, stroke)
		rl.DrawCircleV(c, config.TowerRadius, colorToRL(t.Color))
		for i := 0; i < t.Level; i++ {
			rl.DrawCircleV(rl.NewVector2(c.X-4+float32(i)*8, c.Y+config.TowerRadius+5), 2, rl.White)
		}
	}

	for _, e := range v.game.Enemies() {
		c := v.point(e.Position)
		rl.DrawCircleV(c, float32(e.Radius), colorToRL(e.Color))
		if e.Elite {
			rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(e.Radius)+2, colorToRL(config.EliteEnemyColor))
		}
		frac := float32(e.HealthFraction())
		barX := c.X - config.HealthBarWidth/2
		barY := c.Y - float32(e.Radius) - config.HealthBarHeight - 4
		rl.DrawRectangleV(rl.NewVector2(barX, barY), rl.NewVector2(config.HealthBarWidth, config.HealthBarHeight), colorToRL(config.HealthBackColor))
		fill := config.HealthOKColor
		if frac < config.HealthBarLow {
			fill = config.HealthLowColor
		}
		rl.DrawRectangleV(rl.NewVector2(barX, barY), rl.NewVector2(config.HealthBarWidth*frac, config.HealthBarHeight), colorToRL(fill))
	}

	for _, p := range v.game.Projectiles() {
		rl.DrawCircleV(v.point(p.Position), config.ProjectileRadius, colorToRL(p.Color))
	}
	for _, t := range v.game.Texts() {
		c := v.point(t.Position)
		size := rl.MeasureTextEx(v.font, t.Text, config.FontSize, 1)
		tint := rl.Fade(colorToRL(t.Color), float32(t.Alpha()))
		rl.DrawTextEx(v.font, t.Text, rl.NewVector2(c.X-size.X/2, c.Y-size.Y), config.FontSize, 1, tint)
	}
}

func (v *View) drawTopBar() {
	run := v.game.Run
	light := colorToRL(config.TextLightColor)
	v.text(fmt.Sprintf("Credits %d", run.Money), 12, 12, config.FontSize, light)

	healthColor := light
	if run.Health <= config.LowHealthThreshold {
		healthColor = colorToRL(config.HealthLowColor)
	}
	v.text(fmt.Sprintf("Base %d/%d", run.DisplayHealth(), config.StartingHealth), 120, 12, config.FontSize, healthColor)
	v.text(layout.WaveCaption(run.Wave+1, v.game.WaveCount(), v.game.WaveLabel()), 450, 12, config.FontSize, colorToRL(config.IdleStateColor))

	bar := rl.NewRectangle(640, 14, 120, 12)
	rl.DrawRectangleRec(bar, colorToRL(config.HealthBackColor))
	bar.Width *= float32(v.game.WaveProgress())
	rl.DrawRectangleRec(bar, colorToRL(config.IdleStateColor))
	v.text(app.Entry{Time: v.game.GetGameTime()}.Stamp(), 780, 12, config.FontSize, colorToRL(config.TextDimColor))
	if v.game.SoundOff() {
		v.text("muted", 826, 12, config.FontSize, colorToRL(config.TextDimColor))
	}

	v.settings.Draw(rl.GetMousePosition())
	v.indicator.Draw(layout.PhaseColor(v.game.Phase()))
	v.pauseButton.Draw()
	v.speedButton.Draw()
}

func (v *View) drawSidePanel() {
	panel := v.layout.Panel
	light := colorToRL(config.TextLightColor)
	dim := colorToRL(config.TextDimColor)
	v.text("Towers", panel.Min.X+12, panel.Min.Y+6, config.TitleFontSize, light)

	money := v.game.Run.Money
	active := v.game.ActiveTower().ID
	for i, def := range v.game.Defs.Towers {
		r := v.layout.Cards[i]
		bg := colorToRL(config.PanelColor)
		if def.ID == active {
			bg = colorToRL(config.ActiveCardColor)
		}
		rl.DrawRectangleRec(rectToRL(r), bg)
		rl.DrawRectangleLinesEx(rectToRL(r), 1, colorToRL(def.Color.RGBA()))
		costColor := light
		if money < def.Cost {
			costColor = colorToRL(config.HealthLowColor)
		}
		hotkey := v.bindings.Key(input.SelectTower1 + input.Action(i))
		v.text(def.Name, r.Min.X+8, r.Min.Y+6, config.TitleFontSize, light)
		v.text(fmt.Sprintf("%d cr  [%s]", def.Cost, hotkey), r.Max.X-100, r.Min.Y+8, config.FontSize, costColor)
		v.text(def.Description, r.Min.X+8, r.Min.Y+28, config.FontSize, dim)
		v.text(layout.StatsLine(def.Stats), r.Min.X+8, r.Min.Y+44, config.FontSize, light)
	}

	mouse := rl.GetMousePosition()
	phase := v.game.Phase()
	v.start.Disabled = phase != component.Idle
	v.next.Disabled = phase != component.WaveCleared
	v.start.Draw(mouse)
	v.next.Draw(mouse)
	v.reset.Draw(mouse)

	v.drawInfo(mouse)
	v.drawLog()
}

func (v *View) drawInfo(mouse rl.Vector2) {
	r := v.layout.InfoPanel
	rl.DrawRectangleRec(rectToRL(r), colorToRL(config.BackgroundColor))
	rl.DrawRectangleLinesEx(rectToRL(r), 2, colorToRL(config.IdleStateColor))

	tower, ok := v.game.SelectedTower()
	if !ok {
		v.text("Click a tower to select it.", r.Min.X+10, r.Min.Y+10, config.FontSize, colorToRL(config.TextDimColor))
		return
	}
	v.text(fmt.Sprintf("%s  L%d", tower.Name, tower.Level), r.Min.X+10, r.Min.Y+8, config.TitleFontSize, colorToRL(config.TextLightColor))
	v.text(layout.StatsLine(tower.Stats), r.Min.X+10, r.Min.Y+30, config.FontSize, colorToRL(config.TextLightColor))

	cost := v.game.UpgradeCost(tower)
	if tower.Level >= config.MaxTowerLevel {
		v.upgrade.Text, v.upgrade.Disabled = "Max level", true
	} else {
		v.upgrade.Text, v.upgrade.Disabled = fmt.Sprintf("Upgrade %d cr", cost), v.game.Run.Money < cost
	}
	v.upgrade.Draw(mouse)
}

func (v *View) drawLog() {
	r := v.layout.LogPanel
	rl.DrawRectangleRec(rectToRL(r), colorToRL(config.BackgroundColor))
	rl.DrawRectangleLinesEx(rectToRL(r), 1, colorToRL(config.TextDimColor))

	// обрезаем длинные строки по краю панели
	rl.BeginScissorMode(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	y := r.Min.Y + 6
	for i, e := range v.game.Journal.Latest(config.LogPanelLines) {
		c := colorToRL(config.TextDimColor)
		if i == 0 {
			c = colorToRL(config.TextLightColor)
		}
		v.text(e.String(), r.Min.X+8, y, config.FontSize, c)
		y += config.FontSize + 4
	}
	rl.EndScissorMode()
}

func (v *View) drawOverlay() {
	var title string
	var c rl.Color
	switch {
	case v.game.Phase() == component.Victory:
		title, c = "VICTORY", colorToRL(config.VictoryColor)
	case v.game.Phase() == component.Defeat:
		title, c = "DEFEAT", colorToRL(config.DefeatColor)
	case v.game.IsPaused():
		title, c = "PAUSED", rl.White
	default:
		return
	}
	f := v.layout.Field
	rl.DrawRectangleRec(rectToRL(f), colorToRL(config.OverlayColor))
	fontSize := float32(40)
	size := rl.MeasureTextEx(v.font, title, fontSize, 1)
	rl.DrawTextEx(v.font, title, rl.NewVector2(float32(f.Min.X)+(float32(f.Dx())-size.X)/2, float32(f.Min.Y+f.Dy()/2)-20), fontSize, 1, c)
}

const settingsRowHeight = 27

var settingsBox = image.Rect(350, 130, 770, 550)

// settingsRowTop — верх i-й строки таблицы привязок.
func settingsRowTop(i int) int {
	return settingsBox.Min.Y + 50 + i*settingsRowHeight
}

func settingsRowAt(x, y, rows int) (int, bool) {
	for i := 0; i < rows; i++ {
		r := image.Rect(settingsBox.Min.X+10, settingsRowTop(i)-4, settingsBox.Max.X-10, settingsRowTop(i)+20)
		if image.Pt(x, y).In(r) {
			return i, true
		}
	}
	return 0, false
}

func (v *View) drawSettings() {
	box := settingsBox
	rl.DrawRectangleRec(rectToRL(box), rl.NewColor(20, 20, 30, 235))
	rl.DrawRectangleLinesEx(rectToRL(box), 2, rl.NewColor(70, 100, 120, 255))
	v.text("Key bindings", box.Min.X+150, box.Min.Y+12, config.TitleFontSize, rl.White)

	for i, row := range v.menu.Rows() {
		y := settingsRowTop(i)
		c := rl.NewColor(140, 140, 150, 255)
		if i == v.menu.Selected {
			c = rl.White
			rl.DrawRectangle(int32(box.Min.X+10), int32(y-4), int32(box.Dx()-20), 24, rl.NewColor(40, 50, 80, 255))
		}
		key := string(row.Key)
		if i == v.menu.Selected && v.menu.Awaiting {
			key = "press a key..."
		}
		v.text(row.Label, box.Min.X+20, y, config.FontSize, c)
		v.text(key, box.Max.X-140, y, config.FontSize, c)
	}
	v.text(v.menu.Status, box.Min.X+20, box.Max.Y-24, config.FontSize, rl.NewColor(140, 140, 150, 255))
}
