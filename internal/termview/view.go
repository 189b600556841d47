// internal/termview/view.go
package termview

import (
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/layout"
	"go-rail-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

const (
	frameDuration = 33 * time.Millisecond // ~30 FPS, терминалу больше не нужно
	cardHeight    = 3
	logLines      = 8
)

// button — кликабельная надпись в строке кнопок.
type button struct {
	label  string
	action input.Action
	speed  bool // кнопка скорости циклически меняет множитель
	x      int
}

func (b button) contains(x, y int) bool {
	return y == 1 && x >= b.x && x < b.x+len(b.label)+2
}

// View — терминальный фронтенд на tcell.
type View struct {
	screen   tcell.Screen
	game     *app.Game
	bindings *input.Bindings
	geo      Geometry
	buttons  []button
	menu     *input.RebindMenu // nil, пока настройки закрыты

	cursorX, cursorY int
	mouseDown        tcell.ButtonMask
}

func NewView(screen tcell.Screen, g *app.Game, bindings *input.Bindings) *View {
	v := &View{
		screen:   screen,
		game:     g,
		bindings: bindings,
		geo:      Geometry{Grid: g.World.Grid},
		cursorX:  -1,
		cursorY:  -1,
	}
	x := 0
	for _, b := range []button{
		{label: "Start", action: input.StartGame},
		{label: "Next", action: input.NextWave},
		{label: "Reset", action: input.Reset},
		{label: "Upgrade", action: input.UpgradeTower},
		{label: "Pause", action: input.Pause},
		{label: "Speed", speed: true},
		{label: "Settings", action: input.Settings},
	} {
		b.x = x
		v.buttons = append(v.buttons, b)
		x += len(b.label) + 3
	}
	return v
}

// Run крутит цикл до Ctrl+C. События читаются в отдельной горутине,
// которая выходит вместе с Run.
func (v *View) Run() {
	v.screen.EnableMouse()
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(v.screen, events, done)

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	clock := app.NewClock()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.Update(clock.Tick())
			v.Draw()
		}
	}
}

// pollEvents пересылает события экрана в events, пока не закрыт done.
// events закрывается, когда экран завершён.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent reports false when the player asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			return false
		}
		if k, ok := keyName(ev.Key(), ev.Rune()); ok {
			v.HandleKey(k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.cursorX, v.cursorY = x, y
		buttons := ev.Buttons()
		pressed := buttons &^ v.mouseDown
		v.mouseDown = buttons
		if pressed&tcell.Button1 != 0 {
			v.Click(x, y)
		}
		if pressed&tcell.Button2 != 0 && v.menu == nil {
			v.game.ClearSelection()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// HandleKey routes a key either to the settings screen or to the bindings.
func (v *View) HandleKey(k input.Key) {
	if v.menu != nil {
		if v.menu.HandleKey(k) {
			v.menu = nil
		}
		return
	}
	if a, ok, _ := input.HandleKey(v.game, v.bindings, k); ok && a == input.Settings {
		v.menu = input.NewRebindMenu(v.bindings)
	}
}

// Click handles a left click at terminal position (x, y).
func (v *View) Click(x, y int) {
	if v.menu != nil {
		if row := y - settingsTop; row >= 0 && row < len(v.menu.Rows()) && x >= v.geo.PanelLeft() {
			v.menu.Select(row)
		}
		return
	}
	if p, ok := v.geo.FieldPoint(x, y); ok {
		v.game.HandleClick(p)
		return
	}
	if x >= v.geo.PanelLeft() && y >= fieldTop+1 {
		if i := (y - fieldTop - 1) / cardHeight; i < len(v.game.Defs.Towers) {
			v.game.SelectTowerTypeIndex(i)
			return
		}
	}
	for _, b := range v.buttons {
		if !b.contains(x, y) {
			continue
		}
		if b.speed {
			v.game.CycleSpeed()
			return
		}
		if b.action == input.Settings {
			v.menu = input.NewRebindMenu(v.bindings)
			return
		}
		input.Perform(v.game, b.action)
		return
	}
}

// SettingsOpen reports whether the key bindings screen is shown.
func (v *View) SettingsOpen() bool {
	return v.menu != nil
}

// Update продвигает симуляцию; экран настроек её останавливает.
func (v *View) Update(deltaTime float64) {
	if v.menu == nil {
		v.game.Update(deltaTime)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fg(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(c))
}

// drawText пишет строку и возвращает колонку после неё. max <= 0 —
// без ограничения ширины.
func (v *View) drawText(x, y int, s string, style tcell.Style, max int) int {
	runes := []rune(s)
	if max > 0 && len(runes) > max {
		runes = append(runes[:max-1], '…')
	}
	for _, r := range runes {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (v *View) Draw() {
	v.screen.Clear()
	v.drawStatus()
	v.drawButtons()
	v.drawField()
	v.drawPanel()
	v.drawOverlay()
	if v.menu != nil {
		v.drawSettings()
	}
	v.screen.Show()
}

func (v *View) drawStatus() {
	run := v.game.Run
	light := fg(config.TextLightColor)
	x := v.drawText(0, 0, fmt.Sprintf("Credits %d", run.Money), light, 0)

	health := light
	if run.Health <= config.LowHealthThreshold {
		health = fg(config.HealthLowColor)
	}
	x = v.drawText(x+3, 0, fmt.Sprintf("Base %d/%d", run.DisplayHealth(), config.StartingHealth), health, 0)
	x = v.drawText(x+3, 0, layout.WaveCaption(run.Wave+1, v.game.WaveCount(), v.game.WaveLabel()), light, 0)

	const barWidth = 10
	filled := int(v.game.WaveProgress()*barWidth + 0.5)
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
	x = v.drawText(x+3, 0, bar, fg(config.IdleStateColor), 0)

	phase := v.game.Phase().String()
	if v.game.IsPaused() {
		phase = "Paused"
	}
	status := fmt.Sprintf("%s  %s  x%.1f", app.Entry{Time: v.game.GetGameTime()}.Stamp(), phase, v.game.SpeedMultiplier())
	if v.game.SoundOff() {
		status += "  muted"
	}
	v.drawText(x+3, 0, status, fg(layout.PhaseColor(v.game.Phase())), 0)
}

func (v *View) drawButtons() {
	phase := v.game.Phase()
	for _, b := range v.buttons {
		style := tcell.StyleDefault.Foreground(toTcell(config.TextLightColor)).Background(toTcell(config.ButtonColor))
		disabled := (b.action == input.StartGame && phase != component.Idle) ||
			(b.action == input.NextWave && phase != component.WaveCleared)
		if disabled {
			style = fg(config.TextDimColor)
		}
		label := b.label
		if b.action == input.Pause && !b.speed && v.game.IsPaused() {
			label = "Play "
		}
		v.drawText(b.x, 1, " "+label+" ", style, 0)
	}
}

func (v *View) drawField() {
	g := v.game.World.Grid
	path := v.game.Path()
	bg := toTcell(config.BackgroundColor)
	pathStyle := tcell.StyleDefault.Foreground(toTcell(config.TextDimColor)).Background(toTcell(config.PanelColor))
	empty := tcell.StyleDefault.Foreground(toTcell(config.PanelColor)).Background(bg)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := g.Center(grid.Cell{Col: col, Row: row})
			x, y := v.geo.TermPos(c)
			if path.DistanceTo(c) <= g.Size/2 {
				v.screen.SetContent(x, y, '░', nil, pathStyle)
				v.screen.SetContent(x+1, y, '░', nil, pathStyle)
			} else {
				v.screen.SetContent(x, y, '·', nil, empty)
				v.screen.SetContent(x+1, y, ' ', nil, empty)
			}
		}
	}
	if path.Len() > 0 {
		x, y := v.geo.TermPos(path.Start())
		v.drawText(x, y, "S ", fg(config.EntryColor).Background(bg), 0)
		x, y = v.geo.TermPos(path.Point(path.Len() - 1))
		v.drawText(x, y, "E ", fg(config.ExitColor).Background(bg), 0)
	}

	v.drawHover()

	selected, hasSelected := v.game.SelectedTower()
	for _, t := range v.game.Towers() {
		x, y := v.geo.TermPos(t.Position)
		style := fg(t.Color).Background(bg)
		if hasSelected && t == selected {
			style = style.Reverse(true)
		}
		glyph := unicode.ToUpper([]rune(t.DefID)[0])
		v.screen.SetContent(x, y, glyph, nil, style)
		v.screen.SetContent(x+1, y, rune('0'+t.Level), nil, style)
	}

	for _, e := range v.game.Enemies() {
		x, y := v.geo.TermPos(e.Position)
		glyph := 'o'
		if e.Elite {
			glyph = 'O'
		}
		c := config.HealthOKColor
		if e.HealthFraction() < config.HealthBarLow {
			c = config.HealthLowColor
		}
		v.screen.SetContent(x, y, glyph, nil, fg(c).Background(bg))
	}

	for _, p := range v.game.Projectiles() {
		x, y := v.geo.TermPos(p.Position)
		v.screen.SetContent(x+1, y, '*', nil, fg(p.Color).Background(bg))
	}
}

// drawHover подсвечивает клетку под мышью: зелёный — можно строить.
func (v *View) drawHover() {
	if v.menu != nil || v.game.Phase().Terminal() {
		return
	}
	p, ok := v.geo.FieldPoint(v.cursorX, v.cursorY)
	if !ok {
		return
	}
	pv := v.game.PlacementPreview(p)
	c := tcell.ColorDarkGreen
	if pv.Err != nil {
		c = tcell.ColorDarkRed
	}
	x, y := v.geo.TermPos(pv.Center)
	for dx := 0; dx < cellWidth; dx++ {
		r, comb, style, _ := v.screen.GetContent(x+dx, y)
		v.screen.SetContent(x+dx, y, r, comb, style.Background(c))
	}
}

func (v *View) drawPanel() {
	left := v.geo.PanelLeft()
	width, height := v.screen.Size()
	light := fg(config.TextLightColor)
	dim := fg(config.TextDimColor)
	maxWidth := width - left

	v.drawText(left, fieldTop, "Towers", light.Bold(true), 0)
	money := v.game.Run.Money
	active := v.game.ActiveTower().ID
	y := fieldTop + 1
	for i, def := range v.game.Defs.Towers {
		marker := "  "
		style := fg(def.Color.RGBA())
		if def.ID == active {
			marker = "> "
			style = style.Bold(true)
		}
		cost := light
		if money < def.Cost {
			cost = fg(config.HealthLowColor)
		}
		hotkey := v.bindings.Key(input.SelectTower1 + input.Action(i))
		x := v.drawText(left, y, fmt.Sprintf("%s[%s] %s", marker, hotkey, def.Name), style, maxWidth)
		v.drawText(x+2, y, fmt.Sprintf("%d cr", def.Cost), cost, 0)
		v.drawText(left+4, y+1, layout.StatsLine(def.Stats), dim, maxWidth-4)
		y += cardHeight
	}

	if tower, ok := v.game.SelectedTower(); ok {
		v.drawText(left, y, fmt.Sprintf("%s  L%d", tower.Name, tower.Level), light.Bold(true), maxWidth)
		v.drawText(left+2, y+1, layout.StatsLine(tower.Stats), light, maxWidth-2)
		upgrade := "Max level"
		if tower.Level < config.MaxTowerLevel {
			upgrade = fmt.Sprintf("Upgrade %d cr [%s]", v.game.UpgradeCost(tower), v.bindings.Key(input.UpgradeTower))
		}
		v.drawText(left+2, y+2, upgrade, dim, maxWidth-2)
	} else {
		v.drawText(left, y, "Click a tower to select it.", dim, maxWidth)
	}
	y += 4

	for i, e := range v.game.Journal.Latest(logLines) {
		if y >= height {
			break
		}
		style := dim
		if i == 0 {
			style = light
		}
		v.drawText(left, y, e.String(), style, maxWidth)
		y++
	}
}

func (v *View) drawOverlay() {
	var title string
	var c color.RGBA
	switch {
	case v.game.Phase() == component.Victory:
		title, c = " VICTORY ", config.VictoryColor
	case v.game.Phase() == component.Defeat:
		title, c = " DEFEAT ", config.DefeatColor
	case v.game.IsPaused():
		title, c = " PAUSED ", config.TextLightColor
	default:
		return
	}
	y := fieldTop + v.game.World.Grid.Rows()/2
	x := (v.geo.FieldCols() - len(title)) / 2
	v.drawText(x, y, title, fg(c).Reverse(true).Bold(true), 0)
	if v.game.Phase().Terminal() {
		hint := fmt.Sprintf(" Press %s to play again ", v.bindings.Key(input.Reset))
		v.drawText((v.geo.FieldCols()-len(hint))/2, y+1, hint, fg(config.TextDimColor), 0)
	}
}

const settingsTop = fieldTop + 2

// drawSettings рисует таблицу привязок поверх боковой панели.
func (v *View) drawSettings() {
	left := v.geo.PanelLeft()
	width, height := v.screen.Size()
	blank := tcell.StyleDefault.Background(toTcell(config.BackgroundColor))
	for y := fieldTop; y < height; y++ {
		for x := left; x < width; x++ {
			v.screen.SetContent(x, y, ' ', nil, blank)
		}
	}

	v.drawText(left, fieldTop, "Key bindings", fg(config.TextLightColor).Bold(true), 0)
	for i, row := range v.menu.Rows() {
		style := fg(config.TextDimColor)
		key := string(row.Key)
		if i == v.menu.Selected {
			style = fg(config.TextLightColor).Reverse(true)
			if v.menu.Awaiting {
				key = "press a key..."
			}
		}
		v.drawText(left, settingsTop+i, fmt.Sprintf(" %-18s %-14s", row.Label, key), style, 0)
	}
	v.drawText(left, settingsTop+len(v.menu.Rows())+1, v.menu.Status, fg(config.TextDimColor), width-left)
}
