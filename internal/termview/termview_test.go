package termview

import (
	"strings"
	"testing"
	"time"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/input"
	"go-rail-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

func newView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	d, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("failed to load definitions: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(120, 32)
	t.Cleanup(screen.Fini)

	g := app.NewGame(d, app.Options{})
	return NewView(screen, g, input.NewBindings(d.Keys)), screen
}

// row собирает строку экрана в текст.
func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func click(v *View, x, y int) {
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestGeometry(t *testing.T) {
	geo := Geometry{Grid: grid.New(40, 800, 600)}

	tests := []struct {
		x, y int
		cell grid.Cell
		ok   bool
	}{
		{0, 2, grid.Cell{Col: 0, Row: 0}, true},
		{3, 2, grid.Cell{Col: 1, Row: 0}, true},
		{39, 16, grid.Cell{Col: 19, Row: 14}, true},
		{40, 2, grid.Cell{}, false},
		{0, 1, grid.Cell{}, false},
		{0, 17, grid.Cell{}, false},
	}
	for _, tt := range tests {
		c, ok := geo.CellAt(tt.x, tt.y)
		if ok != tt.ok || c != tt.cell {
			t.Errorf("CellAt(%d,%d): expected %+v %v, got %+v %v", tt.x, tt.y, tt.cell, tt.ok, c, ok)
		}
	}

	x, y := geo.TermPos(geo.Grid.Center(grid.Cell{Col: 3, Row: 5}))
	if x != 6 || y != 7 {
		t.Errorf("expected (6,7), got (%d,%d)", x, y)
	}
	if p, ok := geo.FieldPoint(7, 7); !ok || p != (grid.Point{X: 140, Y: 220}) {
		t.Errorf("expected the cell centre (140,220), got %+v %v", p, ok)
	}
	if geo.PanelLeft() != 42 {
		t.Errorf("expected the panel at column 42, got %d", geo.PanelLeft())
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Key
		ok   bool
	}{
		{tcell.KeyRune, 'p', "P", true},
		{tcell.KeyRune, 'N', "N", true},
		{tcell.KeyRune, '2', "2", true},
		{tcell.KeyRune, ' ', "Space", true},
		{tcell.KeyRune, '+', "Equal", true},
		{tcell.KeyRune, '-', "Minus", true},
		{tcell.KeyTab, 0, "Tab", true},
		{tcell.KeyEscape, 0, "Escape", true},
		{tcell.KeyUp, 0, "ArrowUp", true},
		{tcell.KeyF5, 0, "F5", true},
		{tcell.KeyRune, 'ж', "", false},
		{tcell.KeyHome, 0, "", false},
	}
	for _, tt := range tests {
		got, ok := keyName(tt.key, tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyName(%v, %q): expected %q %v, got %q %v", tt.key, tt.r, tt.want, tt.ok, got, ok)
		}
	}
}

func TestClickPlacesTower(t *testing.T) {
	v, screen := newView(t)

	// клетка (1,3) — в терминале колонки 2-3, строка 5
	click(v, 2, 5)
	if len(v.game.Towers()) != 1 {
		t.Fatalf("expected a tower after the click, got %d", len(v.game.Towers()))
	}

	v.Draw()
	r, _, _, _ := screen.GetContent(2, 5)
	l, _, _, _ := screen.GetContent(3, 5)
	if r != 'R' || l != '1' {
		t.Errorf("expected R1 on the field, got %c%c", r, l)
	}
}

func TestClickHeldButtonFiresOnce(t *testing.T) {
	v, _ := newView(t)
	v.HandleEvent(tcell.NewEventMouse(2, 5, tcell.Button1, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(2, 5, tcell.Button1, tcell.ModNone))
	if v.game.Run.Money != 250-75 {
		t.Errorf("expected a single purchase while the button is held, got money %d", v.game.Run.Money)
	}
}

func TestClickCardsAndButtons(t *testing.T) {
	v, _ := newView(t)

	click(v, v.geo.PanelLeft()+2, fieldTop+1+cardHeight)
	if v.game.ActiveTower().ID != "plasma" {
		t.Errorf("expected plasma after clicking the second card, got %s", v.game.ActiveTower().ID)
	}

	click(v, 1, 1) // Start
	if v.game.Phase() != component.WaveActive {
		t.Errorf("expected the wave to start, got %s", v.game.Phase())
	}
	click(v, 42, 1) // Speed
	if v.game.SpeedMultiplier() != 1.5 {
		t.Errorf("expected speed 1.5, got %f", v.game.SpeedMultiplier())
	}
	click(v, 34, 1) // Pause
	if !v.game.IsPaused() {
		t.Error("expected the pause button to pause")
	}
	click(v, 50, 1) // Settings
	if !v.SettingsOpen() {
		t.Error("expected the settings screen to open")
	}
}

func TestSettingsScreenRebinds(t *testing.T) {
	v, screen := newView(t)
	v.game.StartGame()

	v.HandleKey("Tab")
	if !v.SettingsOpen() {
		t.Fatal("expected Tab to open the settings screen")
	}
	elapsed := v.game.GetGameTime()
	v.Update(0.05)
	if v.game.GetGameTime() != elapsed {
		t.Error("expected the simulation to stand still behind the settings screen")
	}

	// строка 0 — Pause
	click(v, v.geo.PanelLeft()+1, settingsTop)
	v.HandleKey("K")
	if v.bindings.Key(input.Pause) != "K" {
		t.Errorf("expected Pause on K, got %s", v.bindings.Key(input.Pause))
	}
	v.Draw()
	if !strings.Contains(row(screen, settingsTop), "K") {
		t.Errorf("expected the table to show K, got %q", row(screen, settingsTop))
	}

	v.HandleKey("Escape")
	if v.SettingsOpen() {
		t.Fatal("expected Escape to close the settings screen")
	}
	v.HandleKey("K")
	if !v.game.IsPaused() {
		t.Error("expected the new key to pause the game")
	}
}

func TestDrawStatusLine(t *testing.T) {
	v, screen := newView(t)
	v.Draw()

	top := row(screen, 0)
	for _, want := range []string{"Credits 250", "Base 20/20", "I/"} {
		if !strings.Contains(top, want) {
			t.Errorf("expected %q in the status line, got %q", want, top)
		}
	}
	if !strings.Contains(row(screen, fieldTop), "Towers") {
		t.Errorf("expected the tower panel header, got %q", row(screen, fieldTop))
	}
	if strings.Contains(top, "muted") {
		t.Error("expected sound on at start")
	}

	v.HandleKey("M")
	v.Draw()
	if !strings.Contains(row(screen, 0), "muted") {
		t.Errorf("expected the status line to show muted, got %q", row(screen, 0))
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event) // никто не читает
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("failed to post event: %v", err)
	}
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("reader is still blocked on a full channel after done was closed")
	}
}
