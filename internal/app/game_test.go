package app

import (
	"errors"
	"testing"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/event"
	"go-rail-defense/pkg/grid"
)

// Клетка (1,3): центр (60,140), в 60px от первого отрезка пути.
var buildSpot = grid.Point{X: 60, Y: 140}

func newTestGame(t *testing.T, waves ...defs.WaveDefinition) *Game {
	t.Helper()
	d, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("failed to load definitions: %v", err)
	}
	if len(waves) > 0 {
		d.Waves = waves
	}
	return NewGame(d, Options{})
}

// runUntil steps 50ms frames until done returns true or the frame budget is spent.
func runUntil(g *Game, frames int, done func() bool) {
	for i := 0; i < frames && !done(); i++ {
		g.Update(0.05)
	}
}

type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func TestUndefendedFirstWaveBreaches(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	runUntil(g, 2000, func() bool { return g.Phase() != component.WaveActive })

	if g.Phase() != component.WaveCleared {
		t.Fatalf("expected WaveCleared, got %s", g.Phase())
	}
	if g.Run.Health != 10 {
		t.Errorf("expected health 10, got %d", g.Run.Health)
	}
	if g.Run.Money != 250 {
		t.Errorf("expected money 250, got %d", g.Run.Money)
	}
}

func TestTwoRailHitsKillScout(t *testing.T) {
	g := newTestGame(t,
		defs.WaveDefinition{Label: "Scout", Count: 1, HP: 60, Speed: 10, Reward: 7},
		defs.WaveDefinition{Label: "Spare", Count: 1, HP: 60, Speed: 10, Reward: 7},
	)
	events := counter{}
	g.EventDispatcher.SubscribeAll(events)

	if _, err := g.PlaceTower(buildSpot); err != nil {
		t.Fatalf("PlaceTower failed: %v", err)
	}
	if err := g.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	runUntil(g, 400, func() bool { return g.Phase() != component.WaveActive })

	if g.Phase() != component.WaveCleared {
		t.Fatalf("expected WaveCleared, got %s", g.Phase())
	}
	if events[event.ProjectileHit] != 2 {
		t.Errorf("expected exactly 2 hits, got %d", events[event.ProjectileHit])
	}
	if events[event.EnemyKilled] != 1 {
		t.Errorf("expected 1 kill, got %d", events[event.EnemyKilled])
	}
	if want := 250 - 75 + 7; g.Run.Money != want {
		t.Errorf("expected money %d, got %d", want, g.Run.Money)
	}
	if g.Run.Health != 20 {
		t.Errorf("expected no breaches, got health %d", g.Run.Health)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.StartGame()
	g.Step(40, 0.05)

	g.TogglePause()
	before := make([]grid.Point, len(g.Enemies()))
	for i, e := range g.Enemies() {
		before[i] = e.Position
	}
	elapsed := g.GetGameTime()

	g.Step(500, 0.05)
	if len(g.Enemies()) != len(before) {
		t.Fatalf("expected %d enemies while paused, got %d", len(before), len(g.Enemies()))
	}
	for i, e := range g.Enemies() {
		if e.Position != before[i] {
			t.Errorf("enemy %d moved while paused: %+v -> %+v", i, before[i], e.Position)
		}
	}
	if g.GetGameTime() != elapsed {
		t.Errorf("expected game time to stand still, got %f -> %f", elapsed, g.GetGameTime())
	}

	g.TogglePause()
	g.Step(1, 0.05)
	if g.GetGameTime() == elapsed {
		t.Error("expected the simulation to resume after unpausing")
	}
}

func TestIdleDoesNotAdvance(t *testing.T) {
	g := newTestGame(t)
	g.Step(100, 0.05)
	if g.GetGameTime() != 0 || len(g.Enemies()) != 0 {
		t.Errorf("expected nothing to happen in Idle, got time %f enemies %d", g.GetGameTime(), len(g.Enemies()))
	}
}

func TestSpeedMultiplierScalesDelta(t *testing.T) {
	g := newTestGame(t)
	g.StartGame()
	g.SpeedUp()
	g.SpeedUp()
	g.SpeedUp()
	if g.SpeedMultiplier() != 2 {
		t.Fatalf("expected speed clamped at 2, got %f", g.SpeedMultiplier())
	}
	g.Update(0.05)
	if got := g.GetGameTime(); got < 0.0999 || got > 0.1001 {
		t.Errorf("expected 0.1s of simulation, got %f", got)
	}

	g.SpeedDown()
	g.SpeedDown()
	g.SpeedDown()
	if g.SpeedMultiplier() != 1 {
		t.Errorf("expected speed clamped at 1, got %f", g.SpeedMultiplier())
	}
	g.CycleSpeed()
	if g.SpeedMultiplier() != 1.5 {
		t.Errorf("expected cycling to 1.5, got %f", g.SpeedMultiplier())
	}
}

func TestNextWaveFlow(t *testing.T) {
	g := newTestGame(t,
		defs.WaveDefinition{Label: "One", Count: 1, HP: 10, Speed: 2000, Reward: 1},
		defs.WaveDefinition{Label: "Two", Count: 1, HP: 10, Speed: 2000, Reward: 1},
	)

	if err := g.NextWave(); err != nil {
		t.Fatalf("NextWave from Idle should start the game: %v", err)
	}
	if g.Phase() != component.WaveActive || g.Run.Wave != 0 {
		t.Fatalf("expected wave 0 active, got %s wave %d", g.Phase(), g.Run.Wave)
	}
	if err := g.NextWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("expected ErrWaveInProgress, got %v", err)
	}

	runUntil(g, 200, func() bool { return g.Phase() == component.WaveCleared })
	if g.Phase() != component.WaveCleared {
		t.Fatalf("expected WaveCleared, got %s", g.Phase())
	}
	if err := g.NextWave(); err != nil {
		t.Fatalf("NextWave after clearing failed: %v", err)
	}
	if g.Run.Wave != 1 {
		t.Errorf("expected wave 1, got %d", g.Run.Wave)
	}
	if err := g.NextWave(); !errors.Is(err, ErrNoMoreWaves) {
		t.Errorf("expected ErrNoMoreWaves on the last wave, got %v", err)
	}

	runUntil(g, 200, func() bool { return g.Phase().Terminal() })
	if g.Phase() != component.Victory {
		t.Errorf("expected Victory after the last wave, got %s", g.Phase())
	}
	if err := g.NextWave(); !errors.Is(err, ErrRunOver) {
		t.Errorf("expected ErrRunOver after victory, got %v", err)
	}
	if err := g.StartGame(); !errors.Is(err, ErrRunOver) {
		t.Errorf("expected ErrRunOver from StartGame, got %v", err)
	}
}

func TestDefeatStopsTheRun(t *testing.T) {
	g := newTestGame(t,
		defs.WaveDefinition{Label: "Flood", Count: 30, HP: 10, Speed: 5000, Reward: 1},
		defs.WaveDefinition{Label: "Never", Count: 1, HP: 10, Speed: 10, Reward: 1},
	)
	events := counter{}
	g.EventDispatcher.SubscribeAll(events)
	g.StartGame()

	runUntil(g, 2000, func() bool { return g.Phase().Terminal() })
	if g.Phase() != component.Defeat {
		t.Fatalf("expected Defeat, got %s", g.Phase())
	}
	if g.Run.DisplayHealth() != 0 {
		t.Errorf("expected displayed health 0, got %d", g.Run.DisplayHealth())
	}
	spawned := events[event.EnemySpawned]
	if spawned >= 30 {
		t.Errorf("expected spawning to stop at defeat, got %d spawns", spawned)
	}

	g.Step(500, 0.05)
	if events[event.EnemySpawned] != spawned {
		t.Errorf("expected no spawns after defeat, got %d more", events[event.EnemySpawned]-spawned)
	}
	if events[event.Defeat] != 1 {
		t.Errorf("expected a single Defeat event, got %d", events[event.Defeat])
	}
	if _, err := g.PlaceTower(buildSpot); !errors.Is(err, ErrRunOver) {
		t.Errorf("expected ErrRunOver for placement, got %v", err)
	}
}

func TestResetDropsPendingSpawns(t *testing.T) {
	g := newTestGame(t)
	g.PlaceTower(buildSpot)
	g.StartGame()
	g.Step(30, 0.05)

	g.Reset()
	if g.Phase() != component.Idle || g.Run.Money != 250 || g.Run.Health != 20 || g.Run.Wave != 0 {
		t.Fatalf("unexpected state after reset: %+v", *g.Run)
	}
	if len(g.Enemies()) != 0 || len(g.Towers()) != 0 || len(g.Projectiles()) != 0 {
		t.Errorf("expected an empty world after reset")
	}
	if g.Journal.Len() != 1 {
		t.Errorf("expected only the reset message in the journal, got %d entries", g.Journal.Len())
	}

	g.Step(100, 0.05)
	if len(g.Enemies()) != 0 {
		t.Errorf("expected no stale spawns after reset, got %d enemies", len(g.Enemies()))
	}

	g.StartGame()
	if len(g.Enemies()) != 1 {
		t.Errorf("expected the restarted wave to spawn one enemy, got %d", len(g.Enemies()))
	}
}

func TestJournalReceivesLogMessages(t *testing.T) {
	g := newTestGame(t)
	g.StartGame()
	entries := g.Journal.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "Wave started: Scouts" {
		t.Errorf("expected the newest entry first, got %q", entries[0].Text)
	}
}

func TestToggleSoundSurvivesReset(t *testing.T) {
	g := newTestGame(t)
	c := counter{}
	g.EventDispatcher.Subscribe(event.SoundToggled, c)

	g.ToggleSound()
	if !g.SoundOff() {
		t.Fatal("expected sound to be off")
	}
	if got := g.Journal.Entries()[0].Text; got != "Sound off." {
		t.Errorf("expected a journal line, got %q", got)
	}
	g.Reset()
	if !g.SoundOff() {
		t.Error("expected Reset to keep the sound setting")
	}
	g.ToggleSound()
	if g.SoundOff() || c[event.SoundToggled] != 2 {
		t.Errorf("expected sound back on after two toggles, got off=%v events=%d", g.SoundOff(), c[event.SoundToggled])
	}
}

func TestWaveProgress(t *testing.T) {
	g := newTestGame(t)
	if g.WaveProgress() != 0 {
		t.Errorf("expected no progress before the start, got %f", g.WaveProgress())
	}
	g.StartGame()
	want := 1.0 / float64(g.World.Wave.Def.Count)
	if g.WaveProgress() != want {
		t.Errorf("expected %f after the first spawn, got %f", want, g.WaveProgress())
	}
}
