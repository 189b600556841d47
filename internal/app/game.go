// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
	"go-rail-defense/internal/interfaces"
	"go-rail-defense/internal/system"
	"go-rail-defense/internal/types"
	"go-rail-defense/pkg/grid"
)

// Game управляется вводом только через interfaces.Controls.
var _ interfaces.Controls = (*Game)(nil)

// Options настраивают Game при создании.
type Options struct {
	EchoLog bool // дублировать журнал игрока в стандартный log
}

// Game holds the main game state and logic.
type Game struct {
	Defs            *defs.Definitions
	World           *entity.World
	Run             *component.RunState
	EventDispatcher *event.Dispatcher
	Journal         *Journal

	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	LifecycleSystem    *system.LifecycleSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem

	activeTowerID   string         // тип башни для постройки
	selectedTowerID types.EntityID // выбранная на поле башня, 0 — нет
	soundOff        bool           // переживает Reset
	opts            Options
}

// NewGame initializes a new game instance.
func NewGame(d *defs.Definitions, opts Options) *Game {
	if d == nil {
		panic("definitions cannot be nil")
	}
	if len(d.Towers) == 0 {
		panic("definitions have no towers")
	}

	g := &Game{
		Defs:            d,
		EventDispatcher: event.NewDispatcher(),
		Journal:         NewJournal(config.JournalCapacity),
		activeTowerID:   d.Towers[0].ID,
		opts:            opts,
	}
	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.LogMessage, listener)

	g.rebuild()
	g.logf("Game reset. Place towers and start the wave!")
	return g
}

// rebuild создаёт новый мир и системы. Старое расписание волны уходит вместе
// со старым миром, поэтому запоздалых появлений не бывает.
func (g *Game) rebuild() {
	g.World = entity.NewWorld(g.Defs.Path, grid.New(config.GridSize, config.FieldWidth, config.FieldHeight))
	g.Run = &component.RunState{
		Money:  config.StartingMoney,
		Health: config.StartingHealth,
		Phase:  component.Idle,
	}
	g.selectedTowerID = 0

	g.MovementSystem = system.NewMovementSystem(g.World)
	g.WaveSystem = system.NewWaveSystem(g.World, g.EventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(g.World)
	g.CombatSystem = system.NewCombatSystem(g.World, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.EventDispatcher)
	g.LifecycleSystem = system.NewLifecycleSystem(g.World, g.Run, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.World)
	g.StateSystem = system.NewStateSystem(g.World, g.Run, len(g.Defs.Waves), g.EventDispatcher)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LogMessage:
		if data, ok := e.Data.(event.LogData); ok {
			l.game.Journal.Add(l.game.Run.Time, data.Text)
			if l.game.opts.EchoLog {
				log.Println(data.Text)
			}
		}
	}
}

func (g *Game) logf(format string, args ...interface{}) {
	g.EventDispatcher.Publish(event.LogMessage, event.LogData{Text: fmt.Sprintf(format, args...)})
}

// Update продвигает симуляцию на deltaTime секунд реального времени,
// умноженных на текущий множитель скорости.
func (g *Game) Update(deltaTime float64) {
	g.tick(deltaTime * g.SpeedMultiplier())
}

// Step calls Update n times with the same delta.
func (g *Game) Step(n int, deltaTime float64) {
	for i := 0; i < n; i++ {
		g.Update(deltaTime)
	}
}

func (g *Game) tick(dt float64) {
	if g.Run.Paused || !g.Run.Phase.Running() || dt <= 0 {
		return
	}
	g.Run.Time += dt

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.LifecycleSystem.Update()
	g.VisualEffectSystem.Update(dt)
	g.StateSystem.Update()
}

// StartGame запускает текущую волну из Idle.
func (g *Game) StartGame() error {
	switch {
	case g.Run.Phase.Terminal():
		g.logf("The run is over. Press Reset to play again.")
		return ErrRunOver
	case g.Run.Phase != component.Idle:
		return ErrWaveInProgress
	}
	g.Run.Phase = component.WaveActive
	g.EventDispatcher.Publish(event.GameStarted, nil)
	g.startWave(g.Run.Wave)
	return nil
}

// NextWave запускает следующую волну. Из Idle работает как StartGame.
func (g *Game) NextWave() error {
	switch {
	case g.Run.Phase.Terminal():
		g.logf("The run is over. Press Reset to play again.")
		return ErrRunOver
	case g.Run.Phase == component.Idle:
		return g.StartGame()
	case g.Run.Wave >= len(g.Defs.Waves)-1:
		g.logf("That was the last wave.")
		return ErrNoMoreWaves
	case !g.StateSystem.WaveDone():
		g.logf("Wait until the current wave is cleared.")
		return ErrWaveInProgress
	}
	g.Run.Wave++
	g.Run.Phase = component.WaveActive
	g.startWave(g.Run.Wave)
	return nil
}

func (g *Game) startWave(index int) {
	def, ok := g.Defs.Wave(index)
	if !ok {
		return
	}
	g.WaveSystem.StartWave(index, def)
}

// Reset начинает забег заново. Подписчики диспетчера сохраняются.
func (g *Game) Reset() {
	g.rebuild()
	g.Journal.Clear()
	g.EventDispatcher.Publish(event.GameReset, nil)
	g.logf("Game reset. Place towers and start the wave!")
}

// ToggleSound просит звуковых подписчиков включить или выключить звук.
func (g *Game) ToggleSound() {
	g.soundOff = !g.soundOff
	g.EventDispatcher.Publish(event.SoundToggled, nil)
	if g.soundOff {
		g.logf("Sound off.")
	} else {
		g.logf("Sound on.")
	}
}

// SoundOff reports whether the player switched the sound off.
func (g *Game) SoundOff() bool {
	return g.soundOff
}

func (g *Game) TogglePause() {
	g.Run.Paused = !g.Run.Paused
}

func (g *Game) IsPaused() bool {
	return g.Run.Paused
}

// SpeedMultiplier returns the active simulation speed.
func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.Run.SpeedIndex]
}

func (g *Game) SpeedUp() {
	if g.Run.SpeedIndex < len(config.SpeedMultipliers)-1 {
		g.Run.SpeedIndex++
	}
}

func (g *Game) SpeedDown() {
	if g.Run.SpeedIndex > 0 {
		g.Run.SpeedIndex--
	}
}

// CycleSpeed steps through the multipliers and wraps around.
func (g *Game) CycleSpeed() {
	g.Run.SpeedIndex = (g.Run.SpeedIndex + 1) % len(config.SpeedMultipliers)
}

func (g *Game) Phase() component.Phase {
	return g.Run.Phase
}

func (g *Game) GetGameTime() float64 {
	return g.Run.Time
}

// WaveLabel returns the label of the current wave.
func (g *Game) WaveLabel() string {
	if def, ok := g.Defs.Wave(g.Run.Wave); ok {
		return def.Label
	}
	return ""
}

// WaveProgress returns the share of the current wave already spawned.
func (g *Game) WaveProgress() float64 {
	w := g.World.Wave
	if w == nil || w.Def.Count == 0 {
		return 0
	}
	return float64(w.Spawned) / float64(w.Def.Count)
}

// WaveCount returns the number of waves in the run.
func (g *Game) WaveCount() int {
	return len(g.Defs.Waves)
}

// Enemies, Towers, Projectiles and Texts expose the world for renderers.
// Enemies returns the enemies still on the field, without the ones resolved
// this tick.
func (g *Game) Enemies() []*component.Enemy {
	return g.World.LiveEnemies()
}

func (g *Game) Towers() []*component.Tower {
	return g.World.Towers
}

func (g *Game) Projectiles() []*component.Projectile {
	return g.World.Projectiles
}

func (g *Game) Texts() []*component.FloatingText {
	return g.World.Texts
}

func (g *Game) Path() grid.Path {
	return g.World.Path
}
