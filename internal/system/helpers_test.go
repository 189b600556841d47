package system

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
	"go-rail-defense/pkg/grid"
)

// L-образный путь: 100px вправо, затем 100px вниз.
func newTestWorld() *entity.World {
	path := grid.NewPath([]grid.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	return entity.NewWorld(path, grid.New(config.GridSize, config.FieldWidth, config.FieldHeight))
}

func newEnemy(w *entity.World, hp int, speed float64) *component.Enemy {
	return w.AddEnemy(&component.Enemy{
		Position: w.Path.Start(),
		HP:       hp,
		MaxHP:    hp,
		Speed:    speed,
		Reward:   7,
		Radius:   config.EnemyRadius,
	})
}

func newTower(w *entity.World, pos grid.Point, stats defs.TowerStats) *component.Tower {
	return w.AddTower(&component.Tower{
		DefID:    "rail",
		Position: pos,
		Level:    1,
		Base:     stats.Clone(),
		Stats:    stats,
	})
}

func railStats() defs.TowerStats {
	return defs.TowerStats{Damage: 30, Range: 150, FireRate: 1.4, ProjectileSpeed: 420}
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	l := &eventLog{}
	d.SubscribeAll(l)
	return d, l
}
