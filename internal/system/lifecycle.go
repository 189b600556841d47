// internal/system/lifecycle.go
package system

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
)

// LifecycleSystem убирает прорвавшихся и убитых врагов.
// Прорыв проверяется раньше смерти: враг, дошедший до конца с нулём hp,
// считается прорвавшимся.
type LifecycleSystem struct {
	world           *entity.World
	run             *component.RunState
	eventDispatcher *event.Dispatcher
}

func NewLifecycleSystem(world *entity.World, run *component.RunState, eventDispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{
		world:           world,
		run:             run,
		eventDispatcher: eventDispatcher,
	}
}

func (s *LifecycleSystem) Update() {
	s.world.FilterEnemies(func(enemy *component.Enemy) bool {
		data := event.EnemyData{ID: enemy.ID, Elite: enemy.Elite, Reward: enemy.Reward}
		switch {
		case enemy.ReachedEnd:
			s.run.Health--
			s.eventDispatcher.Publish(event.EnemyBreached, data)
			s.eventDispatcher.Publish(event.LogMessage, event.LogData{Text: "An enemy broke through the defence!"})
			return false
		case enemy.HP <= 0:
			s.run.Money += enemy.Reward
			s.eventDispatcher.Publish(event.EnemyKilled, data)
			return false
		}
		return true
	})
}
