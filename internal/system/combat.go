// internal/system/combat.go
package system

import (
	"math"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
	"go-rail-defense/pkg/grid"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.world.Towers {
		tower.FireCooldown -= deltaTime
		target := FindTarget(tower, s.world.Enemies)
		if target == nil || tower.FireCooldown > 0 {
			continue
		}
		s.fire(tower, target)
	}
}

// FindTarget выбирает врага в радиусе, прошедшего дальше всех по пути.
// При равенстве побеждает тот, кто раньше в списке.
func FindTarget(tower *component.Tower, enemies []*component.Enemy) *component.Enemy {
	var best *component.Enemy
	for _, enemy := range enemies {
		if enemy.Resolved() {
			continue
		}
		if grid.Distance(tower.Position, enemy.Position) > tower.Stats.Range {
			continue
		}
		if best == nil || enemy.AheadOf(best) {
			best = enemy
		}
	}
	return best
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Enemy) {
	shots := tower.Stats.Shots()
	angle := math.Atan2(target.Position.Y-tower.Position.Y, target.Position.X-tower.Position.X)
	speed := tower.Stats.ProjectileSpeed

	for i := 0; i < shots; i++ {
		offset := (float64(i) - float64(shots-1)/2) * config.MultiShotSpread
		a := angle + offset
		proj := &component.Projectile{
			OwnerID:  tower.ID,
			Position: tower.Position,
			Velocity: component.Velocity{X: math.Cos(a) * speed, Y: math.Sin(a) * speed},
			Life:     config.ProjectileLife,
			Damage:   tower.Stats.Damage,
			Color:    tower.Color,
		}
		if tower.Stats.Slow != nil {
			slow := *tower.Stats.Slow
			proj.Slow = &slow
		}
		s.world.AddProjectile(proj)
	}

	tower.FireCooldown = 1 / tower.Stats.FireRate
	s.eventDispatcher.Publish(event.ProjectileFired, event.FireData{TowerID: tower.ID, Shots: shots})
}
