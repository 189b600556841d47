// internal/system/projectile.go
package system

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
	"go-rail-defense/pkg/grid"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, proj := range s.world.Projectiles {
		if proj.Done() {
			continue
		}
		proj.Position = proj.Position.Add(proj.Velocity.Scale(deltaTime))
		proj.Life -= deltaTime

		if enemy := s.firstHit(proj); enemy != nil {
			s.hitTarget(proj, enemy)
		}
	}
	s.world.FilterProjectiles()
}

// firstHit возвращает первого по списку живого врага, которого коснулся снаряд.
func (s *ProjectileSystem) firstHit(proj *component.Projectile) *component.Enemy {
	for _, enemy := range s.world.Enemies {
		if enemy.Resolved() {
			continue
		}
		if grid.Distance(enemy.Position, proj.Position) < enemy.Radius {
			return enemy
		}
	}
	return nil
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, enemy *component.Enemy) {
	// в числе над врагом только снятое здоровье, без перебора
	applied := ApplyDamage(enemy, proj.Damage)
	if proj.Slow != nil {
		ApplySlow(enemy, proj.Slow.Factor, proj.Slow.Duration)
	}
	SpawnDamageText(s.world, enemy, applied)
	proj.Expired = true

	s.eventDispatcher.Publish(event.ProjectileHit, event.HitData{
		EnemyID: enemy.ID,
		Damage:  applied,
		Killed:  !enemy.Alive(),
	})
}
