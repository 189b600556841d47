// internal/system/status_effect.go
package system

import "go-rail-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, enemy := range s.world.Enemies {
		if !enemy.Slow.Active() {
			continue
		}
		enemy.Slow.Timer -= deltaTime
		if enemy.Slow.Timer <= 0 {
			enemy.Slow.Timer = 0
			enemy.Slow.SlowFactor = 0
		}
	}
}
