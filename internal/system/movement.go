// internal/system/movement.go
package system

import (
	"go-rail-defense/internal/entity"
	"go-rail-defense/pkg/grid"
)

// MovementSystem ведёт врагов по ломаной пути.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	path := s.world.Path
	last := path.Segments()
	for _, enemy := range s.world.Enemies {
		if enemy.Resolved() {
			continue
		}
		from, to := path.Segment(enemy.Path.Segment)
		segLength := grid.Distance(from, to)

		if segLength > 0 {
			speed := enemy.Speed * enemy.Slow.Multiplier()
			enemy.Path.Progress += (speed * deltaTime) / segLength
		}
		// сегмент нулевой длины проходится сразу
		if segLength == 0 || enemy.Path.Progress >= 1 {
			// Остаток шага не переносится на следующий отрезок
			enemy.Path.Segment++
			enemy.Path.Progress = 0
			if enemy.Path.Segment >= last {
				enemy.Path.Segment = last
				enemy.ReachedEnd = true
			}
		}
		enemy.Position = path.PositionAt(enemy.Path.Segment, enemy.Path.Progress)
	}
}
