// internal/system/visual_effect.go
package system

import (
	"go-rail-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: всплывающими числами урона.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, text := range s.world.Texts {
		text.Life -= deltaTime
		text.Position.Y -= text.Rise * deltaTime
	}
	s.world.FilterTexts()
}
