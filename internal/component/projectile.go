// internal/component/projectile.go
package component

import (
	"image/color"

	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID       types.EntityID
	OwnerID  types.EntityID
	Position Position
	Velocity Velocity
	Life     float64 // секунды до исчезновения
	Damage   int
	Slow     *defs.SlowStats // nil, если снаряд не замедляет
	Color    color.RGBA
	Expired  bool
}

// Done reports whether the projectile should be purged.
func (p *Projectile) Done() bool {
	return p.Expired || p.Life <= 0
}
