package component

import (
	"image/color"

	"go-rail-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	Position   Position
	Path       PathProgress
	HP         int
	MaxHP      int
	Speed      float64
	Reward     int
	Slow       SlowEffect
	Elite      bool
	Radius     float64
	Color      color.RGBA
	ReachedEnd bool // Достиг ли враг конца пути
}

// Alive reports whether the enemy still has hit points.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Resolved reports whether the enemy is waiting to be removed this tick.
func (e *Enemy) Resolved() bool {
	return e.ReachedEnd || e.HP <= 0
}

// HealthFraction returns HP/MaxHP in [0,1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	f := float64(e.HP) / float64(e.MaxHP)
	if f < 0 {
		return 0
	}
	return f
}

// AheadOf reports whether e is further along the path than o.
func (e *Enemy) AheadOf(o *Enemy) bool {
	if e.Path.Segment != o.Path.Segment {
		return e.Path.Segment > o.Path.Segment
	}
	return e.Path.Progress > o.Path.Progress
}
