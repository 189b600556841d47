// internal/entity/world.go
package entity

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/types"
	"go-rail-defense/pkg/grid"
)

// World holds every live entity of one run. Slices keep insertion order,
// which targeting tie-breaks and projectile hit resolution rely on.
type World struct {
	NextID      types.EntityID
	Path        grid.Path
	Grid        grid.Grid
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Texts       []*component.FloatingText
	Wave        *component.Wave // nil, пока волна не запущена
}

func NewWorld(path grid.Path, g grid.Grid) *World {
	return &World{
		NextID: 1,
		Path:   path,
		Grid:   g,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy assigns an ID and appends the enemy.
func (w *World) AddEnemy(e *component.Enemy) *component.Enemy {
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
	return e
}

// AddTower assigns an ID and appends the tower.
func (w *World) AddTower(t *component.Tower) *component.Tower {
	t.ID = w.NewEntity()
	w.Towers = append(w.Towers, t)
	return t
}

// AddProjectile assigns an ID and appends the projectile.
func (w *World) AddProjectile(p *component.Projectile) *component.Projectile {
	p.ID = w.NewEntity()
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func (w *World) AddText(t *component.FloatingText) {
	w.Texts = append(w.Texts, t)
}

// TowerAt returns the tower standing on the cell.
func (w *World) TowerAt(c grid.Cell) (*component.Tower, bool) {
	for _, t := range w.Towers {
		if t.Cell == c {
			return t, true
		}
	}
	return nil, false
}

// TowerNear returns the first tower whose centre is within radius of p.
func (w *World) TowerNear(p grid.Point, radius float64) (*component.Tower, bool) {
	for _, t := range w.Towers {
		if grid.Distance(t.Position, p) <= radius {
			return t, true
		}
	}
	return nil, false
}

// Tower looks a tower up by ID.
func (w *World) Tower(id types.EntityID) (*component.Tower, bool) {
	for _, t := range w.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// LiveEnemies returns enemies that are not waiting for removal.
func (w *World) LiveEnemies() []*component.Enemy {
	live := make([]*component.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if !e.Resolved() {
			live = append(live, e)
		}
	}
	return live
}

// FilterEnemies keeps the enemies for which keep returns true, in order.
func (w *World) FilterEnemies(keep func(*component.Enemy) bool) {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
}

// FilterProjectiles drops finished projectiles.
func (w *World) FilterProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Done() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = kept
}

// FilterTexts drops faded floating texts.
func (w *World) FilterTexts() {
	kept := w.Texts[:0]
	for _, t := range w.Texts {
		if t.Life > 0 {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(w.Texts); i++ {
		w.Texts[i] = nil
	}
	w.Texts = kept
}
