package entity

import (
	"testing"

	"go-rail-defense/internal/component"
	"go-rail-defense/pkg/grid"
)

func newTestWorld() *World {
	path := grid.NewPath([]grid.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
	return NewWorld(path, grid.New(40, 800, 600))
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	w := newTestWorld()
	a := w.AddEnemy(&component.Enemy{HP: 1})
	b := w.AddTower(&component.Tower{})
	c := w.AddProjectile(&component.Projectile{Life: 1})
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID || a.ID == 0 {
		t.Errorf("expected distinct non-zero IDs, got %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestFilterEnemiesKeepsOrder(t *testing.T) {
	w := newTestWorld()
	for hp := 1; hp <= 5; hp++ {
		w.AddEnemy(&component.Enemy{HP: hp})
	}
	w.FilterEnemies(func(e *component.Enemy) bool { return e.HP%2 == 1 })
	if len(w.Enemies) != 3 {
		t.Fatalf("expected 3 enemies, got %d", len(w.Enemies))
	}
	for i, want := range []int{1, 3, 5} {
		if w.Enemies[i].HP != want {
			t.Errorf("position %d: expected hp %d, got %d", i, want, w.Enemies[i].HP)
		}
	}
}

func TestLiveEnemiesSkipsResolved(t *testing.T) {
	w := newTestWorld()
	w.AddEnemy(&component.Enemy{HP: 10})
	w.AddEnemy(&component.Enemy{HP: 0})
	w.AddEnemy(&component.Enemy{HP: 5, ReachedEnd: true})
	if got := len(w.LiveEnemies()); got != 1 {
		t.Errorf("expected 1 live enemy, got %d", got)
	}
}

func TestFilterProjectilesAndTexts(t *testing.T) {
	w := newTestWorld()
	w.AddProjectile(&component.Projectile{Life: 1})
	w.AddProjectile(&component.Projectile{Life: 0})
	w.AddProjectile(&component.Projectile{Life: 1, Expired: true})
	w.FilterProjectiles()
	if len(w.Projectiles) != 1 {
		t.Errorf("expected 1 projectile, got %d", len(w.Projectiles))
	}

	w.AddText(&component.FloatingText{Life: 0.5})
	w.AddText(&component.FloatingText{Life: -0.1})
	w.FilterTexts()
	if len(w.Texts) != 1 {
		t.Errorf("expected 1 text, got %d", len(w.Texts))
	}
}

func TestTowerLookups(t *testing.T) {
	w := newTestWorld()
	tw := w.AddTower(&component.Tower{Cell: grid.Cell{Col: 2, Row: 3}, Position: grid.Point{X: 100, Y: 140}})
	if got, ok := w.TowerAt(grid.Cell{Col: 2, Row: 3}); !ok || got != tw {
		t.Error("TowerAt did not find the tower")
	}
	if _, ok := w.TowerAt(grid.Cell{Col: 0, Row: 0}); ok {
		t.Error("TowerAt found a tower on an empty cell")
	}
	if _, ok := w.TowerNear(grid.Point{X: 110, Y: 140}, 14); !ok {
		t.Error("TowerNear missed a tower 10px away")
	}
	if _, ok := w.TowerNear(grid.Point{X: 120, Y: 140}, 14); ok {
		t.Error("TowerNear matched a tower 20px away")
	}
	if got, ok := w.Tower(tw.ID); !ok || got != tw {
		t.Error("Tower(id) did not find the tower")
	}
}
