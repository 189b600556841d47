package system

import (
	"math"
	"testing"

	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/event"
	"go-rail-defense/pkg/grid"
)

func TestFindTargetPrefersFurthestAlongPath(t *testing.T) {
	w := newTestWorld()
	tower := newTower(w, grid.Point{X: 50, Y: 50}, railStats())

	behind := newEnemy(w, 10, 50)
	behind.Path.Progress = 0.9
	behind.Position = grid.Point{X: 90, Y: 0}

	ahead := newEnemy(w, 10, 50)
	ahead.Path.Segment = 1
	ahead.Path.Progress = 0.1
	ahead.Position = grid.Point{X: 100, Y: 10}

	if got := FindTarget(tower, w.Enemies); got != ahead {
		t.Errorf("expected the enemy on the later segment, got %+v", got)
	}
}

func TestFindTargetTieKeepsListOrder(t *testing.T) {
	w := newTestWorld()
	tower := newTower(w, grid.Point{X: 50, Y: 50}, railStats())
	first := newEnemy(w, 10, 50)
	newEnemy(w, 10, 50)

	if got := FindTarget(tower, w.Enemies); got != first {
		t.Errorf("expected the first enemy on a tie, got ID %d", got.ID)
	}
}

func TestFindTargetSkipsOutOfRangeAndResolved(t *testing.T) {
	w := newTestWorld()
	stats := railStats()
	stats.Range = 20
	tower := newTower(w, grid.Point{X: 0, Y: 30}, stats)

	far := newEnemy(w, 10, 50)
	far.Position = grid.Point{X: 100, Y: 0}
	dead := newEnemy(w, 0, 50)
	dead.Position = grid.Point{X: 0, Y: 20}
	breached := newEnemy(w, 10, 50)
	breached.Position = grid.Point{X: 0, Y: 20}
	breached.ReachedEnd = true

	if got := FindTarget(tower, w.Enemies); got != nil {
		t.Errorf("expected no target, got ID %d", got.ID)
	}

	// Ровно на границе радиуса — в радиусе.
	edge := newEnemy(w, 10, 50)
	edge.Position = grid.Point{X: 0, Y: 10}
	if got := FindTarget(tower, w.Enemies); got != edge {
		t.Errorf("expected the enemy on the range boundary, got %+v", got)
	}
}

func TestCombatCooldown(t *testing.T) {
	w := newTestWorld()
	d, log := newRecordingDispatcher()
	tower := newTower(w, grid.Point{X: 50, Y: 50}, railStats())
	newEnemy(w, 1000, 0)
	s := NewCombatSystem(w, d)

	s.Update(0.01)
	if len(w.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(w.Projectiles))
	}
	want := 1 / tower.Stats.FireRate
	if math.Abs(tower.FireCooldown-want) > 1e-9 {
		t.Errorf("expected cooldown %f, got %f", want, tower.FireCooldown)
	}

	// До истечения перезарядки второго выстрела нет.
	for elapsed := 0.0; elapsed+0.05 < want; elapsed += 0.05 {
		s.Update(0.05)
	}
	if len(w.Projectiles) != 1 {
		t.Errorf("expected no second shot before cooldown, got %d projectiles", len(w.Projectiles))
	}
	s.Update(0.05)
	if len(w.Projectiles) != 2 {
		t.Errorf("expected a second shot once cooldown elapsed, got %d", len(w.Projectiles))
	}
	if log.count(event.ProjectileFired) != 2 {
		t.Errorf("expected 2 ProjectileFired events, got %d", log.count(event.ProjectileFired))
	}
}

func TestCombatHoldsFireWithoutTarget(t *testing.T) {
	w := newTestWorld()
	d, _ := newRecordingDispatcher()
	tower := newTower(w, grid.Point{X: 500, Y: 500}, railStats())
	newEnemy(w, 10, 0)

	NewCombatSystem(w, d).Update(0.1)
	if len(w.Projectiles) != 0 {
		t.Errorf("expected no projectiles, got %d", len(w.Projectiles))
	}
	if tower.FireCooldown >= 0 {
		t.Errorf("expected cooldown to keep counting down, got %f", tower.FireCooldown)
	}
}

func TestCombatMultiShotSpread(t *testing.T) {
	w := newTestWorld()
	d, _ := newRecordingDispatcher()
	stats := railStats()
	stats.MultiShot = 2
	stats.Slow = &defs.SlowStats{Factor: 0.5, Duration: 1}
	tower := newTower(w, grid.Point{X: 0, Y: 50}, stats)
	newEnemy(w, 10, 0) // прямо над башней

	NewCombatSystem(w, d).Update(0.01)
	if len(w.Projectiles) != 2 {
		t.Fatalf("expected 2 projectiles, got %d", len(w.Projectiles))
	}

	base := -math.Pi / 2
	for i, p := range w.Projectiles {
		angle := math.Atan2(p.Velocity.Y, p.Velocity.X)
		wantOffset := (float64(i) - 0.5) * 0.12
		if math.Abs(angle-(base+wantOffset)) > 1e-9 {
			t.Errorf("projectile %d: expected angle %f, got %f", i, base+wantOffset, angle)
		}
		if math.Abs(p.Velocity.Len()-stats.ProjectileSpeed) > 1e-9 {
			t.Errorf("projectile %d: expected speed %f, got %f", i, stats.ProjectileSpeed, p.Velocity.Len())
		}
		if p.Damage != stats.Damage || p.OwnerID != tower.ID {
			t.Errorf("projectile %d: unexpected payload %+v", i, p)
		}
		if p.Slow == nil || p.Slow == tower.Stats.Slow {
			t.Errorf("projectile %d: expected its own copy of the slow", i)
		}
	}
}
