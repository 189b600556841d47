package system

import (
	"testing"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/event"
)

func TestStateSystemTransitions(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		waveIndex int
		finished  bool
		enemies   int
		want      component.Phase
	}{
		{"spawning continues", 20, 0, false, 0, component.WaveActive},
		{"enemies remain", 20, 0, true, 1, component.WaveActive},
		{"wave cleared", 20, 0, true, 0, component.WaveCleared},
		{"final wave cleared", 20, 2, true, 0, component.Victory},
		{"health depleted", 0, 0, false, 3, component.Defeat},
		{"defeat wins over victory", -1, 2, true, 0, component.Defeat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			d, _ := newRecordingDispatcher()
			run := &component.RunState{Health: tt.health, Wave: tt.waveIndex, Phase: component.WaveActive}
			w.Wave = &component.Wave{Index: tt.waveIndex, Def: defs.WaveDefinition{Count: 2}}
			if tt.finished {
				w.Wave.Spawned = 2
			}
			for i := 0; i < tt.enemies; i++ {
				newEnemy(w, 10, 0)
			}

			NewStateSystem(w, run, 3, d).Update()
			if run.Phase != tt.want {
				t.Errorf("expected %s, got %s", tt.want, run.Phase)
			}
		})
	}
}

func TestStateSystemTerminalIsSticky(t *testing.T) {
	w := newTestWorld()
	d, log := newRecordingDispatcher()
	run := &component.RunState{Health: 0, Phase: component.Defeat}

	NewStateSystem(w, run, 3, d).Update()
	if run.Phase != component.Defeat || log.count(event.Defeat) != 0 {
		t.Errorf("expected no further transitions from Defeat, got %s", run.Phase)
	}
}

func TestStateSystemPublishesOutcome(t *testing.T) {
	w := newTestWorld()
	d, log := newRecordingDispatcher()
	run := &component.RunState{Health: 20, Phase: component.WaveActive}
	w.Wave = &component.Wave{Def: defs.WaveDefinition{Label: "Scouts", Count: 1}, Spawned: 1}
	s := NewStateSystem(w, run, 5, d)

	s.Update()
	s.Update()
	if log.count(event.WaveCleared) != 1 {
		t.Errorf("expected exactly one WaveCleared, got %d", log.count(event.WaveCleared))
	}
}
