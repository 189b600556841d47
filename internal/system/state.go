// internal/system/state.go
package system

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
)

// StateSystem переводит забег между фазами по итогам тика.
type StateSystem struct {
	world           *entity.World
	run             *component.RunState
	waveCount       int
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, run *component.RunState, waveCount int, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		run:             run,
		waveCount:       waveCount,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update() {
	if s.run.Phase.Terminal() {
		return
	}
	if s.run.Health <= 0 {
		s.switchTo(component.Defeat)
		s.eventDispatcher.Publish(event.Defeat, nil)
		s.eventDispatcher.Publish(event.LogMessage, event.LogData{Text: "The base has fallen. Press Reset to try again."})
		return
	}
	if s.run.Phase != component.WaveActive || !s.WaveDone() {
		return
	}

	wave := s.world.Wave
	if s.run.Wave >= s.waveCount-1 {
		s.switchTo(component.Victory)
		s.eventDispatcher.Publish(event.Victory, nil)
		s.eventDispatcher.Publish(event.LogMessage, event.LogData{Text: "Every wave repelled! Press Reset to play again."})
		return
	}
	s.switchTo(component.WaveCleared)
	s.eventDispatcher.Publish(event.WaveCleared, event.WaveData{Index: wave.Index, Label: wave.Def.Label, Count: wave.Def.Count})
}

// WaveDone reports whether the current schedule is exhausted and the field is empty.
func (s *StateSystem) WaveDone() bool {
	wave := s.world.Wave
	return wave != nil && wave.Finished() && len(s.world.Enemies) == 0
}

func (s *StateSystem) switchTo(phase component.Phase) {
	s.run.Phase = phase
}

func (s *StateSystem) Current() component.Phase {
	return s.run.Phase
}
