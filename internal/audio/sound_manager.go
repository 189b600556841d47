// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-rail-defense/internal/event"
)

const (
	sampleRate     = beep.SampleRate(44100)
	masterVolume   = 0.5
	minFireSpacing = 60 * time.Millisecond // выстрелы нескольких башен сливаются в один звук
)

// SoundType — звуковой сигнал игры.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundFire
	SoundKill
	SoundBreach
	SoundPlace
	SoundWave
	SoundVictory
	SoundDefeat
)

// SoundFor maps a game event to its cue.
func SoundFor(t event.EventType) SoundType {
	switch t {
	case event.ProjectileFired:
		return SoundFire
	case event.EnemyKilled:
		return SoundKill
	case event.EnemyBreached:
		return SoundBreach
	case event.TowerPlaced, event.TowerUpgraded:
		return SoundPlace
	case event.WaveStarted:
		return SoundWave
	case event.Victory:
		return SoundVictory
	case event.Defeat:
		return SoundDefeat
	}
	return SoundNone
}

// NewSound builds a fresh streamer for the cue, nil for SoundNone.
func NewSound(s SoundType, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundFire:
		st = createFireSound(rate)
	case SoundKill:
		st = createKillSound(rate)
	case SoundBreach:
		st = createBreachSound(rate)
	case SoundPlace:
		st = createPlaceSound(rate)
	case SoundWave:
		st = createWaveSound(rate)
	case SoundVictory:
		st = createVictorySound(rate)
	case SoundDefeat:
		st = createDefeatSound(rate)
	default:
		return nil
	}
	return newVolume(st, masterVolume)
}

// SoundManager manages all game audio. Без устройства вывода все вызовы
// тихо ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastFire    time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute switches all cues on or off.
func (sm *SoundManager) ToggleMute() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s == SoundNone {
		return
	}
	if s == SoundFire {
		now := sm.now()
		if now.Sub(sm.lastFire) < minFireSpacing {
			return
		}
		sm.lastFire = now
	}
	streamer := NewSound(s, sampleRate)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnEvent plays the cue of a game event.
func (sm *SoundManager) OnEvent(e event.Event) {
	if e.Type == event.SoundToggled {
		sm.ToggleMute()
		return
	}
	sm.Play(SoundFor(e.Type))
}
