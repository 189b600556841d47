package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-rail-defense/internal/event"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundFire)
	sm.OnEvent(event.Event{Type: event.Victory})
	sm.ToggleMute()
	sm.Cleanup()
}

func TestSoundToggledEventMutes(t *testing.T) {
	sm := NewSoundManager()
	sm.OnEvent(event.Event{Type: event.SoundToggled})
	if !sm.muted {
		t.Fatal("expected the first toggle to mute")
	}
	sm.OnEvent(event.Event{Type: event.SoundToggled})
	if sm.muted {
		t.Error("expected the second toggle to unmute")
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		event event.EventType
		want  SoundType
	}{
		{event.ProjectileFired, SoundFire},
		{event.EnemyKilled, SoundKill},
		{event.EnemyBreached, SoundBreach},
		{event.TowerPlaced, SoundPlace},
		{event.TowerUpgraded, SoundPlace},
		{event.WaveStarted, SoundWave},
		{event.Victory, SoundVictory},
		{event.Defeat, SoundDefeat},
		{event.LogMessage, SoundNone},
		{event.ProjectileHit, SoundNone},
	}
	for _, tt := range tests {
		if got := SoundFor(tt.event); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.event, tt.want, got)
		}
	}
}

// drain streams s to the end and returns the number of samples.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0001 || buf[i][0] > 1.0001 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total
}

func TestSoundsAreFinite(t *testing.T) {
	for _, s := range []SoundType{SoundFire, SoundKill, SoundBreach, SoundPlace, SoundWave, SoundVictory, SoundDefeat} {
		st := NewSound(s, sampleRate)
		if st == nil {
			t.Fatalf("sound %d: expected a streamer", s)
		}
		if n := drain(t, st, sampleRate.N(2*time.Second)); n == 0 {
			t.Errorf("sound %d: expected samples", s)
		}
	}
	if NewSound(SoundNone, sampleRate) != nil {
		t.Error("expected nil for SoundNone")
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if n := drain(t, osc, rate.N(time.Second)); n != rate.N(100*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if osc.Err() != nil {
		t.Errorf("expected no error, got %v", osc.Err())
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 50*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("expected silence at the start of the attack, got %f", buf[0][0])
	}
	if buf[30][0] != 1 {
		t.Errorf("expected full volume in sustain, got %f", buf[30][0])
	}
	if buf[99][0] >= buf[60][0] {
		t.Errorf("expected the release to fade, got %f then %f", buf[60][0], buf[99][0])
	}
}
