// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone — одна нота с огибающей.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, d/10, d/2, rate)
}

// Генераторы звуков

func createFireSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(660, 40*time.Millisecond, WaveSquare, rate), 0.15)
}

func createKillSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(987.77, 50*time.Millisecond, WaveSquare, rate),
		tone(1318.51, 90*time.Millisecond, WaveSquare, rate),
	)
}

func createBreachSound(rate beep.SampleRate) beep.Streamer {
	return tone(110, 220*time.Millisecond, WaveSaw, rate)
}

func createPlaceSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(880, 160*time.Millisecond, WaveSine, rate), 0.7),
		newVolume(tone(1760, 160*time.Millisecond, WaveSine, rate), 0.3),
	)
}

func createWaveSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392, 120*time.Millisecond, WaveSine, rate),
		tone(523.25, 180*time.Millisecond, WaveSine, rate),
	)
}

func createVictorySound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(523.25, 120*time.Millisecond, WaveSine, rate),
		tone(659.25, 120*time.Millisecond, WaveSine, rate),
		tone(783.99, 120*time.Millisecond, WaveSine, rate),
		tone(1046.5, 300*time.Millisecond, WaveSine, rate),
	)
}

func createDefeatSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392, 200*time.Millisecond, WaveSaw, rate),
		tone(311.13, 200*time.Millisecond, WaveSaw, rate),
		tone(261.63, 400*time.Millisecond, WaveSaw, rate),
	)
}
