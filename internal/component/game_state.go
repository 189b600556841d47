package component

// Phase — фаза забега.
type Phase int

const (
	Idle Phase = iota
	WaveActive
	WaveCleared
	Victory
	Defeat
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case WaveActive:
		return "Wave"
	case WaveCleared:
		return "Cleared"
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Terminal reports whether only a reset can continue the run.
func (p Phase) Terminal() bool {
	return p == Victory || p == Defeat
}

// Running reports whether the simulation advances in this phase.
func (p Phase) Running() bool {
	return p == WaveActive || p == WaveCleared
}

// RunState — состояние забега: деньги, здоровье, волна, время.
type RunState struct {
	Money      int
	Health     int
	Wave       int // индекс текущей волны
	Time       float64
	Phase      Phase
	Paused     bool
	SpeedIndex int
}

// DisplayHealth never goes below zero.
func (s *RunState) DisplayHealth() int {
	if s.Health < 0 {
		return 0
	}
	return s.Health
}
