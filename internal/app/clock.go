// internal/app/clock.go
package app

import (
	"time"

	"go-rail-defense/internal/config"
)

// Clock считает время кадра, ограниченное сверху config.MaxDeltaTime,
// чтобы после долгой паузы окна симуляция не прыгала.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith uses now as the time source.
func NewClockWith(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds since the previous Tick, clamped to [0, MaxDeltaTime].
func (c *Clock) Tick() float64 {
	now := c.now()
	deltaTime := now.Sub(c.last).Seconds()
	c.last = now
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	return deltaTime
}
