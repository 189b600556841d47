// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Pulse — масштаб кнопки через elapsed секунд после щелчка: 1.3 сразу,
// затем быстро спадает к 1.
func Pulse(elapsed float64) float32 {
	if elapsed < 0 {
		elapsed = 0
	}
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// Approach двигает current к target не больше чем на step и не
// проскакивает цель.
func Approach(current, target, step float64) float64 {
	if math.Abs(target-current) <= step {
		return target
	}
	if target > current {
		return current + step
	}
	return current - step
}
