package layout

import (
	"fmt"
	"image/color"
	"strings"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
)

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveCaption formats the wave indicator text, e.g. "III/V Tank drones".
// waveNumber counts from one.
func WaveCaption(waveNumber, waveCount int, label string) string {
	return fmt.Sprintf("%s/%s %s", toRoman(waveNumber), toRoman(waveCount), label)
}

// StatsLine formats damage, range and fire rate of a tower.
func StatsLine(s defs.TowerStats) string {
	line := fmt.Sprintf("DMG %d  RNG %.0f  %.1f/s", s.Damage, s.Range, s.FireRate)
	if s.Shots() > 1 {
		line += fmt.Sprintf("  x%d", s.Shots())
	}
	return line
}

// PhaseColor returns the state indicator color of a phase.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.WaveActive:
		return config.WaveStateColor
	case component.Victory:
		return config.VictoryColor
	case component.Defeat:
		return config.DefeatColor
	default:
		return config.IdleStateColor
	}
}
