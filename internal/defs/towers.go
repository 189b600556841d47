// internal/defs/towers.go
package defs

import (
	"math"

	"go-rail-defense/internal/config"
)

// SlowStats — параметры замедления. nil у башен без замедления.
type SlowStats struct {
	Factor   float64 `yaml:"factor"`   // множитель скорости, например 0.65
	Duration float64 `yaml:"duration"` // секунды
}

// TowerStats contains the combat parameters of a tower.
type TowerStats struct {
	Damage          int        `yaml:"damage"`
	Range           float64    `yaml:"range"`
	FireRate        float64    `yaml:"fire_rate"` // Shots per second
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	Slow            *SlowStats `yaml:"slow,omitempty"`
	MultiShot       int        `yaml:"multi_shot,omitempty"`
}

// UpgradeDefinition describes how level 2 is derived from the base stats.
type UpgradeDefinition struct {
	DamageMult   float64    `yaml:"damage_mult"`
	RangeMult    float64    `yaml:"range_mult"`
	FireRateMult float64    `yaml:"fire_rate_mult"`
	MultiShot    int        `yaml:"multi_shot,omitempty"`
	Slow         *SlowStats `yaml:"slow,omitempty"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cost        int               `yaml:"cost"`
	Color       HexColor          `yaml:"color"`
	Stats       TowerStats        `yaml:"stats"`
	Upgrade     UpgradeDefinition `yaml:"upgrade"`
}

// UpgradeCost is the price of the next level. It depends only on the base
// cost, never on the current level.
func (d TowerDefinition) UpgradeCost() int {
	return int(math.Ceil(float64(d.Cost) * config.UpgradeCostMultiplier))
}

// StatsForLevel derives the stats of the given level from the base stats.
func (d TowerDefinition) StatsForLevel(level int) TowerStats {
	if level <= 1 {
		return d.Stats.Clone()
	}
	return d.Upgrade.Apply(d.Stats)
}

// Apply returns the upgraded version of base. base is not modified.
func (u UpgradeDefinition) Apply(base TowerStats) TowerStats {
	up := base.Clone()
	up.Damage = int(math.Round(float64(base.Damage) * u.DamageMult))
	up.Range = base.Range * u.RangeMult
	up.FireRate = base.FireRate * u.FireRateMult
	if u.MultiShot > up.MultiShot {
		up.MultiShot = u.MultiShot
	}
	if u.Slow != nil {
		s := *u.Slow
		up.Slow = &s
	}
	return up
}

// Clone returns a deep copy.
func (s TowerStats) Clone() TowerStats {
	cp := s
	if s.Slow != nil {
		slow := *s.Slow
		cp.Slow = &slow
	}
	return cp
}

// Shots returns MultiShot, at least 1.
func (s TowerStats) Shots() int {
	if s.MultiShot < 1 {
		return 1
	}
	return s.MultiShot
}
