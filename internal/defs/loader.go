// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"go-rail-defense/pkg/grid"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	towersFile = "towers.yaml"
	wavesFile  = "waves.yaml"
	mapFile    = "map.yaml"
	keysFile   = "keys.yaml"
)

// Definitions is the full set of static game data.
type Definitions struct {
	Towers []TowerDefinition
	Waves  []WaveDefinition
	Path   grid.Path
	Keys   KeyBindings
}

type towersFileData struct {
	Towers []TowerDefinition `yaml:"towers"`
}

type wavesFileData struct {
	Waves []WaveDefinition `yaml:"waves"`
}

type keysFileData struct {
	Bindings KeyBindings `yaml:"bindings"`
}

// LoadDefault parses the data files embedded in the binary.
func LoadDefault() (*Definitions, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded data: %w", err)
	}
	return Load(sub)
}

// Load reads towers.yaml, waves.yaml, map.yaml and keys.yaml from fsys.
func Load(fsys fs.FS) (*Definitions, error) {
	var towers towersFileData
	if err := decodeFile(fsys, towersFile, &towers); err != nil {
		return nil, err
	}
	var waves wavesFileData
	if err := decodeFile(fsys, wavesFile, &waves); err != nil {
		return nil, err
	}
	var m MapDefinition
	if err := decodeFile(fsys, mapFile, &m); err != nil {
		return nil, err
	}
	var keys keysFileData
	if err := decodeFile(fsys, keysFile, &keys); err != nil {
		return nil, err
	}

	d := &Definitions{
		Towers: towers.Towers,
		Waves:  waves.Waves,
		Keys:   keys.Bindings,
	}
	applyTowerDefaults(d.Towers)
	if err := validateTowers(d.Towers); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", towersFile, err)
	}
	if err := validateWaves(d.Waves); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", wavesFile, err)
	}
	path, err := buildPath(m)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", mapFile, err)
	}
	d.Path = path
	if d.Keys == nil {
		d.Keys = KeyBindings{}
	}

	log.Printf("Loaded %d tower definitions, %d waves, %d waypoints", len(d.Towers), len(d.Waves), path.Len())
	return d, nil
}

// Tower returns the definition with the given ID.
func (d *Definitions) Tower(id string) (TowerDefinition, bool) {
	for _, t := range d.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return TowerDefinition{}, false
}

// Wave returns the wave at index i. Indexes outside the table report false.
func (d *Definitions) Wave(i int) (WaveDefinition, bool) {
	if i < 0 || i >= len(d.Waves) {
		return WaveDefinition{}, false
	}
	return d.Waves[i], true
}

func decodeFile(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// applyTowerDefaults заполняет необязательные поля.
func applyTowerDefaults(towers []TowerDefinition) {
	for i := range towers {
		t := &towers[i]
		if t.Stats.MultiShot < 1 {
			t.Stats.MultiShot = 1
		}
		if t.Upgrade.DamageMult == 0 {
			t.Upgrade.DamageMult = 1
		}
		if t.Upgrade.RangeMult == 0 {
			t.Upgrade.RangeMult = 1
		}
		if t.Upgrade.FireRateMult == 0 {
			t.Upgrade.FireRateMult = 1
		}
	}
}

func validateTowers(towers []TowerDefinition) error {
	if len(towers) == 0 {
		return errors.New("at least one tower type is required")
	}
	seen := make(map[string]bool, len(towers))
	for _, t := range towers {
		if t.ID == "" {
			return errors.New("tower id is required")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tower id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Cost <= 0 {
			return fmt.Errorf("tower %s: cost must be positive, got %d", t.ID, t.Cost)
		}
		if t.Stats.FireRate <= 0 {
			return fmt.Errorf("tower %s: fire_rate must be positive, got %v", t.ID, t.Stats.FireRate)
		}
		if t.Stats.Range <= 0 || t.Stats.ProjectileSpeed <= 0 {
			return fmt.Errorf("tower %s: range and projectile_speed must be positive", t.ID)
		}
		if t.Upgrade.DamageMult <= 0 || t.Upgrade.RangeMult <= 0 || t.Upgrade.FireRateMult <= 0 {
			return fmt.Errorf("tower %s: upgrade multipliers must be positive", t.ID)
		}
		for _, s := range []*SlowStats{t.Stats.Slow, t.Upgrade.Slow} {
			if s != nil && (s.Factor <= 0 || s.Factor > 1 || s.Duration <= 0) {
				return fmt.Errorf("tower %s: slow factor must be in (0,1] with a positive duration", t.ID)
			}
		}
	}
	return nil
}

func validateWaves(waves []WaveDefinition) error {
	if len(waves) == 0 {
		return errors.New("at least one wave is required")
	}
	for i, w := range waves {
		if w.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", i, w.Count)
		}
		if w.HP <= 0 || w.Speed <= 0 {
			return fmt.Errorf("wave %d: hp and speed must be positive", i)
		}
		if w.Reward < 0 {
			return fmt.Errorf("wave %d: reward must not be negative", i)
		}
	}
	return nil
}

func buildPath(m MapDefinition) (grid.Path, error) {
	if len(m.Waypoints) < 2 {
		return grid.Path{}, fmt.Errorf("path needs at least 2 waypoints, got %d", len(m.Waypoints))
	}
	pts := make([]grid.Point, len(m.Waypoints))
	for i, w := range m.Waypoints {
		pts[i] = grid.Point{X: w.X, Y: w.Y}
		// враги не могут пройти сегмент нулевой длины
		if i > 0 && pts[i] == pts[i-1] {
			return grid.Path{}, fmt.Errorf("waypoints %d and %d coincide at (%v, %v)", i-1, i, w.X, w.Y)
		}
	}
	return grid.NewPath(pts), nil
}
