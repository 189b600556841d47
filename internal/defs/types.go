// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is a color written as "#rrggbb" or "#rrggbbaa" in the data files.
type HexColor color.RGBA

// RGBA returns the color as color.RGBA.
func (c HexColor) RGBA() color.RGBA {
	return color.RGBA(c)
}

// UnmarshalYAML parses "#rrggbb" / "#rrggbbaa".
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (HexColor, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// PointDef is a waypoint in map.yaml.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MapDefinition describes the fixed enemy route.
type MapDefinition struct {
	Waypoints []PointDef `yaml:"waypoints"`
}

// KeyBindings maps action names to key names, see keys.yaml.
type KeyBindings map[string]string
