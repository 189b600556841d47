// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the colors of the static field background.
type FieldColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	PathWidth       float32
	GridLineWidth   float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to each channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// WithAlpha returns c with alpha scaled by a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// premultiplied: каналы масштабируются вместе с альфой
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
