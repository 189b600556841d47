// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — шрифты интерфейса.
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// RegularTTF returns the raw TTF data of the UI font, for front ends that
// load fonts themselves (raylib).
func RegularTTF() []byte {
	return goregular.TTF
}

// LoadFonts parses the embedded Go Regular font at the two UI sizes.
func LoadFonts(size, titleSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	regular, err := newFace(tt, size)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, titleSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpt face: %w", size, err)
	}
	return face, nil
}

// TextWidth measures s in whole pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
