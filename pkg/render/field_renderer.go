// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"go-rail-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует статичный фон поля: сетку и дорожку врагов.
// Фон не меняется за игру, поэтому рисуется один раз в fieldImage.
type FieldRenderer struct {
	grid       grid.Grid
	path       grid.Path
	colors     FieldColors
	offsetX    float64
	offsetY    float64
	fillImg    *ebiten.Image
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	fieldImage *ebiten.Image // Предрендеренное поле
}

func NewFieldRenderer(g grid.Grid, path grid.Path, offsetX, offsetY float64, colors FieldColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &FieldRenderer{
		grid:       g,
		path:       path,
		colors:     colors,
		offsetX:    offsetX,
		offsetY:    offsetY,
		fillImg:    fillImg,
		strokeVs:   make([]ebiten.Vertex, 0, 256),
		strokeIs:   make([]uint16, 0, 384),
		fieldImage: ebiten.NewImage(int(g.Width), int(g.Height)),
	}
	r.RenderFieldImage()
	return r
}

// RenderFieldImage перерисовывает предрендеренный фон.
func (r *FieldRenderer) RenderFieldImage() {
	r.fieldImage.Fill(r.colors.BackgroundColor)

	for c := 0; c <= r.grid.Cols(); c++ {
		x := float32(float64(c) * r.grid.Size)
		vector.StrokeLine(r.fieldImage, x, 0, x, float32(r.grid.Height), r.colors.GridLineWidth, r.colors.GridLineColor, false)
	}
	for row := 0; row <= r.grid.Rows(); row++ {
		y := float32(float64(row) * r.grid.Size)
		vector.StrokeLine(r.fieldImage, 0, y, float32(r.grid.Width), y, r.colors.GridLineWidth, r.colors.GridLineColor, false)
	}

	r.drawPath(r.fieldImage)

	if r.path.Len() > 0 {
		start := r.path.Start()
		end := r.path.Point(r.path.Len() - 1)
		vector.DrawFilledCircle(r.fieldImage, float32(start.X), float32(start.Y), r.colors.PathWidth/3, r.colors.EntryColor, true)
		vector.DrawFilledCircle(r.fieldImage, float32(end.X), float32(end.Y), r.colors.PathWidth/3, r.colors.ExitColor, true)
	}
}

func (r *FieldRenderer) drawPath(target *ebiten.Image) {
	if r.path.Len() < 2 {
		return
	}
	p := vector.Path{}
	for i, pt := range r.path.Points() {
		if i == 0 {
			p.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
	}

	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.colors.PathWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c := r.colors.PathColor
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	// осевая линия чуть светлее полосы
	center := LightenColor(c, 40)
	for i := 0; i < r.path.Segments(); i++ {
		a, b := r.path.Segment(i)
		vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, center, true)
	}
}

// Draw выводит фон поля одним вызовом.
func (r *FieldRenderer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.offsetX, r.offsetY)
	screen.DrawImage(r.fieldImage, op)
}
