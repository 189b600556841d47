// pkg/grid/grid.go
package grid

import "math"

// Point — точка на игровом поле в пикселях.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Subtract returns p-q.
func (p Point) Subtract(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p*k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len — длина вектора.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance — евклидово расстояние между двумя точками.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp выполняет линейную интерполяцию между a и b.
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// ClosestPointOnSegment returns the point of segment ab nearest to p.
func ClosestPointOnSegment(p, a, b Point) Point {
	ab := b.Subtract(a)
	ap := p.Subtract(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return a
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + ab.X*t, Y: a.Y + ab.Y*t}
}

// Cell — клетка квадратной сетки (столбец, строка).
type Cell struct {
	Col, Row int
}

// Grid describes a square grid laid over a rectangular field.
type Grid struct {
	Size          float64
	Width, Height float64
}

// New creates a grid with the given cell size over a width x height field.
func New(size, width, height float64) Grid {
	return Grid{Size: size, Width: width, Height: height}
}

// Cols returns the number of whole columns.
func (g Grid) Cols() int {
	return int(g.Width / g.Size)
}

// Rows returns the number of whole rows.
func (g Grid) Rows() int {
	return int(g.Height / g.Size)
}

// CellAt конвертирует пиксельные координаты в клетку.
func (g Grid) CellAt(p Point) Cell {
	return Cell{
		Col: int(math.Floor(p.X / g.Size)),
		Row: int(math.Floor(p.Y / g.Size)),
	}
}

// Center returns the pixel centre of a cell.
func (g Grid) Center(c Cell) Point {
	return Point{
		X: float64(c.Col)*g.Size + g.Size/2,
		Y: float64(c.Row)*g.Size + g.Size/2,
	}
}

// Snap привязывает точку к центру её клетки.
func (g Grid) Snap(p Point) Point {
	return g.Center(g.CellAt(p))
}

// Contains reports whether the cell lies inside the field.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols() && c.Row < g.Rows()
}
