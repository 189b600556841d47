// internal/termview/geometry.go
package termview

import (
	"go-rail-defense/pkg/grid"
)

// Клетка поля занимает две колонки терминала и одну строку, чтобы
// поле выглядело примерно квадратным.
const (
	cellWidth = 2
	fieldTop  = 2 // строки над полем: статус и кнопки
	fieldLeft = 0
	panelGap  = 2
)

// Geometry переводит координаты терминала в координаты поля и обратно.
type Geometry struct {
	Grid grid.Grid
}

// FieldCols is the field width in terminal columns.
func (g Geometry) FieldCols() int {
	return g.Grid.Cols() * cellWidth
}

// PanelLeft is the first terminal column of the side panel.
func (g Geometry) PanelLeft() int {
	return fieldLeft + g.FieldCols() + panelGap
}

// CellAt returns the grid cell under terminal position (x, y).
func (g Geometry) CellAt(x, y int) (grid.Cell, bool) {
	if x < fieldLeft || y < fieldTop {
		return grid.Cell{}, false
	}
	c := grid.Cell{Col: (x - fieldLeft) / cellWidth, Row: y - fieldTop}
	if !g.Grid.Contains(c) {
		return grid.Cell{}, false
	}
	return c, true
}

// FieldPoint maps a terminal position to the centre of the cell under it.
func (g Geometry) FieldPoint(x, y int) (grid.Point, bool) {
	c, ok := g.CellAt(x, y)
	if !ok {
		return grid.Point{}, false
	}
	return g.Grid.Center(c), true
}

// TermPos returns the left terminal column and the row of the cell
// containing field point p.
func (g Geometry) TermPos(p grid.Point) (int, int) {
	c := g.Grid.CellAt(p)
	return fieldLeft + c.Col*cellWidth, fieldTop + c.Row
}
