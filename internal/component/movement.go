// component/movement.go
package component

import "go-rail-defense/pkg/grid"

// Position — компонент позиции
type Position = grid.Point

// Velocity — вектор скорости в пикселях в секунду
type Velocity = grid.Point

// PathProgress — положение врага на пути: номер сегмента и доля пройденного.
type PathProgress struct {
	Segment  int
	Progress float64 // [0,1] along the current segment
}
