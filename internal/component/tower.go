// component/tower.go
package component

import (
	"image/color"

	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/types"
	"go-rail-defense/pkg/grid"
)

type Tower struct {
	ID       types.EntityID
	DefID    string    // ID из towers.yaml
	Name     string
	Position Position  // центр клетки
	Cell     grid.Cell // клетка сетки, на которой стоит башня
	Level    int       // 1 после покупки, 2 после улучшения
	Cost     int       // базовая стоимость, от неё считается цена улучшения
	Color    color.RGBA

	Base  defs.TowerStats // характеристики при покупке
	Stats defs.TowerStats // текущие характеристики

	FireCooldown float64 // Оставшееся время до следующего выстрела
}
