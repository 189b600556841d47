// internal/interfaces/controls.go
package interfaces

import "go-rail-defense/pkg/grid"

// Controls — операции забега, доступные вводу игрока. Клавиатура, мышь
// и кнопки всех фронтендов идут через этот интерфейс.
type Controls interface {
	StartGame() error
	NextWave() error
	Reset()
	TogglePause()
	SpeedUp()
	SpeedDown()
	CycleSpeed()
	SelectTowerTypeIndex(i int) error
	HandleClick(p grid.Point) error
	UpgradeSelected() error
	ClearSelection()
	ToggleSound()
}
