// internal/input/perform.go
package input

import "go-rail-defense/internal/interfaces"

// Perform выполняет действие над игрой. Settings обрабатывает фронтенд,
// здесь оно ничего не делает.
func Perform(g interfaces.Controls, a Action) error {
	switch a {
	case Pause:
		g.TogglePause()
	case SpeedUp:
		g.SpeedUp()
	case SpeedDown:
		g.SpeedDown()
	case NextWave:
		return g.NextWave()
	case Reset:
		g.Reset()
	case SelectTower1, SelectTower2, SelectTower3:
		i, _ := a.TowerIndex()
		return g.SelectTowerTypeIndex(i)
	case ClearSelection:
		g.ClearSelection()
	case StartGame:
		return g.StartGame()
	case UpgradeTower:
		return g.UpgradeSelected()
	case ToggleSound:
		g.ToggleSound()
	}
	return nil
}
