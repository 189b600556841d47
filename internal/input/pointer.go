// internal/input/pointer.go
package input

import (
	"go-rail-defense/internal/interfaces"
	"go-rail-defense/internal/layout"
)

// controlActions — кнопки интерфейса, повторяющие действия клавиатуры.
var controlActions = map[layout.Control]Action{
	layout.ControlStart:    StartGame,
	layout.ControlNextWave: NextWave,
	layout.ControlReset:    Reset,
	layout.ControlUpgrade:  UpgradeTower,
	layout.ControlSettings: Settings,
	layout.ControlPause:    Pause,
}

// Click routes a left click at screen coordinates. It returns the action a
// button stood for (ok false for field and card clicks) so the caller can
// handle Settings.
func Click(g interfaces.Controls, l layout.Layout, x, y int) (Action, bool, error) {
	if p, inField := l.FieldPoint(x, y); inField {
		return 0, false, g.HandleClick(p)
	}
	if i, ok := l.CardAt(x, y); ok {
		return 0, false, g.SelectTowerTypeIndex(i)
	}
	control := l.ControlAt(x, y)
	if control == layout.ControlSpeed {
		g.CycleSpeed()
		return 0, false, nil
	}
	a, ok := controlActions[control]
	if !ok {
		return 0, false, nil
	}
	return a, true, Perform(g, a)
}
