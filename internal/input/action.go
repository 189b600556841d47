// internal/input/action.go
package input

import "fmt"

// Action — действие игрока, на которое можно назначить клавишу.
type Action int

const (
	Pause Action = iota
	SpeedUp
	SpeedDown
	NextWave
	Reset
	SelectTower1
	SelectTower2
	SelectTower3
	ClearSelection
	StartGame
	UpgradeTower
	ToggleSound
	Settings
	actionCount
)

// Имена совпадают с ключами keys.yaml.
var actionNames = [actionCount]string{
	Pause:          "pause",
	SpeedUp:        "speed_up",
	SpeedDown:      "speed_down",
	NextWave:       "next_wave",
	Reset:          "reset",
	SelectTower1:   "select_tower_1",
	SelectTower2:   "select_tower_2",
	SelectTower3:   "select_tower_3",
	ClearSelection: "clear_selection",
	StartGame:      "start_game",
	UpgradeTower:   "upgrade_tower",
	ToggleSound:    "toggle_sound",
	Settings:       "settings",
}

var actionLabels = [actionCount]string{
	Pause:          "Pause",
	SpeedUp:        "Speed up",
	SpeedDown:      "Speed down",
	NextWave:       "Next wave",
	Reset:          "Reset",
	SelectTower1:   "Tower 1",
	SelectTower2:   "Tower 2",
	SelectTower3:   "Tower 3",
	ClearSelection: "Clear selection",
	StartGame:      "Start",
	UpgradeTower:   "Upgrade tower",
	ToggleSound:    "Sound on/off",
	Settings:       "Settings",
}

// Actions returns every action in display order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Label is the human readable name shown on the settings screen.
func (a Action) Label() string {
	if a < 0 || a >= actionCount {
		return a.String()
	}
	return actionLabels[a]
}

// ParseAction maps a keys.yaml name back to an Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// TowerIndex returns the tower slot of a SelectTowerN action.
func (a Action) TowerIndex() (int, bool) {
	switch a {
	case SelectTower1:
		return 0, true
	case SelectTower2:
		return 1, true
	case SelectTower3:
		return 2, true
	}
	return 0, false
}
