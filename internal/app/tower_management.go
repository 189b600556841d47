// internal/app/tower_management.go
package app

import (
	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/event"
	"go-rail-defense/internal/types"
	"go-rail-defense/pkg/grid"
)

// ActiveTower returns the tower type that a click on an empty cell builds.
func (g *Game) ActiveTower() defs.TowerDefinition {
	def, _ := g.Defs.Tower(g.activeTowerID)
	return def
}

// SelectTowerType меняет тип башни для постройки.
func (g *Game) SelectTowerType(id string) error {
	if _, ok := g.Defs.Tower(id); !ok {
		return ErrUnknownTowerType
	}
	g.activeTowerID = id
	return nil
}

// SelectTowerTypeIndex selects the i-th tower type (0-based) of the table.
func (g *Game) SelectTowerTypeIndex(i int) error {
	if i < 0 || i >= len(g.Defs.Towers) {
		return ErrUnknownTowerType
	}
	return g.SelectTowerType(g.Defs.Towers[i].ID)
}

// HandleClick выбирает башню под курсором или строит новую.
// p — координаты внутри игрового поля.
func (g *Game) HandleClick(p grid.Point) error {
	if tower, ok := g.World.TowerNear(p, config.TowerRadius); ok {
		g.selectedTowerID = tower.ID
		return nil
	}
	g.selectedTowerID = 0
	_, err := g.PlaceTower(p)
	return err
}

// CanPlace reports why a tower of the active type cannot be placed at p, or nil.
func (g *Game) CanPlace(p grid.Point) error {
	if g.Run.Phase.Terminal() {
		return ErrRunOver
	}
	cell := g.World.Grid.CellAt(p)
	if !g.World.Grid.Contains(cell) {
		return ErrInvalidCell
	}
	if _, occupied := g.World.TowerAt(cell); occupied {
		return ErrCellOccupied
	}
	center := g.World.Grid.Center(cell)
	if g.World.Path.DistanceTo(center) < config.GridSize*config.PathClearanceFactor {
		return ErrInvalidCell
	}
	if g.Run.Money < g.ActiveTower().Cost {
		return ErrInsufficientFunds
	}
	return nil
}

// Preview — предпросмотр постройки активного типа под курсором.
type Preview struct {
	Center grid.Point // центр клетки
	Range  float64
	Err    error // nil, если строить можно
}

// PlacementPreview snaps p to its cell and reports whether the active tower
// type fits there.
func (g *Game) PlacementPreview(p grid.Point) Preview {
	return Preview{
		Center: g.World.Grid.Snap(p),
		Range:  g.ActiveTower().Stats.Range,
		Err:    g.CanPlace(p),
	}
}

// PlaceTower attempts to place a tower of the active type at the cell under p.
func (g *Game) PlaceTower(p grid.Point) (*component.Tower, error) {
	if err := g.CanPlace(p); err != nil {
		g.logPlacementError(err)
		return nil, err
	}

	def := g.ActiveTower()
	cell := g.World.Grid.CellAt(p)
	tower := g.createTowerEntity(def, cell)
	g.Run.Money -= def.Cost

	g.EventDispatcher.Publish(event.TowerPlaced, event.TowerData{
		ID: tower.ID, DefID: def.ID, Name: def.Name, Level: tower.Level, Cost: def.Cost,
	})
	g.logf("%s placed at (%.0f, %.0f).", def.Name, tower.Position.X, tower.Position.Y)
	return tower, nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, cell grid.Cell) *component.Tower {
	return g.World.AddTower(&component.Tower{
		DefID:    def.ID,
		Name:     def.Name,
		Position: g.World.Grid.Center(cell),
		Cell:     cell,
		Level:    1,
		Cost:     def.Cost,
		Color:    def.Color.RGBA(),
		Base:     def.StatsForLevel(1),
		Stats:    def.StatsForLevel(1),
	})
}

func (g *Game) logPlacementError(err error) {
	switch err {
	case ErrRunOver:
		g.logf("The run is over. Press Reset to play again.")
	case ErrCellOccupied:
		g.logf("That cell already has a tower.")
	case ErrInsufficientFunds:
		g.logf("Not enough credits for this tower.")
	default:
		g.logf("You cannot build on the path or right next to it.")
	}
}

// UpgradeCost returns the price of upgrading the tower.
func (g *Game) UpgradeCost(tower *component.Tower) int {
	def, ok := g.Defs.Tower(tower.DefID)
	if !ok {
		return 0
	}
	return def.UpgradeCost()
}

// UpgradeTower повышает уровень башни. Новые характеристики считаются
// от базовых, запомненных при покупке.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.Run.Phase.Terminal() {
		g.logf("The run is over. Press Reset to play again.")
		return ErrRunOver
	}
	tower, ok := g.World.Tower(id)
	if !ok {
		return ErrNoTowerSelected
	}
	def, ok := g.Defs.Tower(tower.DefID)
	if !ok {
		return ErrUnknownTowerType
	}
	if tower.Level >= config.MaxTowerLevel {
		g.logf("%s is already at max level.", tower.Name)
		return ErrTowerMaxLevel
	}
	cost := def.UpgradeCost()
	if g.Run.Money < cost {
		g.logf("Not enough credits for the upgrade (%d needed).", cost)
		return ErrInsufficientFunds
	}

	g.Run.Money -= cost
	tower.Level++
	tower.Stats = def.Upgrade.Apply(tower.Base)

	g.EventDispatcher.Publish(event.TowerUpgraded, event.TowerData{
		ID: tower.ID, DefID: def.ID, Name: def.Name, Level: tower.Level, Cost: cost,
	})
	g.logf("%s upgraded to level %d.", tower.Name, tower.Level)
	return nil
}

// UpgradeSelected upgrades the tower selected on the field.
func (g *Game) UpgradeSelected() error {
	if g.selectedTowerID == 0 {
		return ErrNoTowerSelected
	}
	return g.UpgradeTower(g.selectedTowerID)
}

// SelectedTower returns the tower selected on the field.
func (g *Game) SelectedTower() (*component.Tower, bool) {
	if g.selectedTowerID == 0 {
		return nil, false
	}
	return g.World.Tower(g.selectedTowerID)
}

func (g *Game) ClearSelection() {
	g.selectedTowerID = 0
}
