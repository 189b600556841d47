// internal/app/errors.go
package app

import "errors"

// Ошибки действий игрока. Ни одна не фатальна: действие просто отклоняется.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrCellOccupied      = errors.New("cell occupied")
	ErrTowerMaxLevel     = errors.New("tower already at max level")
	ErrWaveInProgress    = errors.New("wave in progress")
	ErrNoMoreWaves       = errors.New("no more waves")
	ErrRunOver           = errors.New("run is over")
	ErrNoTowerSelected   = errors.New("no tower selected")
	ErrUnknownTowerType  = errors.New("unknown tower type")
)
