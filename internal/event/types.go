// internal/event/types.go
package event

import "go-rail-defense/internal/types"

const (
	GameStarted     EventType = "GameStarted"
	GameReset       EventType = "GameReset"
	WaveStarted     EventType = "WaveStarted"  // Волна началась
	WaveCleared     EventType = "WaveCleared"  // Волна закончилась
	EnemySpawned    EventType = "EnemySpawned" // Враг появился у входа
	EnemyKilled     EventType = "EnemyKilled"  // Враг уничтожен
	EnemyBreached   EventType = "EnemyBreached"
	TowerPlaced     EventType = "TowerPlaced" // Башня построена
	TowerUpgraded   EventType = "TowerUpgraded"
	ProjectileFired EventType = "ProjectileFired"
	ProjectileHit   EventType = "ProjectileHit"
	Victory         EventType = "Victory"
	Defeat          EventType = "Defeat"
	LogMessage      EventType = "LogMessage" // Строка для журнала игрока
	SoundToggled    EventType = "SoundToggled"
)

// WaveData сопровождает WaveStarted и WaveCleared.
type WaveData struct {
	Index int
	Label string
	Count int
}

// EnemyData сопровождает EnemySpawned, EnemyKilled и EnemyBreached.
type EnemyData struct {
	ID     types.EntityID
	Elite  bool
	Reward int
}

// TowerData сопровождает TowerPlaced и TowerUpgraded.
type TowerData struct {
	ID    types.EntityID
	DefID string
	Name  string
	Level int
	Cost  int
}

// HitData сопровождает ProjectileHit.
type HitData struct {
	EnemyID types.EntityID
	Damage  int
	Killed  bool
}

// FireData сопровождает ProjectileFired.
type FireData struct {
	TowerID types.EntityID
	Shots   int
}

// LogData — текст для журнала.
type LogData struct {
	Text string
}
