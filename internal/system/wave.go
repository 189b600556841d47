// internal/system/wave.go
package system

import (
	"fmt"
	"math"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/entity"
	"go-rail-defense/internal/event"
)

// SpawnStats — характеристики одного врага волны после масштабирования.
type SpawnStats struct {
	HP     int
	Reward int
	Speed  float64
	Radius float64
	Elite  bool
}

// EnemyStats считает характеристики врага с порядковым номером ordinal (с 1)
// в волне waveIndex (с 0). hp и награда растут как WaveScaling^waveIndex,
// каждый EliteEvery-й враг начиная с EliteFromWave — элитный.
func EnemyStats(def defs.WaveDefinition, waveIndex, ordinal int) SpawnStats {
	scale := math.Pow(config.WaveScaling, float64(waveIndex))
	hp := float64(def.HP) * scale
	reward := float64(def.Reward) * scale
	stats := SpawnStats{
		Speed:  def.Speed,
		Radius: config.EnemyRadius,
	}
	if waveIndex >= config.EliteFromWave && ordinal%config.EliteEvery == 0 {
		stats.Elite = true
		hp *= config.EliteHPMult
		reward *= config.EliteRewardMult
		stats.Speed *= config.EliteSpeedMult
		stats.Radius = config.EliteEnemyRadius
	}
	stats.HP = int(math.Round(hp))
	stats.Reward = int(math.Round(reward))
	return stats
}

type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave ставит новое расписание и сразу выпускает первого врага.
func (s *WaveSystem) StartWave(index int, def defs.WaveDefinition) *component.Wave {
	wave := &component.Wave{
		Index:    index,
		Def:      def,
		Interval: config.SpawnInterval,
	}
	s.world.Wave = wave
	s.eventDispatcher.Publish(event.WaveStarted, event.WaveData{Index: index, Label: def.Label, Count: def.Count})
	s.eventDispatcher.Publish(event.LogMessage, event.LogData{Text: fmt.Sprintf("Wave started: %s", def.Label)})
	s.spawnDue(wave)
	return wave
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.world.Wave
	if wave == nil || wave.Finished() {
		return
	}
	wave.Elapsed += deltaTime
	s.spawnDue(wave)
}

// spawnDue выпускает всех врагов, чьё время по расписанию уже наступило.
func (s *WaveSystem) spawnDue(wave *component.Wave) {
	for !wave.Finished() && wave.Elapsed >= wave.NextSpawnAt {
		s.spawnEnemy(wave)
		wave.Spawned++
		wave.NextSpawnAt += wave.Interval
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	stats := EnemyStats(wave.Def, wave.Index, wave.Spawned+1)
	col := config.EnemyColor
	if stats.Elite {
		col = config.EliteEnemyColor
	}
	enemy := s.world.AddEnemy(&component.Enemy{
		Position: s.world.Path.Start(),
		HP:       stats.HP,
		MaxHP:    stats.HP,
		Speed:    stats.Speed,
		Reward:   stats.Reward,
		Elite:    stats.Elite,
		Radius:   stats.Radius,
		Color:    col,
	})
	s.eventDispatcher.Publish(event.EnemySpawned, event.EnemyData{ID: enemy.ID, Elite: enemy.Elite, Reward: enemy.Reward})
}
