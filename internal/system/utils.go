// internal/system/utils.go
package system

import (
	"strconv"

	"go-rail-defense/internal/component"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/entity"
)

// ApplyDamage наносит урон врагу. HP не опускается ниже нуля.
// Возвращает фактически снятое здоровье.
func ApplyDamage(enemy *component.Enemy, damage int) int {
	if damage <= 0 || enemy.HP <= 0 {
		return 0
	}
	applied := damage
	if applied > enemy.HP {
		applied = enemy.HP
	}
	enemy.HP -= damage
	if enemy.HP < 0 {
		enemy.HP = 0
	}
	return applied
}

// ApplySlow обновляет таймер и силу замедления.
func ApplySlow(enemy *component.Enemy, factor, duration float64) {
	enemy.Slow.Timer = duration
	enemy.Slow.SlowFactor = factor
}

// SpawnDamageText добавляет всплывающее число урона над врагом.
func SpawnDamageText(world *entity.World, enemy *component.Enemy, damage int) {
	world.AddText(&component.FloatingText{
		Position: component.Position{X: enemy.Position.X, Y: enemy.Position.Y - enemy.Radius},
		Text:     strconv.Itoa(damage),
		Life:     config.FloatingTextLife,
		Duration: config.FloatingTextLife,
		Rise:     config.FloatingTextSpeed,
		Color:    config.DamageTextColor,
	})
}
