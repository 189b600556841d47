// internal/defs/waves.go
package defs

// WaveDefinition описывает параметры одной волны врагов.
type WaveDefinition struct {
	Label  string  `yaml:"label"`
	Count  int     `yaml:"count"`  // Количество врагов в волне
	HP     int     `yaml:"hp"`     // Базовое здоровье до масштабирования
	Speed  float64 `yaml:"speed"`  // pixels per second
	Reward int     `yaml:"reward"` // Кредиты за убийство
}
