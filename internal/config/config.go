// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1120
	ScreenHeight = 680

	// Игровое поле и его смещение на экране
	FieldWidth   = 800
	FieldHeight  = 600
	FieldOffsetX = 0
	FieldOffsetY = 40
	SidePanelX   = FieldOffsetX + FieldWidth

	GridSize              = 40.0
	PathClearanceFactor   = 0.8 // Нельзя строить ближе 0.8*GridSize к пути
	TowerRadius           = 14.0
	PathWidth             = 26.0 // ширина дорожки на экране
	EnemyRadius           = 12.0
	EliteEnemyRadius      = 16.0
	ProjectileRadius      = 4.0
	MaxDeltaTime          = 0.05
	ClickCooldown         = 150 // ms
	StartingMoney         = 250
	StartingHealth        = 20
	LowHealthThreshold    = 5
	MaxTowerLevel         = 2
	UpgradeCostMultiplier = 2.0

	SpawnInterval   = 0.85 // секунды между врагами одной волны
	WaveScaling     = 1.08 // hp и награда умножаются на WaveScaling^wave
	EliteEvery      = 3
	EliteFromWave   = 1
	EliteHPMult     = 1.6
	EliteRewardMult = 1.8
	EliteSpeedMult  = 0.9

	ProjectileLife  = 1.8
	MultiShotSpread = 0.12 // радианы между соседними снарядами

	FloatingTextLife  = 0.8
	FloatingTextSpeed = 30.0 // pixels per second upward

	HealthBarWidth  = 32
	HealthBarHeight = 6
	HealthBarLow    = 0.35

	JournalCapacity = 50
	LogPanelLines   = 12

	SpeedButtonSize = 14.0
	PauseButtonSize = 12.0
	TextCharWidth   = 7
	FontSize        = 14
	TitleFontSize   = 18
)

// SpeedMultipliers — дискретные множители скорости симуляции.
var SpeedMultipliers = []float64{1.0, 1.5, 2.0}

// Цвета с альфой < 255 заданы в premultiplied-форме, как ждёт color.RGBA.
var (
	BackgroundColor   = color.RGBA{15, 19, 36, 255}
	PanelColor        = color.RGBA{24, 30, 54, 255}
	GridLineColor     = color.RGBA{13, 13, 13, 13}
	PathColor         = color.RGBA{38, 38, 38, 38}
	EntryColor        = color.RGBA{74, 217, 145, 255}
	ExitColor         = color.RGBA{220, 60, 60, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDimColor      = color.RGBA{150, 160, 190, 255}
	HealthLowColor    = color.RGBA{255, 123, 123, 255}
	HealthOKColor     = color.RGBA{74, 217, 145, 255}
	HealthBackColor   = color.RGBA{15, 19, 36, 255}
	EnemyColor        = color.RGBA{255, 179, 71, 255}
	EliteEnemyColor   = color.RGBA{255, 90, 120, 255}
	DamageTextColor   = color.RGBA{255, 240, 200, 255}
	ValidHoverColor   = color.RGBA{26, 76, 51, 90}
	InvalidHoverColor = color.RGBA{90, 32, 32, 90}
	SelectionColor    = color.RGBA{200, 200, 200, 200}
	ButtonColor       = color.RGBA{50, 64, 110, 255}
	ButtonHoverColor  = color.RGBA{70, 90, 150, 255}
	ActiveCardColor   = color.RGBA{60, 90, 160, 255}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	IdleStateColor    = color.RGBA{70, 130, 180, 220}
	VictoryColor      = color.RGBA{74, 217, 145, 255}
	DefeatColor       = color.RGBA{220, 60, 60, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 160, 60, 220}, // x1.5
		{220, 60, 60, 220},  // x2
	}
	PauseColor = color.RGBA{70, 130, 180, 220}
	PlayColor  = color.RGBA{74, 217, 145, 220}
)
