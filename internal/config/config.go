// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	PixelsPerUnit = 40.0 // масштаб: пикселей на мировую единицу
	MaxDeltaTime  = 0.06
	HUDFlashTime  = 0.25 // длительность подпрыгивания счётчика и мигания полосы здоровья

	// Параметры по умолчанию для башен
	DefaultFireRange             = 10.0
	DefaultFireCooldown          = 1.0
	DefaultRotationSpeed         = 5.0 // радиан в секунду
	DefaultFireAngleThreshold    = 45.0
	DefaultShotgunAngle          = 30.0
	DefaultShotgunPellets        = 5
	DefaultShotgunSpread         = 30.0
	DefaultSniperSightsTolerance = 2.0
	DefaultMachineGunSpread      = 5.0
	DefaultMuzzleOffset          = 0.5

	// Снаряды
	DefaultProjectileSpeed = 12.0
	DefaultKillDistance    = 0.5
	DefaultLifeSpan        = 3.0

	// Волны
	DefaultTotalWaves       = 10
	DefaultTimeBetweenWaves = 5.0
	DefaultSpawnInterval    = 1.0
	DefaultPathDuration     = 5.0
	EnemiesPerWave          = 5
	DamagePerEnemy          = 1

	// Сессия
	DefaultMaxHP               = 20
	DefaultGhostHPEasingSpeed  = 2.0
	DefaultCoinLerpSpeed       = 5.0
	DefaultGoalReachedDistance = 1.0
	CoinDisplayRateFactor      = 10.0 // отображаемые монеты растут со скоростью CoinLerpSpeed*10 в секунду

	// Монеты
	DefaultCoinFlySpeed    = 5.0
	DefaultCoinValue       = 10
	CoinArrivalEpsilon     = 0.1
	CoinAnchorOffsetX      = 60
	CoinAnchorOffsetY      = 60
	DefaultPlayerMoveSpeed = 5.0

	// Индикатор дальности
	RangeConeSegments = 20
	PathSamples       = 64

	// Интерфейс
	HealthBarX      = 20
	HealthBarY      = 20
	HealthBarWidth  = 240
	HealthBarHeight = 16
	TextLineHeight  = 18

	EnemyRadius      = 0.35
	TurretRadius     = 0.5
	ProjectileRadius = 0.12
	CoinRadius       = 0.2
	PlayerRadius     = 0.4
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	ControlColor     = color.RGBA{120, 120, 140, 160}
	GoalColor        = color.RGBA{0, 255, 0, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	PlayerColor      = color.RGBA{70, 130, 180, 255}
	ProjectileColor  = color.RGBA{255, 255, 200, 255}
	CoinColor        = color.RGBA{255, 215, 0, 255}
	RangeColor       = color.RGBA{0, 255, 255, 160}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthColor      = color.RGBA{50, 205, 50, 255}
	GhostHealthColor = color.RGBA{255, 255, 255, 180}
	HealthBackColor  = color.RGBA{60, 60, 60, 220}
	PanelColor       = color.RGBA{0, 0, 0, 170}
	WinColor         = color.RGBA{50, 205, 50, 255}
	FailColor        = color.RGBA{220, 60, 60, 255}
	TurretColors     = map[string]color.RGBA{
		"MachineGun": {255, 50, 50, 255},
		"Sniper":     {50, 100, 255, 255},
		"Shotgun":    {180, 50, 230, 255},
	}
)
