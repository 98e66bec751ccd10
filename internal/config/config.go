// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	WindowTitle  = "Go Action RPG"

	// Физическое тело персонажей (игрок и враги одинаковы)
	BodyWidth  = 20.0
	BodyHeight = 30.0
)

// Игрок
const (
	PlayerHealth              = 100
	PlayerAttackDamage        = 100
	PlayerSpeed               = 150.0
	PlayerAttackCooldown      = 0.5 // секунды
	PlayerAttackDuration      = 0.3
	PlayerInvulnerabilityTime = 1.0
	PlayerXPToFirstLevel      = 100
	PlayerAttackReach         = 30.0 // радиус удара вокруг точки эффекта атаки

	LevelUpHealthBonus = 20
	LevelUpDamageBonus = 5
	LevelUpSpeedBonus  = 10.0
	XPGrowthFactor     = 1.5
	XPPerKill          = 25

	AttackEffectOffset = 20.0
	WeaponOffset       = 5.0
)

// Враги
const (
	EnemyHealth         = 50
	EnemyAttackDamage   = 10
	EnemySpeed          = 80.0
	EnemyAggroRange     = 200.0
	EnemyAttackRange    = 20.0
	EnemyAttackCooldown = 1.0

	KnockbackSpeed    = 150.0
	KnockbackDuration = 0.1

	HealthBarWidth   = 30.0
	HealthBarHeight  = 5.0
	HealthBarOffsetX = -15.0
	HealthBarOffsetY = -25.0

	WaveSpawnInterval       = 0.5
	EnemiesPerWave          = 3
	EnemiesIncrementPerWave = 1
	EnemySpawnMinDistance   = 150.0
	EnemySpawnMaxDistance   = 320.0
)

// Визуальные эффекты
const (
	AttackEffectAlpha    = 0.7
	AttackEffectScale    = 1.5
	AttackEffectDuration = 0.3

	HitEffectAlpha    = 0.7
	HitEffectScale    = 1.5
	HitEffectDuration = 0.3

	EnemyAttackEffectAlpha    = 0.5
	EnemyAttackEffectScale    = 1.2
	EnemyAttackEffectDuration = 0.2

	LevelUpEffectScale    = 2.0
	LevelUpEffectDuration = 0.5

	FlashAlpha        = 0.5
	FlashHalfPeriod   = 0.1
	PlayerFlashRepeat = 3
	EnemyFlashRepeat  = 1

	EffectRadius       = 12.0
	LevelUpBannerTime  = 1.5
	LevelUpBannerScale = 2
)

// Глубина отрисовки
const (
	DepthEnemyAttackEffect = 4
	DepthEnemy             = 5
	DepthHealthBar         = 6
	DepthEffect            = 9
	DepthPlayer            = 10
	DepthWeapon            = 11
)

var (
	BackgroundColor     = color.RGBA{28, 32, 36, 255}
	GridColor           = color.RGBA{40, 46, 52, 255}
	PlayerColor         = color.RGBA{70, 130, 180, 255}
	PlayerFaceColor     = color.RGBA{240, 240, 240, 255}
	EnemyColor          = color.RGBA{170, 60, 60, 255}
	WeaponColor         = color.RGBA{210, 210, 220, 255}
	AttackEffectColor   = color.RGBA{255, 255, 255, 255}
	HitEffectColor      = color.RGBA{255, 120, 60, 255}
	LevelUpTint         = color.RGBA{255, 255, 0, 255}
	HealthBarBackground = color.RGBA{0, 0, 0, 128}
	HealthBarFill       = color.RGBA{255, 0, 0, 255}
	HUDBarBackground    = color.RGBA{20, 20, 30, 200}
	HUDHealthColor      = color.RGBA{220, 60, 60, 230}
	HUDXPColor          = color.RGBA{70, 100, 120, 220}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	OverlayColor        = color.RGBA{0, 0, 0, 160}
	WaveTextColor       = color.RGBA{70, 130, 180, 255}
	WaveOutlineColor    = color.RGBA{240, 240, 240, 255}
	BossWaveColor       = color.RGBA{220, 40, 40, 255}
	ButtonColor         = color.RGBA{50, 60, 72, 255}
	ButtonHoverColor    = color.RGBA{70, 84, 100, 255}
	ButtonBorderColor   = color.RGBA{70, 130, 180, 255}
)
