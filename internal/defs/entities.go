// internal/defs/entities.go
package defs

import "go-action-rpg/internal/config"

// PlayerDefinition holds the starting stats of the player character.
type PlayerDefinition struct {
	Health              int     `toml:"health"`
	AttackDamage        int     `toml:"attack_damage"`
	Speed               float64 `toml:"speed"`
	AttackCooldown      float64 `toml:"attack_cooldown"`
	AttackDuration      float64 `toml:"attack_duration"`
	InvulnerabilityTime float64 `toml:"invulnerability_time"`
	XPToFirstLevel      int     `toml:"xp_to_first_level"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string  `toml:"id"`
	Name           string  `toml:"name"`
	Health         int     `toml:"health"`
	AttackDamage   int     `toml:"attack_damage"`
	Speed          float64 `toml:"speed"`
	AggroRange     float64 `toml:"aggro_range"`
	AttackRange    float64 `toml:"attack_range"`
	AttackCooldown float64 `toml:"attack_cooldown"`
}

// DefaultEnemyID ключ врага, которым заполняются волны, если библиотека не задаёт другого.
const DefaultEnemyID = "grunt"

// DefaultPlayerDefinition возвращает статы игрока из констант конфигурации.
func DefaultPlayerDefinition() PlayerDefinition {
	return PlayerDefinition{
		Health:              config.PlayerHealth,
		AttackDamage:        config.PlayerAttackDamage,
		Speed:               config.PlayerSpeed,
		AttackCooldown:      config.PlayerAttackCooldown,
		AttackDuration:      config.PlayerAttackDuration,
		InvulnerabilityTime: config.PlayerInvulnerabilityTime,
		XPToFirstLevel:      config.PlayerXPToFirstLevel,
	}
}

// DefaultEnemyDefinition возвращает статы обычного врага из констант конфигурации.
func DefaultEnemyDefinition() EnemyDefinition {
	return EnemyDefinition{
		ID:             DefaultEnemyID,
		Name:           "Grunt",
		Health:         config.EnemyHealth,
		AttackDamage:   config.EnemyAttackDamage,
		Speed:          config.EnemySpeed,
		AggroRange:     config.EnemyAggroRange,
		AttackRange:    config.EnemyAttackRange,
		AttackCooldown: config.EnemyAttackCooldown,
	}
}
