package system

import (
	"math"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/types"
)

// SpawnPlayer создаёт игрока и регистрирует его в ECS как активного.
func SpawnPlayer(ecs *entity.ECS, x, y float64, def defs.PlayerDefinition) types.EntityID {
	id := ecs.NewEntity()
	facing := component.DirDown

	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{Width: config.BodyWidth, Height: config.BodyHeight}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Facings[id] = &facing
	ecs.Inputs[id] = &component.Input{}
	ecs.PlayerState[id] = &component.PlayerStateComponent{
		AttackDamage:        def.AttackDamage,
		Speed:               def.Speed,
		Level:               1,
		XPToNextLevel:       def.XPToFirstLevel,
		AttackDuration:      def.AttackDuration,
		AttackCooldown:      def.AttackCooldown,
		LastAttackTime:      math.Inf(-1),
		InvulnerabilityTime: def.InvulnerabilityTime,
	}
	ecs.Weapons[id] = &component.Weapon{}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Width:  config.BodyWidth,
		Height: config.BodyHeight,
		Depth:  config.DepthPlayer,
		Alpha:  1,
		Scale:  1,
	}
	ecs.Animations[id] = &component.Animation{Key: "player-idle-" + facing.String()}

	ecs.PlayerID = id
	return id
}

// SpawnEnemy создаёт врага со скрытой полоской здоровья.
func SpawnEnemy(ecs *entity.ECS, x, y float64, def defs.EnemyDefinition) types.EntityID {
	id := ecs.NewEntity()

	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{Width: config.BodyWidth, Height: config.BodyHeight}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Enemies[id] = &component.Enemy{
		DefID:          def.ID,
		AttackDamage:   def.AttackDamage,
		Speed:          def.Speed,
		AggroRange:     def.AggroRange,
		AttackRange:    def.AttackRange,
		AttackCooldown: def.AttackCooldown,
		LastAttackTime: math.Inf(-1),
	}
	ecs.HealthBars[id] = &component.HealthBar{
		Width:  config.HealthBarWidth,
		Height: config.HealthBarHeight,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyColor,
		Width:  config.BodyWidth,
		Height: config.BodyHeight,
		Depth:  config.DepthEnemy,
		Alpha:  1,
		Scale:  1,
	}
	updateHealthBar(ecs, id)
	return id
}
