package system

import (
	"math"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/types"
)

// EnemySystem управляет поведением врагов: преследование, атака, урон и отбрасывание.
type EnemySystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *EnemySystem) Update(deltaTime float64) {
	_, playerPos, hasPlayer := s.ecs.Player()

	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		// Пока действует отбрасывание, враг не управляет своей скоростью
		if enemy.KnockbackTimer > 0 {
			enemy.KnockbackTimer -= deltaTime
			if enemy.KnockbackTimer <= 0 {
				enemy.KnockbackTimer = 0
				vel.X, vel.Y = 0, 0
			}
		} else if hasPlayer {
			s.followPlayer(id, enemy, pos, vel, playerPos)
		} else {
			vel.X, vel.Y = 0, 0
		}

		updateHealthBar(s.ecs, id)
	}
}

func (s *EnemySystem) followPlayer(id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, player *component.Position) {
	distance := Distance(pos.X, pos.Y, player.X, player.Y)

	if distance >= enemy.AggroRange {
		vel.X, vel.Y = 0, 0
		return
	}

	if distance > enemy.AttackRange {
		angle := Angle(pos.X, pos.Y, player.X, player.Y)
		vel.X = math.Cos(angle) * enemy.Speed
		vel.Y = math.Sin(angle) * enemy.Speed
		return
	}

	vel.X, vel.Y = 0, 0
	now := s.ecs.GameTime
	if now > enemy.LastAttackTime+enemy.AttackCooldown {
		s.attack(id, enemy, pos)
		enemy.LastAttackTime = now
	}
}

func (s *EnemySystem) attack(id types.EntityID, enemy *component.Enemy, pos *component.Position) {
	SpawnEffect(s.ecs, config.EffectRadius, EffectParams{
		X:        pos.X,
		Y:        pos.Y,
		Color:    config.HitEffectColor,
		Alpha:    config.EnemyAttackEffectAlpha,
		Scale:    config.EnemyAttackEffectScale,
		Duration: config.EnemyAttackEffectDuration,
		Depth:    config.DepthEnemyAttackEffect,
	})

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyAttack,
		Data: event.EnemyAttackData{EnemyID: id, Damage: enemy.AttackDamage},
	})
}

// TakeDamage наносит урон врагу и отбрасывает его от игрока.
// Если игрок не зарегистрирован, отбрасывание пропускается.
func (s *EnemySystem) TakeDamage(id types.EntityID, amount int) {
	enemy, isEnemy := s.ecs.Enemies[id]
	health, hasHealth := s.ecs.Healths[id]
	pos, hasPos := s.ecs.Positions[id]
	if !isEnemy || !hasHealth || !hasPos {
		return
	}

	wasAlive := health.Value > 0
	health.Value -= clampDamage(amount)
	if health.Value < 0 {
		health.Value = 0
	}

	SpawnEffect(s.ecs, config.EffectRadius, EffectParams{
		X:        pos.X,
		Y:        pos.Y,
		Color:    config.HitEffectColor,
		Alpha:    config.HitEffectAlpha,
		Scale:    config.HitEffectScale,
		Duration: config.HitEffectDuration,
		Depth:    config.DepthEffect,
	})
	StartFlash(s.ecs, id, config.FlashHalfPeriod, config.EnemyFlashRepeat, config.FlashAlpha)
	updateHealthBar(s.ecs, id)

	if _, playerPos, ok := s.ecs.Player(); ok {
		if vel, hasVel := s.ecs.Velocities[id]; hasVel {
			angle := Angle(playerPos.X, playerPos.Y, pos.X, pos.Y)
			vel.X = math.Cos(angle) * config.KnockbackSpeed
			vel.Y = math.Sin(angle) * config.KnockbackSpeed
			enemy.KnockbackTimer = config.KnockbackDuration
		}
	}

	if wasAlive && health.Value == 0 {
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{EnemyID: id, X: pos.X, Y: pos.Y},
		})
	}
}

// updateHealthBar пересчитывает полоску здоровья. Она видна только у раненых врагов.
func updateHealthBar(ecs *entity.ECS, id types.EntityID) {
	bar, hasBar := ecs.HealthBars[id]
	health, hasHealth := ecs.Healths[id]
	pos, hasPos := ecs.Positions[id]
	if !hasBar || !hasHealth || !hasPos {
		return
	}

	bar.Visible = health.Damaged()
	bar.X = pos.X + config.HealthBarOffsetX
	bar.Y = pos.Y + config.HealthBarOffsetY
	bar.FillWidth = bar.Width * health.Ratio()
}
