// internal/system/player_system.go
package system

import (
	"math"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/types"
)

// PlayerSystem отвечает за логику игрока: движение, атаку, урон, неуязвимость и опыт.
type PlayerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update продвигает таймеры и обрабатывает ввод всех игроков.
func (s *PlayerSystem) Update(deltaTime float64) {
	for id, player := range s.ecs.PlayerState {
		s.updateTimers(id, player, deltaTime)

		input, ok := s.ecs.Inputs[id]
		if !ok {
			continue
		}
		s.handleMovement(id, player, input)
		s.handleAttack(id, player, input)
		s.updateWeaponPosition(id)
	}
}

func (s *PlayerSystem) updateTimers(id types.EntityID, player *component.PlayerStateComponent, deltaTime float64) {
	if player.IsAttacking {
		player.AttackTimer -= deltaTime
		if player.AttackTimer <= 0 {
			player.AttackTimer = 0
			player.IsAttacking = false
			if weapon, ok := s.ecs.Weapons[id]; ok {
				weapon.Visible = false
			}
		}
	}

	if player.IsInvulnerable {
		player.InvulnerableTimer -= deltaTime
		if player.InvulnerableTimer <= 0 {
			player.InvulnerableTimer = 0
			player.IsInvulnerable = false
		}
	}
}

func (s *PlayerSystem) handleMovement(id types.EntityID, player *component.PlayerStateComponent, input *component.Input) {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}
	vel.X, vel.Y = 0, 0

	if player.IsAttacking {
		return
	}

	facing := s.facing(id)
	horizontal := input.Left || input.Right

	if input.Left {
		vel.X = -player.Speed
		*facing = component.DirLeft
		PlayAnimation(s.ecs, id, "player-left")
	} else if input.Right {
		vel.X = player.Speed
		*facing = component.DirRight
		PlayAnimation(s.ecs, id, "player-right")
	}

	if input.Up {
		vel.Y = -player.Speed
		if !horizontal {
			*facing = component.DirUp
			PlayAnimation(s.ecs, id, "player-up")
		}
	} else if input.Down {
		vel.Y = player.Speed
		if !horizontal {
			*facing = component.DirDown
			PlayAnimation(s.ecs, id, "player-down")
		}
	}

	// Нормализуем диагональ
	if length := math.Hypot(vel.X, vel.Y); length > 0 {
		vel.X = vel.X / length * player.Speed
		vel.Y = vel.Y / length * player.Speed
	}

	if vel.X == 0 && vel.Y == 0 {
		PlayAnimation(s.ecs, id, "player-idle-"+facing.String())
	}
}

func (s *PlayerSystem) handleAttack(id types.EntityID, player *component.PlayerStateComponent, input *component.Input) {
	now := s.ecs.GameTime
	if !input.Attack || now <= player.LastAttackTime+player.AttackCooldown || player.IsAttacking {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}

	player.IsAttacking = true
	player.LastAttackTime = now
	player.AttackTimer = player.AttackDuration

	if weapon, ok := s.ecs.Weapons[id]; ok {
		weapon.Visible = true
	}

	facing := s.facing(id)
	PlayAnimation(s.ecs, id, "player-attack-"+facing.String())

	dx, dy := facing.Delta()
	effectX := pos.X + dx*config.AttackEffectOffset
	effectY := pos.Y + dy*config.AttackEffectOffset
	SpawnEffect(s.ecs, config.EffectRadius, EffectParams{
		X:        effectX,
		Y:        effectY,
		Color:    config.AttackEffectColor,
		Alpha:    config.AttackEffectAlpha,
		Scale:    config.AttackEffectScale,
		Duration: config.AttackEffectDuration,
		Depth:    config.DepthEffect,
	})

	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerAttack,
		Data: event.PlayerAttackData{PlayerID: id, X: effectX, Y: effectY, Damage: player.AttackDamage},
	})
}

// updateWeaponPosition ставит оружие рядом с игроком по направлению взгляда.
func (s *PlayerSystem) updateWeaponPosition(id types.EntityID) {
	weapon, ok := s.ecs.Weapons[id]
	if !ok {
		return
	}
	facing := s.facing(id)
	dx, dy := facing.Delta()
	weapon.OffsetX = dx * config.WeaponOffset
	weapon.OffsetY = dy * config.WeaponOffset
	weapon.Angle = facing.Angle()
}

func (s *PlayerSystem) facing(id types.EntityID) *component.Direction {
	facing, ok := s.ecs.Facings[id]
	if !ok {
		facing = new(component.Direction)
		s.ecs.Facings[id] = facing
	}
	return facing
}

// TakeDamage наносит урон игроку. Во время неуязвимости урон игнорируется.
func (s *PlayerSystem) TakeDamage(id types.EntityID, amount int) {
	player, ok := s.ecs.PlayerState[id]
	if !ok || player.IsInvulnerable {
		return
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}

	health.Value -= clampDamage(amount)
	if health.Value < 0 {
		health.Value = 0
	}

	if pos, ok := s.ecs.Positions[id]; ok {
		SpawnEffect(s.ecs, config.EffectRadius, EffectParams{
			X:        pos.X,
			Y:        pos.Y,
			Color:    config.HitEffectColor,
			Alpha:    config.HitEffectAlpha,
			Scale:    config.HitEffectScale,
			Duration: config.HitEffectDuration,
			Depth:    config.DepthEffect,
		})
	}
	StartFlash(s.ecs, id, config.FlashHalfPeriod, config.PlayerFlashRepeat, config.FlashAlpha)
	s.SetInvulnerable(id, true)

	s.dispatchStats(event.HealthChanged, id)
}

// SetInvulnerable включает окно неуязвимости. Повторный вызов заменяет таймер, а не продлевает его.
func (s *PlayerSystem) SetInvulnerable(id types.EntityID, invulnerable bool) {
	player, ok := s.ecs.PlayerState[id]
	if !ok {
		return
	}
	player.IsInvulnerable = invulnerable
	if invulnerable {
		player.InvulnerableTimer = player.InvulnerabilityTime
	} else {
		player.InvulnerableTimer = 0
	}
}

// Heal восстанавливает здоровье, не превышая максимум.
func (s *PlayerSystem) Heal(id types.EntityID, amount int) {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}
	if _, isPlayer := s.ecs.PlayerState[id]; !isPlayer {
		return
	}
	// Сравниваем с недостающим здоровьем, чтобы сложение не переполнило int
	if gain := clampDamage(amount); gain >= health.Max-health.Value {
		health.Value = health.Max
	} else {
		health.Value += gain
	}
	s.dispatchStats(event.HealthChanged, id)
}

// GainExperience начисляет опыт и при достижении порога повышает уровень.
func (s *PlayerSystem) GainExperience(id types.EntityID, amount int) {
	player, ok := s.ecs.PlayerState[id]
	if !ok {
		return
	}
	if gain := clampDamage(amount); gain > math.MaxInt-player.CurrentXP {
		player.CurrentXP = math.MaxInt
	} else {
		player.CurrentXP += gain
	}

	if player.CurrentXP >= player.XPToNextLevel {
		s.levelUp(id, player)
	}

	s.dispatchStats(event.ExperienceChanged, id)
}

func (s *PlayerSystem) levelUp(id types.EntityID, player *component.PlayerStateComponent) {
	player.Level++
	player.CurrentXP -= player.XPToNextLevel

	if health, ok := s.ecs.Healths[id]; ok {
		health.Max += config.LevelUpHealthBonus
		health.Value = health.Max
	}
	player.AttackDamage += config.LevelUpDamageBonus
	player.Speed += config.LevelUpSpeedBonus

	player.XPToNextLevel = NextLevelThreshold(player.XPToNextLevel)

	if pos, ok := s.ecs.Positions[id]; ok {
		tint := config.LevelUpTint
		SpawnEffect(s.ecs, config.EffectRadius, EffectParams{
			X:        pos.X,
			Y:        pos.Y,
			Color:    config.AttackEffectColor,
			Tint:     &tint,
			Alpha:    config.AttackEffectAlpha,
			Scale:    config.LevelUpEffectScale,
			Duration: config.LevelUpEffectDuration,
			Depth:    config.DepthEffect,
		})
	}

	s.dispatchStats(event.LevelChanged, id)
	s.dispatchStats(event.HealthChanged, id)
}

// NextLevelThreshold возвращает порог опыта следующего уровня.
func NextLevelThreshold(current int) int {
	return int(math.Floor(float64(current) * config.XPGrowthFactor))
}

// Stats возвращает снимок статов игрока.
func (s *PlayerSystem) Stats(id types.EntityID) (event.PlayerStatData, bool) {
	player, ok := s.ecs.PlayerState[id]
	if !ok {
		return event.PlayerStatData{}, false
	}
	data := event.PlayerStatData{
		PlayerID:      id,
		Level:         player.Level,
		CurrentXP:     player.CurrentXP,
		XPToNextLevel: player.XPToNextLevel,
	}
	if health, ok := s.ecs.Healths[id]; ok {
		data.Health = health.Value
		data.MaxHealth = health.Max
	}
	return data, true
}

func (s *PlayerSystem) dispatchStats(eventType event.EventType, id types.EntityID) {
	data, ok := s.Stats(id)
	if !ok {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: eventType, Data: data})
}
