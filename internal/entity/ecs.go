// internal/entity/ecs.go
package entity

import (
	"go-action-rpg/internal/component"
	"go-action-rpg/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	PlayerID      types.EntityID // Активный игрок, 0 если игрок не зарегистрирован
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Bodies        map[types.EntityID]*component.Body
	Healths       map[types.EntityID]*component.Health
	Facings       map[types.EntityID]*component.Direction
	Inputs        map[types.EntityID]*component.Input
	PlayerState   map[types.EntityID]*component.PlayerStateComponent
	Weapons       map[types.EntityID]*component.Weapon
	Enemies       map[types.EntityID]*component.Enemy
	HealthBars    map[types.EntityID]*component.HealthBar
	Renderables   map[types.EntityID]*component.Renderable
	Animations    map[types.EntityID]*component.Animation
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Effects       map[types.EntityID]*component.Effect
	Wave          *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Bodies:        make(map[types.EntityID]*component.Body),
		Healths:       make(map[types.EntityID]*component.Health),
		Facings:       make(map[types.EntityID]*component.Direction),
		Inputs:        make(map[types.EntityID]*component.Input),
		PlayerState:   make(map[types.EntityID]*component.PlayerStateComponent),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		HealthBars:    make(map[types.EntityID]*component.HealthBar),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Animations:    make(map[types.EntityID]*component.Animation),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Effects:       make(map[types.EntityID]*component.Effect),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists сообщает, жива ли сущность (есть ли у неё позиция).
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// RemoveEntity удаляет сущность вместе со всеми компонентами, включая полоску здоровья.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Healths, id)
	delete(ecs.Facings, id)
	delete(ecs.Inputs, id)
	delete(ecs.PlayerState, id)
	delete(ecs.Weapons, id)
	delete(ecs.Enemies, id)
	delete(ecs.HealthBars, id)
	delete(ecs.Renderables, id)
	delete(ecs.Animations, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Effects, id)
	if ecs.PlayerID == id {
		ecs.PlayerID = 0
	}
}

// Player возвращает позицию зарегистрированного игрока.
func (ecs *ECS) Player() (types.EntityID, *component.Position, bool) {
	if ecs.PlayerID == 0 {
		return 0, nil, false
	}
	pos, ok := ecs.Positions[ecs.PlayerID]
	if !ok {
		return 0, nil, false
	}
	return ecs.PlayerID, pos, true
}
