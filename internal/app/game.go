// internal/app/game.go
package app

import (
	"log"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/system"
	"go-action-rpg/internal/types"
	"go-action-rpg/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	Wave               int
	ECS                *entity.ECS
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	AnimationSystem    *system.AnimationSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	PlayerID           types.EntityID // ID сущности игрока
	Kills              int
	attackReleased     bool
}

// NewGame initializes a new game instance. Seed 0 means a time-based seed.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Wave:               1,
		ECS:                ecs,
		PlayerSystem:       system.NewPlayerSystem(ecs, eventDispatcher),
		EnemySystem:        system.NewEnemySystem(ecs, eventDispatcher),
		WaveSystem:         system.NewWaveSystem(ecs, eventDispatcher, rng),
		MovementSystem:     system.NewMovementSystem(ecs, config.ScreenWidth, config.ScreenHeight),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		AnimationSystem:    system.NewAnimationSystem(ecs),
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PlayerAttack, listener)
	eventDispatcher.Subscribe(event.EnemyAttack, listener)
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.WaveEnded, listener)

	g.createPlayerEntity()
	g.WaveSystem.StartWave(g.Wave)

	return g
}

func (g *Game) createPlayerEntity() {
	g.PlayerID = system.SpawnPlayer(g.ECS, config.ScreenWidth/2, config.ScreenHeight/2, defs.PlayerDef)
}

// SetInput передаёт ввод текущего кадра игроку.
// Атака, зажатая до начала игры, не срабатывает, пока клавишу не отпустят.
func (g *Game) SetInput(input component.Input) {
	if !input.Attack {
		g.attackReleased = true
	}
	if !g.attackReleased {
		input.Attack = false
	}
	if in, ok := g.ECS.Inputs[g.PlayerID]; ok {
		*in = input
	}
}

// Update продвигает мир на один кадр.
func (g *Game) Update(deltaTime float64) {
	if g.IsGameOver() {
		return
	}
	g.ECS.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.AnimationSystem.Update(deltaTime)
}

// IsGameOver сообщает, погиб ли игрок.
func (g *Game) IsGameOver() bool {
	health, ok := g.ECS.Healths[g.PlayerID]
	return !ok || health.Value <= 0
}

// PlayerStats возвращает снимок статов игрока для HUD.
func (g *Game) PlayerStats() event.PlayerStatData {
	stats, _ := g.PlayerSystem.Stats(g.PlayerID)
	return stats
}

// GetGameTime возвращает игровое время в секундах.
func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

// GameEventListener связывает игрока и врагов: удары, урон, опыт и волны.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerAttack:
		if data, ok := e.Data.(event.PlayerAttackData); ok {
			l.game.resolvePlayerAttack(data)
		}
	case event.EnemyAttack:
		if data, ok := e.Data.(event.EnemyAttackData); ok {
			l.game.PlayerSystem.TakeDamage(l.game.PlayerID, data.Damage)
		}
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			l.game.Kills++
			l.game.ECS.RemoveEntity(data.EnemyID)
			l.game.PlayerSystem.GainExperience(l.game.PlayerID, config.XPPerKill)
		}
	case event.WaveEnded:
		l.game.Wave++
		l.game.WaveSystem.StartWave(l.game.Wave)
	}
}

// resolvePlayerAttack наносит урон всем врагам в радиусе удара.
func (g *Game) resolvePlayerAttack(data event.PlayerAttackData) {
	var hits []types.EntityID
	for id := range g.ECS.Enemies {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if system.Distance(data.X, data.Y, pos.X, pos.Y) <= config.PlayerAttackReach {
			hits = append(hits, id)
		}
	}
	for _, id := range hits {
		g.EnemySystem.TakeDamage(id, data.Damage)
	}
	if len(hits) > 0 {
		log.Printf("Player hit %d enemies for %d damage", len(hits), data.Damage)
	}
}
