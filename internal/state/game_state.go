// internal/state/game_state.go
package state

import (
	"fmt"
	"math"

	game "go-action-rpg/internal/app"
	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/types"
	"go-action-rpg/internal/ui"
	"go-action-rpg/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

const selectRadius = 20.0

// GameState — состояние игры
type GameState struct {
	sm              *StateMachine
	game            *game.Game
	seed            int64
	renderer        *render.EntityRenderer
	healthIndicator *ui.PlayerHealthIndicator
	levelIndicator  *ui.PlayerLevelIndicator
	levelBanner     *ui.LevelBanner
	infoPanel       *ui.InfoPanel
	waveIndicator   *ui.WaveIndicator
	pauseButton     *ui.PauseButton
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic := game.NewGame(seed)
	face := basicfont.Face7x13

	banner := ui.NewLevelBanner(face)
	gameLogic.EventDispatcher.Subscribe(event.LevelChanged, banner)

	healthIndicator := ui.NewPlayerHealthIndicator(10, 20, face)
	levelY := healthIndicator.Y + healthIndicator.GetHeight() + 8

	return &GameState{
		sm:              sm,
		game:            gameLogic,
		seed:            seed,
		renderer:        render.NewEntityRenderer(gameLogic.ECS),
		healthIndicator: healthIndicator,
		levelIndicator:  ui.NewPlayerLevelIndicator(10, levelY, face),
		levelBanner:     banner,
		infoPanel:       ui.NewInfoPanel(face),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 24, face),
		pauseButton:     ui.NewPauseButton(config.ScreenWidth-30, 30, 10, config.TextLightColor, config.TextLightColor),
	}
}

// GetGame возвращает игровую логику.
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
		if id, found := g.findEnemyAt(x, y); found {
			g.infoPanel.SetTarget(id)
		} else {
			g.infoPanel.Hide()
		}
	}

	g.game.SetInput(ReadInput())
	g.game.Update(deltaTime)
	g.levelBanner.Update(deltaTime)
	g.infoPanel.Update(g.game.ECS)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// ReadInput опрашивает клавиатуру: стрелки или WASD, пробел для атаки.
func ReadInput() component.Input {
	return component.Input{
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Attack: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// findEnemyAt находит врага под курсором.
func (g *GameState) findEnemyAt(x, y int) (types.EntityID, bool) {
	for id := range g.game.ECS.Enemies {
		pos, ok := g.game.ECS.Positions[id]
		if !ok {
			continue
		}
		if math.Hypot(pos.X-float64(x), pos.Y-float64(y)) < selectRadius {
			return id, true
		}
	}
	return 0, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	stats := g.game.PlayerStats()
	g.healthIndicator.Draw(screen, stats.Health, stats.MaxHealth)
	g.levelIndicator.Draw(screen, stats.Level, stats.CurrentXP, stats.XPToNextLevel)
	g.levelBanner.Draw(screen)
	g.infoPanel.Draw(screen, g.game.ECS)
	g.waveIndicator.Draw(screen, g.game.Wave)
	g.pauseButton.Draw(screen)

	// Debug text
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Wave: %d  Kills: %d  FPS: %0.0f", g.game.Wave, g.game.Kills, ebiten.ActualFPS()))
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
