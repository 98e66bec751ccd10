package state

import (
	"fmt"

	"go-action-rpg/internal/config"
	"go-action-rpg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог и перезапускает игру по R.
type GameOverState struct {
	stateMachine  *StateMachine
	last          *GameState
	restartButton *ui.MenuButton
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{
		stateMachine:  sm,
		last:          last,
		restartButton: ui.NewMenuButton(centeredButtonRect(config.ScreenHeight/2+50), "Restart", basicfont.Face7x13),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	clicked := s.restartButton.IsClicked(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.stateMachine.SetState(NewGameState(s.stateMachine, s.last.seed))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.last.GetGame()
	stats := g.PlayerStats()
	drawCentered(screen, "GAME OVER", config.ScreenHeight/2-20)
	drawCentered(screen, fmt.Sprintf("Wave %d, level %d, %d kills", g.Wave, stats.Level, g.Kills), config.ScreenHeight/2+5)
	drawCentered(screen, "Press R to restart", config.ScreenHeight/2+30)
	s.restartButton.Draw(screen)
}

func (s *GameOverState) Exit() {}
