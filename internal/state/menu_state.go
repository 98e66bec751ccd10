// internal/state/menu_state.go
package state

import (
	"image"

	"go-action-rpg/internal/config"
	"go-action-rpg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm          *StateMachine
	seed        int64
	startButton *ui.MenuButton
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{
		sm:          sm,
		seed:        seed,
		startButton: ui.NewMenuButton(centeredButtonRect(config.ScreenHeight/2+60), "Start", basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	clicked := m.startButton.IsClicked(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	// Пробел не запускает игру: он же атака, и удержанная клавиша сработала бы в первом кадре
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, config.WindowTitle, config.ScreenHeight/2-20)
	drawCentered(screen, "Arrows/WASD - move, Space - attack, P - pause", config.ScreenHeight/2+10)
	drawCentered(screen, "Press Enter to start", config.ScreenHeight/2+40)
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

func drawCentered(screen *ebiten.Image, msg string, y int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}

// centeredButtonRect возвращает прямоугольник кнопки, центрированной по горизонтали.
func centeredButtonRect(y int) image.Rectangle {
	const w, h = 160, 36
	x := (config.ScreenWidth - w) / 2
	return image.Rect(x, y, x+w, y+h)
}
