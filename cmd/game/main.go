// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-action-rpg/internal/config"
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "path to a TOML file with entity definitions")
	seed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	skipMenu := flag.Bool("skip-menu", false, "start directly in the game")
	flag.Parse()

	if *defsPath != "" {
		if err := defs.LoadDefinitions(*defsPath); err != nil {
			log.Fatalf("Failed to load entity definitions: %v", err)
		}
	} else if err := defs.LoadDefaultDefinitions(); err != nil {
		log.Fatalf("Failed to load built-in entity definitions: %v", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
