// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/state"

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
	levelPath := flag.String("level", "", "path to a level JSON file (built-in level when empty)")
	seed := flag.Int64("seed", 0, "random seed for shot spread (0 = time based)")
	skipMenu := flag.Bool("play", false, "start the level immediately, without the title screen")
	flag.Parse()

	level := defs.DefaultLevel()
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
		level = loaded
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		gs, err := state.NewGameState(sm, level, *seed)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, level, *seed))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Curve Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
