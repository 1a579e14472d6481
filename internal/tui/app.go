// Package tui runs a level in a terminal through tcell.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	game "curve-defense/internal/app"
	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/event"
	"curve-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const frameTime = 33 * time.Millisecond

// App связывает терминал с игровой сессией.
type App struct {
	screen tcell.Screen
	level  defs.LevelDefinition
	seed   int64

	game   *game.Game
	hud    *TextHUD
	input  *KeyInput
	camera *utils.Camera
	view   *View
	paused bool
}

// NewApp создаёт приложение поверх уже инициализированного экрана.
func NewApp(screen tcell.Screen, level defs.LevelDefinition, seed int64) (*App, error) {
	a := &App{screen: screen, level: level, seed: seed}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) restart() error {
	w, h := a.screen.Size()
	a.camera = FitCamera(a.level, w, h)
	a.hud = NewTextHUD()
	a.input = &KeyInput{}

	g, err := game.NewGame(a.level, game.Options{
		HUD:       a.hud,
		Projector: a.camera,
		Input:     a.input,
		Random:    utils.NewPRNGService(a.seed),
	})
	if err != nil {
		return fmt.Errorf("start level %q: %w", a.level.Name, err)
	}
	g.EventDispatcher.Subscribe(event.CoinCollected, a.hud)
	g.EventDispatcher.Subscribe(event.CreatureReachedGoal, a.hud)
	a.game = g
	a.view = NewView(a.camera, g.Curve, g.Goal)
	a.paused = false
	return nil
}

// Game возвращает текущую сессию.
func (a *App) Game() *game.Game {
	return a.game
}

// Step продвигает игру на один кадр и перерисовывает экран.
func (a *App) Step(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if !a.paused {
		a.input.Tick(deltaTime)
		a.game.Update(deltaTime)
		a.hud.Update(deltaTime)
	}
	a.view.Draw(a.screen, a.game.ECS, a.hud)
}

// HandleEvent обрабатывает событие терминала; false означает выход.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		w, h := a.screen.Size()
		fitted := FitCamera(a.level, w, h)
		// View держит указатель на камеру, поэтому она обновляется на месте
		*a.camera = *fitted
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}
	if a.input.pressKey(key, r) || key != tcell.KeyRune {
		return true
	}
	switch r {
	case 'q', 'Q':
		return false
	case 'p', 'P':
		if !a.game.IsOver() {
			a.paused = !a.paused
		}
	case 'r', 'R':
		if a.game.IsOver() {
			if err := a.restart(); err != nil {
				log.Printf("tui: %v", err)
			}
		}
	}
	return true
}

// Run крутит цикл кадров, пока пользователь не выйдет или не отменится ctx.
func (a *App) Run(ctx context.Context) {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Step(now.Sub(last).Seconds())
			last = now
		}
	}
}
