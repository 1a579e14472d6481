// internal/state/game_state.go
package state

import (
	"log"

	game "curve-defense/internal/app"
	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/event"
	"curve-defense/internal/ui"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"
	"curve-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	level    defs.LevelDefinition
	seed     int64
	game     *game.Game
	hud      *ui.HUD
	renderer *render.WorldRenderer
}

// NewGameState собирает сессию по уровню. seed == 0 — случайный разброс выстрелов.
func NewGameState(sm *StateMachine, level defs.LevelDefinition, seed int64) (*GameState, error) {
	hud := ui.NewHUD()
	camera := utils.NewCamera(geom.Vec2{}, config.PixelsPerUnit, config.ScreenWidth, config.ScreenHeight)
	rng := utils.NewPRNGService(seed)
	log.Printf("GameState: level %q, seed %d", level.Name, rng.Seed())

	gameLogic, err := game.NewGame(level, game.Options{
		HUD:       hud,
		Projector: camera,
		Input:     KeyboardInput{},
		Random:    rng,
	})
	if err != nil {
		return nil, err
	}
	gameLogic.EventDispatcher.Subscribe(event.CoinCollected, hud)
	gameLogic.EventDispatcher.Subscribe(event.CreatureReachedGoal, hud)

	return &GameState{
		sm:       sm,
		level:    level,
		seed:     seed,
		game:     gameLogic,
		hud:      hud,
		renderer: render.NewWorldRenderer(gameLogic.ECS, camera, gameLogic.Curve, gameLogic.Goal),
	}, nil
}

// Game возвращает игровую логику текущей сессии.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
			return
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)
	g.hud.Update(deltaTime)
}

// restart пересоздаёт сессию с тем же уровнем; масштаб времени новой игры равен 1.
func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.level, g.seed)
	if err != nil {
		log.Printf("GameState: restart failed: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.hud.Draw(screen)
}

func (g *GameState) Exit() {}
