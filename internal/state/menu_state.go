// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"curve-defense/internal/config"
	"curve-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран с названием уровня и подсказкой по управлению.
type MenuState struct {
	sm    *StateMachine
	level defs.LevelDefinition
	seed  int64
	lines []string
}

func NewMenuState(sm *StateMachine, level defs.LevelDefinition, seed int64) *MenuState {
	return &MenuState{
		sm:    sm,
		level: level,
		seed:  seed,
		lines: []string{
			level.Name,
			fmt.Sprintf("%d waves, %d turrets", level.Spawner.TotalWaves, len(level.Turrets)),
			"",
			"WASD / arrows - move, P - pause",
			"Press SPACE to start",
		},
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	gs, err := NewGameState(m.sm, m.level, m.seed)
	if err != nil {
		log.Printf("MenuState: cannot start level: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(m.lines)*config.TextLineHeight/2
	for _, line := range m.lines {
		width := font.MeasureString(face, line).Ceil()
		text.Draw(screen, line, face, (config.ScreenWidth-width)/2, y, config.TextLightColor)
		y += config.TextLineHeight
	}
}

func (m *MenuState) Exit() {}
