package tui

import (
	"curve-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// holdTime — сколько секунд нажатие считается удерживаемым.
// Терминал не присылает отпускание клавиш, поэтому направление держится
// до тех пор, пока приходят повторы клавиши.
const holdTime = 0.2

// KeyInput превращает нажатия клавиш в направление движения игрока.
type KeyInput struct {
	axis      geom.Vec2
	remaining float64
}

// Press обрабатывает клавишу; возвращает true, если это клавиша движения.
func (in *KeyInput) Press(ev *tcell.EventKey) bool {
	return in.pressKey(ev.Key(), ev.Rune())
}

func (in *KeyInput) pressKey(key tcell.Key, r rune) bool {
	dir, ok := direction(key, r)
	if !ok {
		return false
	}
	in.axis = dir
	in.remaining = holdTime
	return true
}

// Tick отсчитывает время удержания.
func (in *KeyInput) Tick(deltaTime float64) {
	in.remaining -= deltaTime
	if in.remaining <= 0 {
		in.remaining = 0
		in.axis = geom.Vec2{}
	}
}

func (in *KeyInput) MoveAxis() geom.Vec2 {
	return in.axis
}

func direction(key tcell.Key, r rune) (geom.Vec2, bool) {
	switch key {
	case tcell.KeyUp:
		return geom.V(0, 1), true
	case tcell.KeyDown:
		return geom.V(0, -1), true
	case tcell.KeyLeft:
		return geom.V(-1, 0), true
	case tcell.KeyRight:
		return geom.V(1, 0), true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return geom.V(0, 1), true
		case 's', 'S':
			return geom.V(0, -1), true
		case 'a', 'A':
			return geom.V(-1, 0), true
		case 'd', 'D':
			return geom.V(1, 0), true
		}
	}
	return geom.Vec2{}, false
}
