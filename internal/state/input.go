package state

import (
	"curve-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardInput читает направление движения игрока с WASD и стрелок.
type KeyboardInput struct{}

func (KeyboardInput) MoveAxis() geom.Vec2 {
	var axis geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		axis.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		axis.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		axis.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		axis.Y--
	}
	return axis
}
