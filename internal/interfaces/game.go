package interfaces

import "curve-defense/pkg/geom"

// InputSource опрашивает направление движения игрока (клавиши-стрелки, WASD).
// Длина вектора значения не имеет, он нормализуется.
type InputSource interface {
	MoveAxis() geom.Vec2
}
