// component/movement.go
package component

import "curve-defense/pkg/geom"

// Position — компонент позиции (плоскость z = 0).
type Position = geom.Vec2

// Player — сущность, управляемая игроком. Победа наступает, когда она доходит до цели.
type Player struct {
	Speed float64 // единиц в секунду
}
