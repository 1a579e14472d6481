// internal/component/projectile.go
package component

import (
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

// Projectile представляет летящий снаряд. Летит по прямой, направление задаётся при выстреле.
type Projectile struct {
	Direction    geom.Vec2 // единичный вектор, не меняется
	Speed        float64
	LifeSpan     float64
	Age          float64
	KillDistance float64
	SourceID     types.EntityID // башня, которая выстрелила
}
