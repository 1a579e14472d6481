// internal/component/turret.go
package component

import (
	"curve-defense/internal/defs"
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

// Turret — башня: ищет цель, поворачивается к ней и стреляет.
// Все углы хранятся в радианах.
type Turret struct {
	Archetype defs.Archetype
	// Angle - текущий угол поворота ствола (0 = +X, против часовой).
	Angle float64
	// RotationSpeed - скорость поворота в радианах в секунду.
	RotationSpeed float64
	Range         float64
	Cooldown      float64
	NextFireTime  float64

	FireAngleThreshold float64 // допуск пулемёта
	ShotgunAngle       float64 // допуск дробовика (фиксированный)
	ShotgunPellets     int
	ShotgunSpread      float64
	SniperTolerance    float64
	MachineGunSpread   float64 // полуширина случайного разброса пулемёта

	MuzzleOffset float64 // вынос точки выстрела вдоль ствола
	// TargetID - ID цели. Перепроверяется каждый кадр: враг мог исчезнуть.
	TargetID types.EntityID
	// Projectile - параметры снаряда; nil означает, что стрелять нечем.
	Projectile *defs.ProjectileDefinition
}

// Forward возвращает единичный вектор направления ствола.
func (t *Turret) Forward() geom.Vec2 {
	return geom.FromAngle(t.Angle)
}

// Tolerance возвращает допустимый угол между стволом и целью для этого типа башни.
func (t *Turret) Tolerance() float64 {
	switch t.Archetype {
	case defs.ArchetypeMachineGun:
		return t.FireAngleThreshold
	case defs.ArchetypeShotgun:
		return t.ShotgunAngle
	case defs.ArchetypeSniper:
		return t.SniperTolerance
	}
	return 0
}
