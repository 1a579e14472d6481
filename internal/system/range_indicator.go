package system

import (
	"math"

	"curve-defense/internal/component"
	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/pkg/geom"
)

// TurretRangeOutline возвращает ломаную для индикатора дальности башни:
// замкнутый сектор для пулемёта и дробовика, линию прицела для снайпера.
func TurretRangeOutline(turret *component.Turret, pos geom.Vec2) []geom.Vec2 {
	switch turret.Archetype {
	case defs.ArchetypeSniper:
		return []geom.Vec2{pos, pos.Add(turret.Forward().Scale(turret.Range))}
	case defs.ArchetypeMachineGun, defs.ArchetypeShotgun:
		limit := turret.Tolerance()
		segments := config.RangeConeSegments
		points := make([]geom.Vec2, 0, segments+3)
		points = append(points, pos)
		for i := 0; i <= segments; i++ {
			progress := float64(i) / float64(segments)
			angle := turret.Angle - limit + 2*limit*progress
			points = append(points, pos.Add(geom.FromAngle(angle).Scale(turret.Range)))
		}
		return append(points, pos)
	}

	// Окружность для неизвестных типов
	const segments = 50
	points := make([]geom.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		points = append(points, pos.Add(geom.FromAngle(angle).Scale(turret.Range)))
	}
	return points
}
