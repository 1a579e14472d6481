package system

import (
	"math"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"
)

// CombatSystem управляет наведением и стрельбой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             utils.RandomSource
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng utils.RandomSource) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	if session := s.ecs.Session; session != nil && session.GameOver {
		return
	}
	for _, id := range s.ecs.TurretIDs() {
		s.updateTurret(id, s.ecs.Turrets[id], deltaTime)
	}
}

func (s *CombatSystem) updateTurret(id types.EntityID, turret *component.Turret, deltaTime float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}

	turret.TargetID = s.findNearestCreatureInRange(*pos, turret.Range)
	targetPos, ok := s.targetPosition(turret)
	if !ok {
		turret.TargetID = 0
		return
	}

	toTarget := targetPos.Sub(*pos)
	if !toTarget.IsZero() {
		maxStep := turret.RotationSpeed * deltaTime
		turret.Angle = utils.RotateTowards(turret.Angle, toTarget.Angle(), maxStep)
	}

	if !CanFire(turret, *pos, targetPos) {
		return
	}
	if s.ecs.GameTime < turret.NextFireTime {
		return
	}

	s.Shoot(id, turret, *pos)
	turret.NextFireTime = s.ecs.GameTime + turret.Cooldown
}

// targetPosition проверяет, что цель башни ещё жива, и возвращает её позицию.
func (s *CombatSystem) targetPosition(turret *component.Turret) (geom.Vec2, bool) {
	if !s.ecs.IsCreatureAlive(turret.TargetID) {
		return geom.Vec2{}, false
	}
	pos, ok := s.ecs.Positions[turret.TargetID]
	if !ok {
		return geom.Vec2{}, false
	}
	return *pos, true
}

// findNearestCreatureInRange выбирает ближайшего врага в радиусе.
// При равных расстояниях побеждает тот, кто создан раньше.
func (s *CombatSystem) findNearestCreatureInRange(from geom.Vec2, rangeRadius float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.Inf(1)
	for _, id := range s.ecs.CreatureIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		distance := from.Dist(*pos)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = id
		}
	}
	return nearest
}

// CanFire проверяет дальность и угол между стволом и направлением на цель.
func CanFire(turret *component.Turret, from, target geom.Vec2) bool {
	toTarget := target.Sub(from)
	if toTarget.Len() > turret.Range {
		return false
	}
	return geom.AngleBetween(turret.Forward(), toTarget) <= turret.Tolerance()
}

// Shoot выпускает снаряды по шаблону типа башни.
func (s *CombatSystem) Shoot(turretID types.EntityID, turret *component.Turret, from geom.Vec2) {
	if turret.Projectile == nil {
		return
	}

	switch turret.Archetype {
	case defs.ArchetypeMachineGun:
		spread := turret.MachineGunSpread
		s.spawnProjectile(turretID, turret, from, s.randomAngle(-spread, spread))
	case defs.ArchetypeShotgun:
		half := turret.ShotgunSpread / 2
		for i := 0; i < turret.ShotgunPellets; i++ {
			s.spawnProjectile(turretID, turret, from, s.randomAngle(-half, half))
		}
	case defs.ArchetypeSniper:
		s.spawnProjectile(turretID, turret, from, 0)
	}
}

func (s *CombatSystem) randomAngle(min, max float64) float64 {
	if s.rng == nil {
		return 0
	}
	return s.rng.Range(min, max)
}

// spawnProjectile выпускает снаряд из дула; offset — отклонение от ствола в радианах.
func (s *CombatSystem) spawnProjectile(turretID types.EntityID, turret *component.Turret, from geom.Vec2, offset float64) types.EntityID {
	def := turret.Projectile
	direction := turret.Forward().Rotate(offset).Normalize()
	muzzle := from.Add(turret.Forward().Scale(turret.MuzzleOffset))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &muzzle
	s.ecs.Projectiles[id] = &component.Projectile{
		Direction:    direction,
		Speed:        def.Speed,
		LifeSpan:     def.LifeSpan,
		KillDistance: def.KillDistance,
		SourceID:     turretID,
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ShotData{TurretID: turretID, ProjectileID: id, Direction: direction},
	})
	return id
}
