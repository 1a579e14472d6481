// internal/system/projectile.go
package system

import (
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

// CreatureKiller уничтожает врага при попадании.
type CreatureKiller interface {
	Kill(id types.EntityID) bool
}

// ProjectileSystem управляет движением снарядов и попаданиями
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	killer          CreatureKiller
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, killer CreatureKiller) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		killer:          killer,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		*pos = pos.Add(proj.Direction.Scale(proj.Speed * deltaTime))

		if hit := s.findHit(*pos, proj.KillDistance); hit != 0 {
			if s.killer != nil {
				s.killer.Kill(hit)
			}
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.Age += deltaTime
		if proj.Age >= proj.LifeSpan {
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: id})
		}
	}
}

// findHit возвращает первого (по порядку создания) врага ближе killDistance.
func (s *ProjectileSystem) findHit(at geom.Vec2, killDistance float64) types.EntityID {
	for _, id := range s.ecs.CreatureIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if at.Dist(*pos) < killDistance {
			return id
		}
	}
	return 0
}
