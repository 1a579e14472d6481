// internal/system/movement.go
package system

import (
	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
)

// MovementSystem ведёт врагов по их кривым и решает, что происходит в конце пути.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	coin            defs.CoinDefinition
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, coin defs.CoinDefinition) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		coin:            coin,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CreatureIDs() {
		creature := s.ecs.Creatures[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			pos = &component.Position{}
			s.ecs.Positions[id] = pos
		}

		creature.Elapsed += deltaTime
		t := creature.Progress()
		if t >= 1 {
			*pos = creature.Curve.End()
			s.reachGoal(id, creature, *pos)
			continue
		}
		*pos = creature.Curve.At(t)
	}
}

// reachGoal наносит урон базе и убирает врага. Монета при этом не выпадает.
func (s *MovementSystem) reachGoal(id types.EntityID, creature *component.Creature, pos component.Position) {
	if session := s.ecs.Session; session != nil {
		session.TakeDamage(creature.GoalDamage)
	}
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CreatureReachedGoal,
		Data: event.CreatureData{ID: id, Position: pos},
	})
}

// Kill уничтожает врага до конца пути (попадание снаряда): на его месте появляется монета.
// Возвращает false, если такого врага уже нет.
func (s *MovementSystem) Kill(id types.EntityID) bool {
	if _, alive := s.ecs.Creatures[id]; !alive {
		return false
	}
	var pos component.Position
	if p, ok := s.ecs.Positions[id]; ok {
		pos = *p
	}

	s.spawnCoin(pos)
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CreatureKilled,
		Data: event.CreatureData{ID: id, Position: pos},
	})
	return true
}

func (s *MovementSystem) spawnCoin(at component.Position) types.EntityID {
	id := s.ecs.NewEntity()
	p := at
	s.ecs.Positions[id] = &p
	s.ecs.Coins[id] = &component.Coin{
		Start: at,
		Speed: s.coin.FlySpeed,
		Value: s.coin.Value,
	}
	return id
}
