// internal/system/player_system.go
package system

import (
	"curve-defense/internal/entity"
	"curve-defense/internal/interfaces"
)

// PlayerSystem двигает игрока по вводу с клавиатуры.
type PlayerSystem struct {
	ecs   *entity.ECS
	input interfaces.InputSource
}

func NewPlayerSystem(ecs *entity.ECS, input interfaces.InputSource) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: input}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	dir := s.input.MoveAxis().Normalize()
	if dir.IsZero() {
		return
	}
	for id, player := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			*pos = pos.Add(dir.Scale(player.Speed * deltaTime))
		}
	}
}
