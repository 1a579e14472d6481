package system

import (
	"curve-defense/internal/config"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/interfaces"
	"curve-defense/pkg/geom"
)

// CoinSystem ведёт монеты к счётчику монет и зачисляет их в сессию.
type CoinSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	hud             interfaces.HUD
	projector       interfaces.Projector
}

func NewCoinSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, hud interfaces.HUD, projector interfaces.Projector) *CoinSystem {
	return &CoinSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		hud:             hud,
		projector:       projector,
	}
}

func (s *CoinSystem) Update(deltaTime float64) {
	if s.hud == nil || s.projector == nil {
		return
	}

	// Счётчик может двигаться, поэтому цель пересчитывается каждый кадр.
	target := s.projector.ScreenToWorld(s.hud.CoinAnchor())

	for _, id := range s.ecs.CoinIDs() {
		coin := s.ecs.Coins[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		coin.Progress += coin.Speed * deltaTime
		*pos = geom.Lerp(coin.Start, target, geom.Clamp01(coin.Progress))

		if coin.Progress >= 1 || pos.Dist(target) < config.CoinArrivalEpsilon {
			if session := s.ecs.Session; session != nil {
				session.AddCoin(coin.Value)
			}
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.CoinCollected, Data: coin.Value})
		}
	}
}
