package app

import (
	"fmt"
	"log"

	"curve-defense/internal/event"
)

// Stats — итоги текущей сессии, собранные по событиям.
type Stats struct {
	Waves          int
	Kills          int
	Leaked         int
	CoinsCollected int
}

// GameEventListener — слушатель событий на уровне игры.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			g.stats.Waves = data.Number
			if g.hud != nil {
				g.hud.SetWaveText(fmt.Sprintf("Wave: %d/%d", data.Number, data.Total))
			}
		}
	case event.CreatureKilled:
		g.stats.Kills++
	case event.CreatureReachedGoal:
		g.stats.Leaked++
	case event.CoinCollected:
		g.stats.CoinsCollected++
	case event.GameWon, event.GameLost:
		log.Printf("Session over (%s): wave %d, %d killed, %d reached the base, %d coins collected",
			e.Type, g.stats.Waves, g.stats.Kills, g.stats.Leaked, g.stats.CoinsCollected)
	}
}

func (g *Game) subscribeEvents() {
	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.WaveStarted, listener)
	g.EventDispatcher.Subscribe(event.CreatureKilled, listener)
	g.EventDispatcher.Subscribe(event.CreatureReachedGoal, listener)
	g.EventDispatcher.Subscribe(event.CoinCollected, listener)
	g.EventDispatcher.Subscribe(event.GameWon, listener)
	g.EventDispatcher.Subscribe(event.GameLost, listener)
}

// Stats возвращает итоги сессии на текущий момент.
func (g *Game) Stats() Stats {
	return g.stats
}
