// internal/interfaces/game_context.go
package interfaces

import "curve-defense/pkg/geom"

// Projector переводит координаты между экраном и игровой плоскостью.
type Projector interface {
	ScreenToWorld(x, y float64) geom.Vec2
	WorldToScreen(p geom.Vec2) (float64, float64)
}

// HUD — то, что игровая логика знает об интерфейсе. Любой метод может ничего не делать.
type HUD interface {
	SetHealth(fraction float64)
	SetGhostHealth(fraction float64)
	SetCoinText(text string)
	SetWaveText(text string)
	// CoinAnchor возвращает экранную позицию счётчика монет; он может двигаться.
	CoinAnchor() (float64, float64)
	ShowWinPanel(visible bool)
	ShowFailPanel(visible bool)
}

// TimeController управляет масштабом игрового времени (0 — пауза).
type TimeController interface {
	SetTimeScale(scale float64)
}
