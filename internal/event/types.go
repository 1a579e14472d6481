// internal/event/types.go
package event

import (
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

const (
	WaveStarted         EventType = "WaveStarted"         // Началась новая волна
	CreatureSpawned     EventType = "CreatureSpawned"     // Враг появился на старте
	CreatureKilled      EventType = "CreatureKilled"      // Враг сбит снарядом
	CreatureReachedGoal EventType = "CreatureReachedGoal" // Враг дошёл до цели
	ProjectileFired     EventType = "ProjectileFired"     // Башня выстрелила
	ProjectileExpired   EventType = "ProjectileExpired"   // Снаряд исчез, никого не задев
	CoinCollected       EventType = "CoinCollected"       // Монета долетела до счётчика
	GameLost            EventType = "GameLost"
	GameWon             EventType = "GameWon"
)

// WaveData — данные события WaveStarted.
type WaveData struct {
	Number int
	Total  int
	Count  int
}

// CreatureData — данные событий, связанных с врагом.
type CreatureData struct {
	ID       types.EntityID
	Position geom.Vec2
	Wave     int
}

// ShotData — данные события ProjectileFired.
type ShotData struct {
	TurretID     types.EntityID
	ProjectileID types.EntityID
	Direction    geom.Vec2
}
