// internal/defs/types.go
package defs

import (
	"fmt"

	"curve-defense/pkg/geom"
)

// Archetype defines a turret's behavioral profile: its fire-angle tolerance and fire pattern.
type Archetype string

const (
	ArchetypeMachineGun Archetype = "MachineGun"
	ArchetypeSniper     Archetype = "Sniper"
	ArchetypeShotgun    Archetype = "Shotgun"
)

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeMachineGun, ArchetypeSniper, ArchetypeShotgun:
		return true
	}
	return false
}

// Point is a position on the game plane as written in level files.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec converts the point to a geom.Vec2.
func (p Point) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
