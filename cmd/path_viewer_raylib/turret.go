package main

import (
	"curve-defense/internal/component"
	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/utils"
)

// turretFromDef строит компонент башни только для отрисовки её сектора обстрела.
func turretFromDef(def defs.TurretDefinition) *component.Turret {
	return &component.Turret{
		Archetype:          def.Type,
		Angle:              utils.DegToRad(def.Angle),
		Range:              def.FireRange,
		FireAngleThreshold: utils.DegToRad(def.FireAngleThreshold),
		ShotgunAngle:       utils.DegToRad(config.DefaultShotgunAngle),
		ShotgunSpread:      utils.DegToRad(def.ShotgunSpread),
		SniperTolerance:    utils.DegToRad(def.SniperSightsTolerance),
	}
}
