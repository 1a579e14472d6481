package defs

import (
	"encoding/json"
	"fmt"

	"curve-defense/internal/config"
	"curve-defense/pkg/geom"
)

// ProjectileDefinition holds the ballistic parameters of a projectile.
type ProjectileDefinition struct {
	Speed        float64 `json:"speed" jsonschema:"description=Units per second"`
	KillDistance float64 `json:"killDistance" jsonschema:"description=A creature closer than this is hit"`
	LifeSpan     float64 `json:"lifeSpan" jsonschema:"description=Seconds before the projectile removes itself"`
}

// TurretDefinition describes one turret placed at level setup.
// Angles are in degrees; they are converted to radians when the turret is created.
type TurretDefinition struct {
	Type                  Archetype `json:"type" jsonschema:"enum=MachineGun,enum=Sniper,enum=Shotgun"`
	Position              Point     `json:"position"`
	Angle                 float64   `json:"angle" jsonschema:"description=Initial facing in degrees, 0 points along +X"`
	FireRange             float64   `json:"fireRange"`
	FireCooldown          float64   `json:"fireCooldown" jsonschema:"description=Seconds between shots"`
	RotationSpeed         float64   `json:"rotationSpeed" jsonschema:"description=Maximum turn rate in radians per second"`
	FireAngleThreshold    float64   `json:"fireAngleThreshold" jsonschema:"description=MachineGun aim tolerance in degrees"`
	ShotgunPellets        int       `json:"shotgunPellets"`
	ShotgunSpread         float64   `json:"shotgunSpread" jsonschema:"description=Full pellet spread in degrees"`
	SniperSightsTolerance float64   `json:"sniperSightsTolerance" jsonschema:"description=Sniper aim tolerance in degrees"`
	MuzzleOffset          float64   `json:"muzzleOffset"`
}

// UnmarshalJSON fills fields missing from the document with defaults.
func (t *TurretDefinition) UnmarshalJSON(data []byte) error {
	type plain TurretDefinition
	p := plain(DefaultTurret(ArchetypeMachineGun, Point{}))
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TurretDefinition(p)
	return nil
}

// SpawnerDefinition describes the creature path and the wave schedule.
type SpawnerDefinition struct {
	CurveType        string  `json:"curveType" jsonschema:"enum=quadratic,enum=cubic"`
	ControlPoints    []Point `json:"controlPoints" jsonschema:"description=3 points for quadratic or 4 for cubic; the first is the start and the last is the goal,minItems=3,maxItems=4"`
	TotalWaves       int     `json:"totalWaves"`
	TimeBetweenWaves float64 `json:"timeBetweenWaves"`
	SpawnInterval    float64 `json:"spawnInterval"`
	PathDuration     float64 `json:"pathDuration" jsonschema:"description=Seconds a creature needs to travel the whole path"`
	GoalDamage       int     `json:"goalDamage" jsonschema:"description=Health lost when a creature reaches the goal"`
}

// Curve builds the geom.Curve described by the spawner.
func (s SpawnerDefinition) Curve() (geom.Curve, error) {
	degree, err := geom.ParseDegree(s.CurveType)
	if err != nil {
		return geom.Curve{}, err
	}
	points := make([]geom.Vec2, len(s.ControlPoints))
	for i, p := range s.ControlPoints {
		points[i] = p.Vec()
	}
	return geom.NewCurve(degree, points...)
}

// SessionDefinition holds the health and currency settings.
type SessionDefinition struct {
	MaxHP               int     `json:"maxHP"`
	GhostHPEasingSpeed  float64 `json:"ghostHPEasingSpeed"`
	CoinLerpSpeed       float64 `json:"coinLerpSpeed"`
	GoalReachedDistance float64 `json:"goalReachedDistance"`
}

// PlayerDefinition describes the player-controlled entity.
type PlayerDefinition struct {
	Start     Point   `json:"start"`
	MoveSpeed float64 `json:"moveSpeed"`
}

// CoinDefinition describes the coin that flies to the currency counter.
type CoinDefinition struct {
	FlySpeed float64 `json:"coinFlySpeed"`
	Value    int     `json:"coinValue"`
}

// LevelDefinition is the complete designer-authored setup of one session.
type LevelDefinition struct {
	Name       string               `json:"name"`
	Session    SessionDefinition    `json:"session"`
	Player     PlayerDefinition     `json:"player"`
	Goal       Point                `json:"goal" jsonschema:"description=The player wins by reaching this point"`
	Spawner    SpawnerDefinition    `json:"spawner"`
	Projectile ProjectileDefinition `json:"projectile"`
	Coin       CoinDefinition       `json:"coin"`
	Turrets    []TurretDefinition   `json:"turrets"`
}

// Validate checks the parts of a level that cannot be played at all.
// Numeric ranges (durations, wave counts) are deliberately left unchecked.
func (l *LevelDefinition) Validate() error {
	if _, err := l.Spawner.Curve(); err != nil {
		return fmt.Errorf("spawner: %w", err)
	}
	for i, t := range l.Turrets {
		if !t.Type.Valid() {
			return fmt.Errorf("turret %d: unknown type %q", i, t.Type)
		}
	}
	return nil
}

// DefaultTurret returns a turret definition with the stock parameters.
func DefaultTurret(archetype Archetype, pos Point) TurretDefinition {
	return TurretDefinition{
		Type:                  archetype,
		Position:              pos,
		Angle:                 90,
		FireRange:             config.DefaultFireRange,
		FireCooldown:          config.DefaultFireCooldown,
		RotationSpeed:         config.DefaultRotationSpeed,
		FireAngleThreshold:    config.DefaultFireAngleThreshold,
		ShotgunPellets:        config.DefaultShotgunPellets,
		ShotgunSpread:         config.DefaultShotgunSpread,
		SniperSightsTolerance: config.DefaultSniperSightsTolerance,
		MuzzleOffset:          config.DefaultMuzzleOffset,
	}
}

// DefaultLevel returns the built-in level used when no file is given.
func DefaultLevel() LevelDefinition {
	return LevelDefinition{
		Name: "default",
		Session: SessionDefinition{
			MaxHP:               config.DefaultMaxHP,
			GhostHPEasingSpeed:  config.DefaultGhostHPEasingSpeed,
			CoinLerpSpeed:       config.DefaultCoinLerpSpeed,
			GoalReachedDistance: config.DefaultGoalReachedDistance,
		},
		Player: PlayerDefinition{
			Start:     Point{X: -12, Y: -9},
			MoveSpeed: config.DefaultPlayerMoveSpeed,
		},
		Goal: Point{X: 12, Y: 9},
		Spawner: SpawnerDefinition{
			CurveType: "cubic",
			ControlPoints: []Point{
				{X: -14, Y: 6},
				{X: -4, Y: 14},
				{X: 4, Y: -14},
				{X: 14, Y: -4},
			},
			TotalWaves:       config.DefaultTotalWaves,
			TimeBetweenWaves: config.DefaultTimeBetweenWaves,
			SpawnInterval:    config.DefaultSpawnInterval,
			PathDuration:     config.DefaultPathDuration,
			GoalDamage:       config.DamagePerEnemy,
		},
		Projectile: ProjectileDefinition{
			Speed:        config.DefaultProjectileSpeed,
			KillDistance: config.DefaultKillDistance,
			LifeSpan:     config.DefaultLifeSpan,
		},
		Coin: CoinDefinition{
			FlySpeed: config.DefaultCoinFlySpeed,
			Value:    config.DefaultCoinValue,
		},
		Turrets: []TurretDefinition{
			DefaultTurret(ArchetypeMachineGun, Point{X: -6, Y: 2}),
			DefaultTurret(ArchetypeShotgun, Point{X: 2, Y: 3}),
			DefaultTurret(ArchetypeSniper, Point{X: 8, Y: 4}),
		},
	}
}
