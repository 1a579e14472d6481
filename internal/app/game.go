// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"curve-defense/internal/component"
	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/interfaces"
	"curve-defense/internal/system"
	"curve-defense/internal/types"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"
)

// Options — внешние зависимости игры. Любое поле может быть nil:
// соответствующее действие просто пропускается.
type Options struct {
	HUD       interfaces.HUD
	Projector interfaces.Projector
	Input     interfaces.InputSource
	Random    utils.RandomSource
}

// Game собирает системы и прогоняет их раз в кадр в фиксированном порядке.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Level           defs.LevelDefinition
	Curve           geom.Curve
	Goal            geom.Vec2

	timeScale float64
	hud       interfaces.HUD
	stats     Stats

	waveSystem       *system.WaveSystem
	playerSystem     *system.PlayerSystem
	movementSystem   *system.MovementSystem
	combatSystem     *system.CombatSystem
	projectileSystem *system.ProjectileSystem
	coinSystem       *system.CoinSystem
	sessionSystem    *system.SessionSystem
}

// NewGame создаёт сессию по описанию уровня: башни, игрока и планировщик волн.
func NewGame(level defs.LevelDefinition, opts Options) (*Game, error) {
	curve, err := level.Spawner.Curve()
	if err != nil {
		return nil, fmt.Errorf("build spawner path: %w", err)
	}

	session := component.NewSession(level.Session.MaxHP)
	session.GhostEasingSpeed = level.Session.GhostHPEasingSpeed
	session.CoinLerpSpeed = level.Session.CoinLerpSpeed
	session.GoalReachedDistance = level.Session.GoalReachedDistance

	ecs := entity.NewECS(session)
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Level:           level,
		Curve:           curve,
		Goal:            level.Goal.Vec(),
		timeScale:       1,
		hud:             opts.HUD,
	}
	g.subscribeEvents()

	if opts.HUD == nil {
		log.Println("Game: no HUD bound, health/coin/wave display is skipped")
	}
	if opts.Projector == nil {
		log.Println("Game: no projector bound, coins will not fly to the counter")
	}

	g.movementSystem = system.NewMovementSystem(ecs, dispatcher, level.Coin)
	g.waveSystem = system.NewWaveSystem(ecs, dispatcher, curve, level.Spawner)
	g.playerSystem = system.NewPlayerSystem(ecs, opts.Input)
	g.combatSystem = system.NewCombatSystem(ecs, dispatcher, opts.Random)
	g.projectileSystem = system.NewProjectileSystem(ecs, dispatcher, g.movementSystem)
	g.coinSystem = system.NewCoinSystem(ecs, dispatcher, opts.HUD, opts.Projector)
	g.sessionSystem = system.NewSessionSystem(ecs, dispatcher, opts.HUD, g, g.Goal)

	for _, def := range level.Turrets {
		g.AddTurret(def)
	}
	g.AddPlayer(level.Player)

	g.waveSystem.Start(config.EnemiesPerWave)
	g.sessionSystem.Start()
	return g, nil
}

// Update продвигает симуляцию на один кадр.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.timeScale
	g.ECS.GameTime += dt

	g.waveSystem.Update(dt)
	g.playerSystem.Update(dt)
	g.movementSystem.Update(dt)
	g.combatSystem.Update(dt)
	g.projectileSystem.Update(dt)
	g.coinSystem.Update(dt)
	g.sessionSystem.Update(dt)
}

// SetTimeScale задаёт масштаб времени; 0 останавливает все перемещения.
func (g *Game) SetTimeScale(scale float64) {
	g.timeScale = scale
}

func (g *Game) TimeScale() float64 {
	return g.timeScale
}

// Session возвращает состояние текущей сессии.
func (g *Game) Session() *component.Session {
	return g.ECS.Session
}

// IsOver сообщает, закончилась ли игра победой или поражением.
func (g *Game) IsOver() bool {
	return g.ECS.Session.GameOver
}

// AddTurret ставит башню по описанию. Углы из описания переводятся в радианы.
func (g *Game) AddTurret(def defs.TurretDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	pos := def.Position.Vec()
	projectile := g.Level.Projectile

	g.ECS.Positions[id] = &pos
	g.ECS.Turrets[id] = &component.Turret{
		Archetype:          def.Type,
		Angle:              utils.DegToRad(def.Angle),
		RotationSpeed:      def.RotationSpeed,
		Range:              def.FireRange,
		Cooldown:           def.FireCooldown,
		FireAngleThreshold: utils.DegToRad(def.FireAngleThreshold),
		ShotgunAngle:       utils.DegToRad(config.DefaultShotgunAngle),
		ShotgunPellets:     def.ShotgunPellets,
		ShotgunSpread:      utils.DegToRad(def.ShotgunSpread),
		SniperTolerance:    utils.DegToRad(def.SniperSightsTolerance),
		MachineGunSpread:   utils.DegToRad(config.DefaultMachineGunSpread),
		MuzzleOffset:       def.MuzzleOffset,
		Projectile:         &projectile,
	}
	return id
}

// AddPlayer создаёт сущность игрока в стартовой точке.
func (g *Game) AddPlayer(def defs.PlayerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	pos := def.Start.Vec()
	g.ECS.Positions[id] = &pos
	g.ECS.Players[id] = &component.Player{Speed: def.MoveSpeed}
	return id
}

// KillCreature уничтожает врага так же, как это делает попадание снаряда.
func (g *Game) KillCreature(id types.EntityID) bool {
	return g.movementSystem.Kill(id)
}
