package system

import (
	"testing"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

func addProjectile(ecs *entity.ECS, at, dir geom.Vec2, speed float64) types.EntityID {
	id := ecs.NewEntity()
	p := at
	ecs.Positions[id] = &p
	ecs.Projectiles[id] = &component.Projectile{
		Direction:    dir,
		Speed:        speed,
		LifeSpan:     3,
		KillDistance: 0.5,
	}
	return id
}

func TestProjectileExpiresAfterLifeSpan(t *testing.T) {
	ecs := newTestECS()
	d := event.NewDispatcher()
	rec := listen(d, event.ProjectileExpired)
	sys := NewProjectileSystem(ecs, d, nil)
	id := addProjectile(ecs, geom.V(0, 0), geom.V(1, 0), 12)

	for i := 0; i < 5; i++ {
		sys.Update(0.5)
	}
	if _, ok := ecs.Projectiles[id]; !ok {
		t.Fatal("projectile removed before its life span")
	}
	if pos := *ecs.Positions[id]; pos.Dist(geom.V(30, 0)) > 1e-9 {
		t.Errorf("position after 2.5s = %v, want (30, 0)", pos)
	}

	sys.Update(0.5)
	if _, ok := ecs.Projectiles[id]; ok {
		t.Error("projectile still alive at age 3")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Error("projectile position left behind")
	}
	if rec.count(event.ProjectileExpired) != 1 {
		t.Errorf("ProjectileExpired events = %d, want 1", rec.count(event.ProjectileExpired))
	}
}

func TestProjectileHitKillsCreatureAndDropsCoin(t *testing.T) {
	ecs := newTestECS()
	d := event.NewDispatcher()
	rec := listen(d, event.CreatureKilled, event.ProjectileExpired)
	movement := NewMovementSystem(ecs, d, defs.CoinDefinition{FlySpeed: 5, Value: 10})
	sys := NewProjectileSystem(ecs, d, movement)

	creature := addCreature(ecs, geom.V(1, 0))
	proj := addProjectile(ecs, geom.V(0, 0), geom.V(1, 0), 12)

	sys.Update(0.1)

	if ecs.IsCreatureAlive(creature) {
		t.Error("creature survived a hit")
	}
	if _, ok := ecs.Projectiles[proj]; ok {
		t.Error("projectile should be consumed by the hit")
	}
	if len(ecs.Coins) != 1 {
		t.Fatalf("coins = %d, want 1", len(ecs.Coins))
	}
	for id, coin := range ecs.Coins {
		if coin.Start != geom.V(1, 0) || *ecs.Positions[id] != geom.V(1, 0) {
			t.Errorf("coin spawned at %v, want the creature position (1, 0)", coin.Start)
		}
		if coin.Value != 10 || coin.Speed != 5 {
			t.Errorf("coin = %+v", coin)
		}
	}
	if rec.count(event.CreatureKilled) != 1 || rec.count(event.ProjectileExpired) != 0 {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestProjectileKillDistanceIsStrict(t *testing.T) {
	ecs := newTestECS()
	movement := NewMovementSystem(ecs, event.NewDispatcher(), defs.CoinDefinition{})
	sys := NewProjectileSystem(ecs, event.NewDispatcher(), movement)

	creature := addCreature(ecs, geom.V(1.5, 0))
	// После шага снаряд окажется в (1, 0), ровно в 0.5 от врага
	addProjectile(ecs, geom.V(0, 0), geom.V(1, 0), 10)

	sys.Update(0.1)

	if !ecs.IsCreatureAlive(creature) {
		t.Error("distance equal to killDistance must not count as a hit")
	}
}

func TestProjectileHitsOnlyFirstCreature(t *testing.T) {
	ecs := newTestECS()
	movement := NewMovementSystem(ecs, event.NewDispatcher(), defs.CoinDefinition{})
	sys := NewProjectileSystem(ecs, event.NewDispatcher(), movement)

	first := addCreature(ecs, geom.V(1, 0.1))
	second := addCreature(ecs, geom.V(1, -0.1))
	addProjectile(ecs, geom.V(0, 0), geom.V(1, 0), 10)

	sys.Update(0.1)

	if ecs.IsCreatureAlive(first) || !ecs.IsCreatureAlive(second) {
		t.Errorf("one projectile should kill exactly the older creature")
	}
}
