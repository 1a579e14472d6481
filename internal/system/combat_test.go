package system

import (
	"math"
	"testing"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"
)

func testTurret(archetype defs.Archetype) *component.Turret {
	return &component.Turret{
		Archetype:          archetype,
		Angle:              0,
		RotationSpeed:      0,
		Range:              10,
		Cooldown:           1,
		FireAngleThreshold: utils.DegToRad(45),
		ShotgunAngle:       utils.DegToRad(30),
		ShotgunPellets:     5,
		ShotgunSpread:      utils.DegToRad(30),
		SniperTolerance:    utils.DegToRad(2),
		MachineGunSpread:   utils.DegToRad(5),
		MuzzleOffset:       0.5,
		Projectile:         &defs.ProjectileDefinition{Speed: 12, KillDistance: 0.5, LifeSpan: 3},
	}
}

func addTurret(ecs *entity.ECS, at geom.Vec2, turret *component.Turret) types.EntityID {
	id := ecs.NewEntity()
	p := at
	ecs.Positions[id] = &p
	ecs.Turrets[id] = turret
	return id
}

func TestFireAngleGate(t *testing.T) {
	tests := []struct {
		name      string
		archetype defs.Archetype
		angleDeg  float64
		wantShots int
	}{
		{"machine gun inside threshold", defs.ArchetypeMachineGun, 44, 1},
		{"machine gun outside threshold", defs.ArchetypeMachineGun, 46, 0},
		{"sniper inside tolerance", defs.ArchetypeSniper, 1.5, 1},
		{"sniper outside tolerance", defs.ArchetypeSniper, 2.5, 0},
		{"shotgun inside fixed angle", defs.ArchetypeShotgun, 29, 5},
		{"shotgun outside fixed angle", defs.ArchetypeShotgun, 31, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := newTestECS()
			sys := NewCombatSystem(ecs, event.NewDispatcher(), fixedRandom{frac: 0.5})
			addTurret(ecs, geom.V(0, 0), testTurret(tt.archetype))
			addCreature(ecs, geom.FromAngle(utils.DegToRad(tt.angleDeg)).Scale(5))

			sys.Update(0.016)

			if got := len(ecs.Projectiles); got != tt.wantShots {
				t.Errorf("projectiles = %d, want %d", got, tt.wantShots)
			}
		})
	}
}

func TestCanFireRespectsRange(t *testing.T) {
	turret := testTurret(defs.ArchetypeSniper)
	if !CanFire(turret, geom.V(0, 0), geom.V(10, 0)) {
		t.Error("target exactly at range should be allowed")
	}
	if CanFire(turret, geom.V(0, 0), geom.V(10.01, 0)) {
		t.Error("target beyond range should be refused")
	}
}

func TestCooldown(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeSniper)
	addTurret(ecs, geom.V(0, 0), turret)
	addCreature(ecs, geom.V(5, 0))

	sys.Update(0.1)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("first shot: projectiles = %d, want 1", len(ecs.Projectiles))
	}
	if turret.NextFireTime != 1 {
		t.Errorf("NextFireTime = %v, want 1", turret.NextFireTime)
	}

	ecs.GameTime = 0.5
	sys.Update(0.1)
	if len(ecs.Projectiles) != 1 {
		t.Errorf("shot during cooldown: projectiles = %d", len(ecs.Projectiles))
	}

	ecs.GameTime = 1
	sys.Update(0.1)
	if len(ecs.Projectiles) != 2 {
		t.Errorf("after cooldown: projectiles = %d, want 2", len(ecs.Projectiles))
	}
}

func TestShotgunPelletsStayInsideSpread(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(99))
	turret := testTurret(defs.ArchetypeShotgun)
	turret.ShotgunPellets = 8
	addTurret(ecs, geom.V(0, 0), turret)
	addCreature(ecs, geom.V(5, 0))

	sys.Update(0.016)

	if len(ecs.Projectiles) != 8 {
		t.Fatalf("pellets = %d, want 8", len(ecs.Projectiles))
	}
	half := turret.ShotgunSpread / 2
	for id, p := range ecs.Projectiles {
		if a := geom.AngleBetween(turret.Forward(), p.Direction); a > half+1e-9 {
			t.Errorf("pellet %d deviates by %v rad, limit %v", id, a, half)
		}
		if math.Abs(p.Direction.Len()-1) > 1e-9 {
			t.Errorf("pellet %d direction is not a unit vector: %v", id, p.Direction)
		}
	}
}

func TestMachineGunSpreadAndMuzzle(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), fixedRandom{frac: 1})
	turret := testTurret(defs.ArchetypeMachineGun)
	addTurret(ecs, geom.V(2, 3), turret)
	addCreature(ecs, geom.V(7, 3))

	sys.Update(0.016)

	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}
	for id, p := range ecs.Projectiles {
		if got := p.Direction.Angle(); math.Abs(got-utils.DegToRad(5)) > 1e-9 {
			t.Errorf("direction angle = %v deg, want 5", utils.RadToDeg(got))
		}
		if pos := *ecs.Positions[id]; pos.Dist(geom.V(2.5, 3)) > 1e-9 {
			t.Errorf("projectile starts at %v, want muzzle (2.5, 3)", pos)
		}
	}
}

func TestSniperShotIsExact(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), fixedRandom{frac: 1})
	turret := testTurret(defs.ArchetypeSniper)
	turret.Angle = utils.DegToRad(1)
	addTurret(ecs, geom.V(0, 0), turret)
	addCreature(ecs, geom.V(5, 0))

	sys.Update(0.016)

	for _, p := range ecs.Projectiles {
		if d := geom.AngleBetween(p.Direction, turret.Forward()); d > 1e-9 {
			t.Errorf("sniper shot deviates by %v rad", d)
		}
	}
}

func TestNearestTargetTieGoesToOlderCreature(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeSniper)
	addTurret(ecs, geom.V(0, 0), turret)
	older := addCreature(ecs, geom.V(0, 5))
	addCreature(ecs, geom.V(5, 0))
	addCreature(ecs, geom.V(-5, 0))

	sys.Update(0.016)

	if turret.TargetID != older {
		t.Errorf("TargetID = %d, want the first created creature %d", turret.TargetID, older)
	}
}

func TestTargetClearedWhenCreatureDisappears(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeSniper)
	addTurret(ecs, geom.V(0, 0), turret)
	id := addCreature(ecs, geom.V(0, 5))

	sys.Update(0.016)
	if turret.TargetID != id {
		t.Fatalf("TargetID = %d, want %d", turret.TargetID, id)
	}

	ecs.RemoveEntity(id)
	sys.Update(0.016)
	if turret.TargetID != 0 {
		t.Errorf("TargetID = %d after the creature was removed, want 0", turret.TargetID)
	}
}

func TestNoTargetOutOfRange(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeMachineGun)
	turret.RotationSpeed = 5
	addTurret(ecs, geom.V(0, 0), turret)
	addCreature(ecs, geom.V(0, 11))

	sys.Update(0.1)

	if turret.TargetID != 0 || turret.Angle != 0 || len(ecs.Projectiles) != 0 {
		t.Errorf("turret reacted to a creature out of range: target %d, angle %v", turret.TargetID, turret.Angle)
	}
}

func TestRotationIsRateLimited(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeSniper)
	turret.RotationSpeed = 5
	addTurret(ecs, geom.V(0, 0), turret)
	addCreature(ecs, geom.V(0, 5))

	sys.Update(0.1)
	if math.Abs(turret.Angle-0.5) > 1e-9 {
		t.Errorf("angle after 0.1s = %v, want 0.5", turret.Angle)
	}

	for i := 0; i < 10; i++ {
		sys.Update(0.1)
	}
	if math.Abs(turret.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("turret should settle on the target: angle = %v", turret.Angle)
	}
}

func TestShootWithoutProjectileIsNoop(t *testing.T) {
	ecs := newTestECS()
	sys := NewCombatSystem(ecs, event.NewDispatcher(), nil)
	turret := testTurret(defs.ArchetypeMachineGun)
	turret.Projectile = nil
	id := addTurret(ecs, geom.V(0, 0), turret)

	sys.Shoot(id, turret, geom.V(0, 0))

	if len(ecs.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0", len(ecs.Projectiles))
	}
}

func TestTurretsHoldFireAfterGameOver(t *testing.T) {
	ecs := newTestECS()
	d := event.NewDispatcher()
	rec := listen(d, event.ProjectileFired)
	sys := NewCombatSystem(ecs, d, nil)
	addTurret(ecs, geom.V(0, 0), testTurret(defs.ArchetypeSniper))
	addCreature(ecs, geom.V(5, 0))
	ecs.Session.GameOver = true

	sys.Update(0.1)

	if len(ecs.Projectiles) != 0 || rec.count(event.ProjectileFired) != 0 {
		t.Error("turret fired after the game ended")
	}
}
