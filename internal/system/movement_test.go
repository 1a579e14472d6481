package system

import (
	"testing"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/event"
	"curve-defense/pkg/geom"
)

func TestCreatureFollowsCurveAndHitsGoal(t *testing.T) {
	ecs := newTestECS()
	d := event.NewDispatcher()
	rec := listen(d, event.CreatureReachedGoal, event.CreatureKilled)
	sys := NewMovementSystem(ecs, d, defs.CoinDefinition{FlySpeed: 5, Value: 10})

	curve, err := geom.NewCurve(geom.Quadratic, geom.V(0, 0), geom.V(5, 10), geom.V(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	id := ecs.NewEntity()
	start := curve.Start()
	ecs.Positions[id] = &start
	ecs.Creatures[id] = &component.Creature{Curve: curve, Duration: 5, GoalDamage: 1}

	for i := 0; i < 5; i++ {
		sys.Update(0.5)
	}
	if got := *ecs.Positions[id]; got.Dist(geom.V(5, 5)) > 1e-9 {
		t.Errorf("position at t=0.5 = %v, want (5, 5)", got)
	}

	for i := 0; i < 5; i++ {
		sys.Update(0.5)
	}
	if ecs.IsCreatureAlive(id) {
		t.Fatal("creature should be removed at the end of the path")
	}
	if ecs.Session.HP != 19 {
		t.Errorf("HP = %v, want 19", ecs.Session.HP)
	}
	if len(ecs.Coins) != 0 {
		t.Errorf("reaching the goal must not drop a coin")
	}
	if rec.count(event.CreatureReachedGoal) != 1 || rec.count(event.CreatureKilled) != 0 {
		t.Fatalf("events = %+v", rec.events)
	}
	if at := rec.events[0].Data.(event.CreatureData).Position; at != curve.End() {
		t.Errorf("creature reached the goal at %v, want the curve end %v", at, curve.End())
	}
}

func TestZeroDurationArrivesImmediately(t *testing.T) {
	ecs := newTestECS()
	sys := NewMovementSystem(ecs, event.NewDispatcher(), defs.CoinDefinition{})
	curve, _ := geom.NewCurve(geom.Quadratic, geom.V(0, 0), geom.V(1, 1), geom.V(2, 0))
	id := ecs.NewEntity()
	ecs.Creatures[id] = &component.Creature{Curve: curve, Duration: 0, GoalDamage: 3}

	sys.Update(0)

	if ecs.IsCreatureAlive(id) {
		t.Error("creature with zero duration should arrive on the first update")
	}
	if ecs.Session.HP != 17 {
		t.Errorf("HP = %v, want 17", ecs.Session.HP)
	}
}

func TestKillMissingCreature(t *testing.T) {
	ecs := newTestECS()
	sys := NewMovementSystem(ecs, event.NewDispatcher(), defs.CoinDefinition{})
	if sys.Kill(42) {
		t.Error("Kill reported success for an unknown entity")
	}
	if len(ecs.Coins) != 0 {
		t.Error("coin spawned for an unknown entity")
	}
}
