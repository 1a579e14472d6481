package system

import (
	"testing"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/pkg/geom"
)

func newWaveFixture(t *testing.T, totalWaves int) (*entity.ECS, *WaveSystem, *recorder) {
	t.Helper()
	ecs := newTestECS()
	d := event.NewDispatcher()
	rec := listen(d, event.WaveStarted, event.CreatureSpawned)
	curve, err := geom.NewCurve(geom.Quadratic, geom.V(-5, 0), geom.V(0, 5), geom.V(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	sys := NewWaveSystem(ecs, d, curve, defs.SpawnerDefinition{
		TotalWaves:       totalWaves,
		TimeBetweenWaves: 5,
		SpawnInterval:    1,
		PathDuration:     5,
		GoalDamage:       1,
	})
	sys.Start(5)
	return ecs, sys, rec
}

func TestWaveScheduleTiming(t *testing.T) {
	ecs, sys, rec := newWaveFixture(t, 3)

	// Волна 1: t = 0..4, волна 2: t = 10..19, волна 3: t = 25..39
	checkpoints := map[int]int{ // шаг по 0.5 с -> врагов выпущено
		1:  1,
		9:  5,
		19: 5,
		20: 6,
		37: 14,
		38: 15,
		49: 15,
		50: 16,
		78: 30,
		90: 30,
	}
	for step := 1; step <= 90; step++ {
		sys.Update(0.5)
		if want, ok := checkpoints[step]; ok {
			if got := rec.count(event.CreatureSpawned); got != want {
				t.Errorf("after %.1fs: spawned %d, want %d", float64(step)*0.5, got, want)
			}
		}
	}

	if len(ecs.Creatures) != 30 {
		t.Errorf("creatures = %d, want 30", len(ecs.Creatures))
	}
	if ecs.Wave.Phase != component.WaveDone {
		t.Errorf("phase = %v, want done", ecs.Wave.Phase)
	}
	var sizes []int
	var last event.WaveData
	for _, e := range rec.events {
		if e.Type == event.WaveStarted {
			last = e.Data.(event.WaveData)
			sizes = append(sizes, last.Count)
		}
	}
	if len(sizes) != 3 || sizes[0] != 5 || sizes[1] != 10 || sizes[2] != 15 {
		t.Errorf("wave sizes = %v, want [5 10 15]", sizes)
	}
	if last.Number != 3 || last.Total != 3 {
		t.Errorf("last wave = %+v, want 3 of 3", last)
	}
}

func TestWaveReleasesOneCreaturePerFrame(t *testing.T) {
	ecs, sys, _ := newWaveFixture(t, 1)

	sys.Update(10)
	if len(ecs.Creatures) != 1 {
		t.Fatalf("creatures after one long frame = %d, want 1", len(ecs.Creatures))
	}

	// Отставшие враги выходят по одному в каждом следующем кадре.
	for frame := 2; frame <= 5; frame++ {
		sys.Update(0.01)
		if len(ecs.Creatures) != frame {
			t.Fatalf("creatures after frame %d = %d, want %d", frame, len(ecs.Creatures), frame)
		}
	}
	if ecs.Wave.Phase != component.WaveDone {
		t.Errorf("phase = %v, want done", ecs.Wave.Phase)
	}
}

func TestSpawnedCreatureStartsOnPath(t *testing.T) {
	ecs, sys, _ := newWaveFixture(t, 1)

	sys.Update(0.01)

	ids := ecs.CreatureIDs()
	if len(ids) != 1 {
		t.Fatalf("creatures = %d, want 1", len(ids))
	}
	c := ecs.Creatures[ids[0]]
	if *ecs.Positions[ids[0]] != geom.V(-5, 0) {
		t.Errorf("creature spawned at %v, want the curve start", *ecs.Positions[ids[0]])
	}
	if c.Duration != 5 || c.GoalDamage != 1 || c.Elapsed != 0 {
		t.Errorf("creature = %+v", c)
	}
}

func TestNoWavesConfigured(t *testing.T) {
	ecs, sys, rec := newWaveFixture(t, 0)

	sys.Update(100)

	if len(rec.events) != 0 || len(ecs.Creatures) != 0 {
		t.Errorf("scheduler with zero waves produced events: %+v", rec.events)
	}
	if ecs.Wave.Phase != component.WaveDone {
		t.Errorf("phase = %v, want done", ecs.Wave.Phase)
	}
}

func TestWavesStopAfterGameOver(t *testing.T) {
	ecs, sys, rec := newWaveFixture(t, 10)

	sys.Update(0.5)
	ecs.Session.GameOver = true
	for i := 0; i < 100; i++ {
		sys.Update(0.5)
	}

	if got := rec.count(event.CreatureSpawned); got != 1 {
		t.Errorf("spawned %d creatures, want 1 (nothing after game over)", got)
	}
}
