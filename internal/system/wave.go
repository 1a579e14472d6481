// internal/system/wave.go
package system

import (
	"log"

	"curve-defense/internal/component"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

// WaveSystem выпускает врагов волнами: волна i состоит из i*EnemiesPerWave врагов,
// между врагами пауза SpawnInterval, между волнами ещё TimeBetweenWaves.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	curve           geom.Curve
	spawner         defs.SpawnerDefinition
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, curve geom.Curve, spawner defs.SpawnerDefinition) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		curve:           curve,
		spawner:         spawner,
	}
}

// Start готовит планировщик: первая волна начнётся в первом же кадре.
func (s *WaveSystem) Start(enemiesPerWave int) *component.Wave {
	wave := &component.Wave{
		Phase:            component.WaveWaiting,
		Total:            s.spawner.TotalWaves,
		EnemiesPerWave:   enemiesPerWave,
		SpawnInterval:    s.spawner.SpawnInterval,
		TimeBetweenWaves: s.spawner.TimeBetweenWaves,
	}
	if wave.Total <= 0 {
		wave.Phase = component.WaveDone
	}
	s.ecs.Wave = wave
	return wave
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Phase == component.WaveDone {
		return
	}
	// После победы или поражения новые враги не появляются.
	if session := s.ecs.Session; session != nil && session.GameOver {
		return
	}

	wave.Countdown -= deltaTime
	for wave.Countdown <= 0 && wave.Phase != component.WaveDone {
		if wave.Phase == component.WaveWaiting {
			s.beginWave(wave)
			continue
		}
		// Не больше одного врага за кадр: отставшие выходят в следующих кадрах.
		s.spawnNext(wave)
		break
	}
}

func (s *WaveSystem) beginWave(wave *component.Wave) {
	wave.Number++
	wave.SpawnedInWave = 0
	wave.Phase = component.WaveSpawning

	log.Printf("Wave %d/%d started: %d enemies", wave.Number, wave.Total, wave.EnemiesToSpawn())
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: wave.Number, Total: wave.Total, Count: wave.EnemiesToSpawn()},
	})

	if wave.EnemiesToSpawn() <= 0 {
		s.finishWave(wave)
	}
}

func (s *WaveSystem) spawnNext(wave *component.Wave) {
	s.spawnCreature(wave.Number)
	wave.SpawnedInWave++
	wave.Countdown += wave.SpawnInterval
	if wave.SpawnedInWave >= wave.EnemiesToSpawn() {
		s.finishWave(wave)
	}
}

// finishWave переключает планировщик на ожидание следующей волны или завершает его.
func (s *WaveSystem) finishWave(wave *component.Wave) {
	if wave.Number < wave.Total {
		wave.Countdown += wave.TimeBetweenWaves
		wave.Phase = component.WaveWaiting
		return
	}
	wave.Phase = component.WaveDone
	log.Println("All waves released")
}

func (s *WaveSystem) spawnCreature(waveNumber int) types.EntityID {
	id := s.ecs.NewEntity()
	start := s.curve.Start()
	s.ecs.Positions[id] = &start
	s.ecs.Creatures[id] = &component.Creature{
		Curve:      s.curve,
		Duration:   s.spawner.PathDuration,
		GoalDamage: s.spawner.GoalDamage,
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CreatureSpawned,
		Data: event.CreatureData{ID: id, Position: start, Wave: waveNumber},
	})
	return id
}
