// internal/component/wave.go
package component

// WavePhase — фаза планировщика волн.
type WavePhase int

const (
	// WaveWaiting - ждём начала следующей волны.
	WaveWaiting WavePhase = iota
	// WaveSpawning - выпускаем врагов текущей волны.
	WaveSpawning
	// WaveDone - все волны выпущены, больше ничего не происходит.
	WaveDone
)

func (p WavePhase) String() string {
	switch p {
	case WaveWaiting:
		return "waiting"
	case WaveSpawning:
		return "spawning"
	case WaveDone:
		return "done"
	}
	return "unknown"
}

// Wave хранит состояние планировщика волн.
type Wave struct {
	Phase            WavePhase
	Countdown        float64 // секунд до следующего шага
	Number           int     // номер текущей волны, 1..Total (0 до первой)
	SpawnedInWave    int
	Total            int
	EnemiesPerWave   int // волна i выпускает i*EnemiesPerWave врагов
	SpawnInterval    float64
	TimeBetweenWaves float64
}

// EnemiesToSpawn возвращает размер текущей волны.
func (w *Wave) EnemiesToSpawn() int {
	return w.Number * w.EnemiesPerWave
}
