// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource — источник равномерных случайных чисел для разброса выстрелов.
// В тестах подменяется детерминированной реализацией.
type RandomSource interface {
	// Range возвращает число из [min, max).
	Range(min, max float64) float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид (удобно для логов и повторов).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Range возвращает равномерное случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
