// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService: обертка над стандартным генератором случайных чисел Go,
// чтобы во всей игре использовался один предсказуемый (seeded) источник.
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

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a value in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Angle returns a random direction in radians.
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Weighted: элемент таблицы взвешенного выбора.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// ChooseWeighted выполняет взвешенный случайный выбор.
// Суммирует веса, выбирает случайное число в этом диапазоне
// и находит элемент, которому оно соответствует.
func ChooseWeighted[T any](s *PRNGService, entries []Weighted[T]) T {
	var zero T
	if len(entries) == 0 {
		return zero
	}

	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return entries[0].Value
	}

	r := s.Intn(total)
	upto := 0
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if upto+e.Weight > r {
			return e.Value
		}
		upto += e.Weight
	}
	return entries[len(entries)-1].Value
}
