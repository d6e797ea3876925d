package dice

import (
	"golang.org/x/exp/rand"
)

// Source produces the randomness behind die rolls, coin tosses and price
// generation. *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// New returns a seeded pseudo-random source. A zero seed is replaced by 1
// so the zero value still yields a usable stream.
func New(seed uint64) Source {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// RollDie returns a uniform int between 1 and 6.
func RollDie(src Source) int {
	return src.Intn(6) + 1
}

// CoinToss returns true with 50% chance. Draws of exactly 0.5 count as true.
func CoinToss(src Source) bool {
	return src.Float64() >= 0.5
}

// Between returns a uniform int in [low, high], both ends included.
func Between(src Source, low, high int) int {
	if low > high {
		panic("low bound cannot exceed high bound")
	}
	return low + src.Intn(high-low+1)
}
