package zodiac

import (
	cryptoRand "crypto/rand"
	"errors"
	"math"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// DefaultRNG returns a ChaCha8 stream seeded from crypto/rand.
func DefaultRNG() RandomSource {
	var seed [32]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededRNG returns a replicable source for simulations and tests.
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

var ErrInvalidProb = errors.New("invalid probability p; must be 0..1")

// Attempt performs one Bernoulli trial with probability p.
// p <= 0 never succeeds, p >= 1 always does.
func Attempt(p float64, rng RandomSource) (bool, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return false, ErrInvalidProb
	}
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return rng.Float64() < p, nil
}

// RollTier picks a tier with the probabilities in c.
func RollTier(c ChanceVector, rng RandomSource) (Tier, error) {
	total := c.Sum()
	if total <= 0 || math.IsNaN(total) {
		return 0, ErrDegenerateDistribution
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	roll := rng.Float64() * total
	var acc float64
	last := Tier(0)
	for t, v := range c {
		if v <= 0 {
			continue
		}
		acc += v
		last = Tier(t)
		if roll < acc {
			return Tier(t), nil
		}
	}
	// rounding left roll at the very top
	return last, nil
}
