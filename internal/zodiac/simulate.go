package zodiac

import (
	"math"
	"sort"
)

// Stats summarizes integer samples from a simulation.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// raw samples for callers that want histograms
	Samples []int `json:"-"`
}

func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// EnhanceSim is the result of SimulateEnhance.
type EnhanceSim struct {
	Attempts Stats   // attempts until the first success, per trial
	MeanCost float64 // Attempts.Mean * price
	P90Cost  float64
	// Capped counts trials that hit MaxAttempts without succeeding.
	Capped int
}

// EnhanceSimParams configures SimulateEnhance.
type EnhanceSimParams struct {
	Chance      float64 // per-attempt success probability
	Price       float64 // cost of one attempt
	Trials      int
	MaxAttempts int // <= 0 means 10000
}

// SimulateEnhance repeats enhance attempts until success, Trials times.
func SimulateEnhance(p EnhanceSimParams, rng RandomSource) (EnhanceSim, error) {
	if p.Trials <= 0 {
		return EnhanceSim{}, nil
	}
	if p.Chance <= 0 || math.IsNaN(p.Chance) || p.Chance > 1 {
		return EnhanceSim{}, ErrInvalidProb
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	limit := p.MaxAttempts
	if limit <= 0 {
		limit = 10000
	}

	var sim EnhanceSim
	samples := make([]int, p.Trials)
	for i := range samples {
		attempts := 0
		for {
			attempts++
			ok, err := Attempt(p.Chance, rng)
			if err != nil {
				return EnhanceSim{}, err
			}
			if ok {
				break
			}
			if attempts >= limit {
				sim.Capped++
				break
			}
		}
		samples[i] = attempts
	}
	sim.Attempts = calcStats(samples)
	sim.MeanCost = sim.Attempts.Mean * p.Price
	sim.P90Cost = sim.Attempts.P90 * p.Price
	return sim, nil
}

// RollSim tallies SimulateRolls.
type RollSim struct {
	Rolls  int
	Counts [TierCount]int
}

// Percent returns the observed share of tier t in percent.
func (r RollSim) Percent(t Tier) float64 {
	if r.Rolls == 0 {
		return 0
	}
	return float64(r.Counts[t]) / float64(r.Rolls) * 100
}

// SimulateRolls draws n tiers from c and counts them.
func SimulateRolls(c ChanceVector, n int, rng RandomSource) (RollSim, error) {
	sim := RollSim{}
	if n <= 0 {
		return sim, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	for i := 0; i < n; i++ {
		t, err := RollTier(c, rng)
		if err != nil {
			return RollSim{}, err
		}
		sim.Counts[t]++
		sim.Rolls++
	}
	return sim, nil
}
