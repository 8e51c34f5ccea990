package zodiac

import "math"

// ChanceVector holds one percentage in [0,100] per tier, indexed by Tier.
type ChanceVector [TierCount]float64

// Get returns the chance of tier t in percent.
func (c ChanceVector) Get(t Tier) float64 { return c[t] }

// Sum adds every tier's percentage; 100 for any non-degenerate vector.
func (c ChanceVector) Sum() float64 {
	var s float64
	for _, v := range c {
		s += v
	}
	return s
}

// Probability returns the chance of tier t as a fraction in [0,1].
func (c ChanceVector) Probability(t Tier) float64 { return c[t] / 100 }

// RarityChances normalizes weights to percentages summing to 100.
// When every weight is zero it returns an all-zero vector and
// ErrDegenerateDistribution. Infinite weights share 100% evenly.
func RarityChances(w WeightVector) (ChanceVector, error) {
	var c ChanceVector
	total := w.Sum()
	switch {
	case math.IsNaN(total):
		return c, ErrUndefined
	case total == 0:
		return c, ErrDegenerateDistribution
	case math.IsInf(total, 1):
		n := 0
		for _, v := range w {
			if math.IsInf(v, 1) {
				n++
			}
		}
		for t, v := range w {
			if math.IsInf(v, 1) {
				c[t] = 100 / float64(n)
			}
		}
		return c, nil
	}
	for t, v := range w {
		c[t] = v / total * 100
	}
	return c, nil
}
