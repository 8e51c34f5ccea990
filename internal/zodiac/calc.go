package zodiac

import (
	"errors"
	"fmt"
	"math"
)

// Output selects which results Calculate should produce.
type Output uint8

const (
	OutSalePrice Output = 1 << iota
	OutEnhancePrice
	OutEnhanceChance
	OutScore
	OutRarity

	OutAll = OutSalePrice | OutEnhancePrice | OutEnhanceChance | OutScore | OutRarity
)

// Has reports whether every bit of x is selected.
func (o Output) Has(x Output) bool { return o&x == x }

var ErrNotRequested = errors.New("output not requested")

// Outcome is one scalar result. Err is nil on success; a missing-input
// error means Value carries nothing. ±Inf values are kept, not clamped.
type Outcome struct {
	Value float64
	Err   error
}

// OK reports whether Value holds a real, computed number (Inf included).
func (o Outcome) OK() bool { return o.Err == nil }

// Overflowed reports a computed value outside the finite range.
func (o Outcome) Overflowed() bool { return o.Err == nil && math.IsInf(o.Value, 0) }

// Bundle is everything one calculation produced.
type Bundle struct {
	SalePrice     Outcome
	EnhancePrice  Outcome
	EnhanceChance Outcome // probability in [0,1]
	Score         Outcome

	EffectiveLuck Outcome
	Weights       WeightVector
	Chances       ChanceVector
	// RarityErr is ErrNotRequested, a missing-input error, ErrDegenerateDistribution
	// (Weights and Chances valid, all zero) or nil.
	RarityErr error
}

// HasRarity reports whether Weights and Chances were computed.
func (b Bundle) HasRarity() bool {
	return b.RarityErr == nil || errors.Is(b.RarityErr, ErrDegenerateDistribution)
}

// Any reports whether at least one output produced a value.
func (b Bundle) Any() bool {
	return b.SalePrice.OK() || b.EnhancePrice.OK() || b.EnhanceChance.OK() ||
		b.Score.OK() || b.HasRarity()
}

// Calculator evaluates the formulas against optional stats.
// It holds no state between calls.
type Calculator struct {
	params Params
	log    Logger
}

// New returns a Calculator. A nil log discards output.
func New(p Params, log Logger) *Calculator {
	if log == nil {
		log = NopLogger()
	}
	return &Calculator{params: p, log: log}
}

// Default returns a Calculator with DefaultParams and no logging.
func Default() *Calculator { return New(DefaultParams(), nil) }

// Params returns the constants this Calculator uses.
func (c *Calculator) Params() Params { return c.params }

// Calculate computes every output selected by want. Outputs are
// independent: a missing stat only fails the outputs that need it.
func (c *Calculator) Calculate(in StatInput, want Output) (Bundle, error) {
	if err := in.Validate(); err != nil {
		return Bundle{}, err
	}
	skipped := Outcome{Err: ErrNotRequested}
	b := Bundle{
		SalePrice:     skipped,
		EnhancePrice:  skipped,
		EnhanceChance: skipped,
		Score:         skipped,
		EffectiveLuck: skipped,
		RarityErr:     ErrNotRequested,
	}
	if want.Has(OutSalePrice) {
		b.SalePrice = c.SalePrice(in)
	}
	if want.Has(OutEnhancePrice) {
		b.EnhancePrice = c.EnhancePrice(in)
	}
	if want.Has(OutEnhanceChance) {
		b.EnhanceChance = c.EnhanceChance(in)
	}
	if want.Has(OutScore) {
		b.Score = c.Score(in)
	}
	if want.Has(OutRarity) {
		b.EffectiveLuck = c.EffectiveLuck(in)
		if b.EffectiveLuck.OK() {
			b.Weights = RarityWeights(b.EffectiveLuck.Value)
			b.Chances, b.RarityErr = RarityChances(b.Weights)
			if b.RarityErr != nil {
				c.log.Warn("rarity distribution is degenerate", "luck", b.EffectiveLuck.Value, "err", b.RarityErr)
			} else {
				c.log.Debug("rarity chances calculated", "luck", b.EffectiveLuck.Value)
			}
		} else {
			b.RarityErr = b.EffectiveLuck.Err
		}
	}
	return b, nil
}

func (c *Calculator) SalePrice(in StatInput) Outcome {
	return c.eval("sale price", in, salePriceFields, func() float64 {
		return c.params.SalePrice(*in.Rarity, *in.Quality, *in.Level)
	})
}

func (c *Calculator) EnhancePrice(in StatInput) Outcome {
	return c.eval("enhance price", in, enhancePriceFields, func() float64 {
		return c.params.EnhancePrice(*in.Rarity, *in.Quality, *in.Level)
	})
}

func (c *Calculator) EnhanceChance(in StatInput) Outcome {
	return c.eval("enhance chance", in, enhanceChanceFields, func() float64 {
		return c.params.EnhanceChance(*in.Quality)
	})
}

func (c *Calculator) Score(in StatInput) Outcome {
	return c.eval("score", in, scoreFields, func() float64 {
		return c.params.Score(*in.Rarity, *in.Quality, *in.Level)
	})
}

func (c *Calculator) EffectiveLuck(in StatInput) Outcome {
	return c.eval("effective luck", in, luckFields, func() float64 {
		return c.params.EffectiveLuck(*in.Luck)
	})
}

// eval checks required stats, runs f and classifies its result.
func (c *Calculator) eval(op string, in StatInput, fields []Field, f func() float64) Outcome {
	if err := in.require(op, fields...); err != nil {
		c.log.Debug("skipping calculation", "op", op, "err", err)
		return Outcome{Err: err}
	}
	v := f()
	switch {
	case math.IsNaN(v):
		c.log.Warn("calculation undefined", "op", op)
		return Outcome{Value: v, Err: fmt.Errorf("%s: %w", op, ErrUndefined)}
	case math.IsInf(v, 0):
		c.log.Warn("calculation overflowed", "op", op, "value", v)
	default:
		c.log.Debug("calculated", "op", op, "value", v)
	}
	return Outcome{Value: v}
}
