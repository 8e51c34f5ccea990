package zodiac

import "math"

// WeightVector holds one unnormalized weight per tier, indexed by Tier.
type WeightVector [TierCount]float64

// Get returns the weight of tier t.
func (w WeightVector) Get(t Tier) float64 { return w[t] }

// Sum adds every tier's weight.
func (w WeightVector) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

// Each tier has its own piecewise curve in effective luck L.
// Every curve except Immortal is exactly zero below L=1 and at or past its cutoff.
var tierCurves = [TierCount]func(float64) float64{
	TierGarbage:   garbageWeight,
	TierCommon:    commonWeight,
	TierUncommon:  uncommonWeight,
	TierRare:      rareWeight,
	TierEpic:      epicWeight,
	TierLegendary: legendaryWeight,
	TierMythic:    mythicWeight,
	TierGodly:     godlyWeight,
	TierDivine:    divineWeight,
	TierImmortal:  immortalWeight,
}

// RarityWeights evaluates every tier curve at effective luck l.
func RarityWeights(l float64) WeightVector {
	var w WeightVector
	for t, curve := range tierCurves {
		w[t] = curve(l)
	}
	return w
}

// TierWeight evaluates a single tier's curve.
func TierWeight(t Tier, l float64) float64 {
	if t < 0 || int(t) >= TierCount {
		return 0
	}
	return tierCurves[t](l)
}

func garbageWeight(l float64) float64 {
	switch {
	case 1 <= l && l < 2:
		return 5 * math.Pow(0.8, l-1)
	case 2 <= l && l < 3:
		return 5 * math.Pow(0.8, l-1) * math.Pow(0.4, l-2)
	}
	return 0
}

func commonWeight(l float64) float64 {
	switch {
	case 1 <= l && l < 2:
		return 15
	case 2 <= l && l < 5:
		return 15 * math.Pow(0.45, l-2)
	}
	return 0
}

func uncommonWeight(l float64) float64 {
	rise := func() float64 { return 20*math.Pow(1.5, l-1) - 12 }
	switch {
	case 1 <= l && l < 3:
		return rise()
	case 3 <= l && l < 8:
		return rise() * math.Pow(0.5, l-3)
	}
	return 0
}

func rareWeight(l float64) float64 {
	rise := func() float64 { return 30*math.Pow(1.45, l-1) - 28 }
	switch {
	case 1 <= l && l < 5:
		return rise()
	case 5 <= l && l < 12:
		return rise() * math.Pow(0.55, l-5)
	}
	return 0
}

func epicWeight(l float64) float64 {
	rise := func() float64 { return math.Max(0, 45*math.Pow(1.4, l-2)-50) }
	switch {
	case 1 <= l && l < 8:
		return rise()
	case 8 <= l && l < 20:
		return rise() * math.Pow(0.6, l-8)
	}
	return 0
}

func legendaryWeight(l float64) float64 {
	rise := func() float64 { return math.Max(0, 80*math.Pow(1.36, l-3)-100) }
	switch {
	case 1 <= l && l < 12:
		return rise()
	case 12 <= l && l < 30:
		return rise() * math.Pow(0.64, l-12)
	}
	return 0
}

func mythicWeight(l float64) float64 {
	rise := func() float64 { return math.Max(0, 120*math.Pow(1.3, l-5)-140) }
	switch {
	case 1 <= l && l < 20:
		return rise()
	case 20 <= l && l < 50:
		return rise() * math.Pow(0.67, l-20)
	}
	return 0
}

func godlyWeight(l float64) float64 {
	rise := func() float64 { return math.Max(0, 150*math.Pow(1.25, l-8)-200) }
	switch {
	case 1 <= l && l < 30:
		return rise()
	case 30 <= l && l < 60:
		return rise() * math.Pow(0.7, l-30)
	}
	return 0
}

// Divine decays twice: gently from 40, then sharply from 50.
func divineWeight(l float64) float64 {
	rise := func() float64 { return math.Max(0, 200*math.Pow(1.2, l-12)-300) }
	switch {
	case 1 <= l && l < 40:
		return rise()
	case 40 <= l && l < 50:
		return rise() * math.Pow(0.92, l-40)
	case 50 <= l && l < 70:
		return rise() * math.Pow(0.92, l-40) * math.Pow(0.75, l-50)
	}
	return 0
}

// Immortal has no cutoff; it can reach +Inf at extreme luck.
func immortalWeight(l float64) float64 {
	return math.Max(0, 300*math.Pow(1.1, l-20)-500)
}
