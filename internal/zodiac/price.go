package zodiac

import "math"

// RarityBonus is 2 above rarity 8, else 1.
func (p Params) RarityBonus(rarity float64) float64 {
	if rarity > p.Base.RarityBonusAbove {
		return p.Base.RarityBonus
	}
	return 1
}

// LevelBonus is ((level-90)/10)^2.5 from level 100 on, else 1.
func (p Params) LevelBonus(level float64) float64 {
	if level >= p.Base.LevelBonusFrom {
		return math.Pow((level-p.Base.LevelBonusOffset)/p.Base.LevelBonusDivisor, p.Base.LevelBonusExponent)
	}
	return 1
}

func (p Params) base(rarity, quality, level float64) float64 {
	return math.Pow(p.Base.RarityBase, rarity) *
		quality *
		(p.Base.LevelBase + level*level) *
		p.RarityBonus(rarity) *
		p.LevelBonus(level)
}

// Score is the overall performance metric of a zodiac.
func (p Params) Score(rarity, quality, level float64) float64 {
	return p.base(rarity, quality, level)
}

// SalePrice is the base sale price before any relic multiplier.
// It shares the score's base term today but is kept separate on purpose.
func (p Params) SalePrice(rarity, quality, level float64) float64 {
	b := p.base(rarity, quality, level) / p.Sale.Divisor
	return math.Pow(b, p.Sale.Exponent) * math.Pow(p.Sale.RarityGrowth, rarity)
}

// EnhancePrice scales the sale price by a quality-driven curve.
func (p Params) EnhancePrice(rarity, quality, level float64) float64 {
	sale := p.SalePrice(rarity, quality, level)
	return sale * p.Enhance.PriceFactor * math.Pow(p.Enhance.PriceGrowth, math.Log10(1+quality))
}

// EnhanceChance is the probability in [0,1] that one enhance succeeds.
func (p Params) EnhanceChance(quality float64) float64 {
	q := math.Log10(1 + quality)
	return math.Pow(p.Enhance.ChanceBase, q*q)
}

func Score(rarity, quality, level float64) float64 {
	return defaultParams.Score(rarity, quality, level)
}

func SalePrice(rarity, quality, level float64) float64 {
	return defaultParams.SalePrice(rarity, quality, level)
}

func EnhancePrice(rarity, quality, level float64) float64 {
	return defaultParams.EnhancePrice(rarity, quality, level)
}

func EnhanceChance(quality float64) float64 {
	return defaultParams.EnhanceChance(quality)
}

// ExpectedEnhanceCost is the mean spend until one enhance succeeds,
// price/chance for a geometric number of attempts.
func ExpectedEnhanceCost(price, chance float64) float64 {
	if chance <= 0 {
		return math.Inf(1)
	}
	return price / chance
}
