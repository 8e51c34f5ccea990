package zodiac

// SoftCap attenuates luck above Threshold:
// effective = (raw - Threshold)^Exponent * Scale.
type SoftCap struct {
	Threshold float64
	Exponent  float64
	Scale     float64
}

// ScoreParams shape the base term shared by score and sale price:
// RarityBase^rarity * quality * (LevelBase + level^2) * rarityBonus * levelBonus.
type ScoreParams struct {
	RarityBase         float64
	RarityBonusAbove   float64 // rarityBonus applies when rarity > this
	RarityBonus        float64
	LevelBase          float64
	LevelBonusFrom     float64 // levelBonus applies when level >= this
	LevelBonusOffset   float64
	LevelBonusDivisor  float64
	LevelBonusExponent float64
}

// SaleParams: sale = (base/Divisor)^Exponent * RarityGrowth^rarity.
type SaleParams struct {
	Divisor      float64
	Exponent     float64
	RarityGrowth float64
}

// EnhanceParams:
// price  = sale * PriceFactor * PriceGrowth^log10(1+quality)
// chance = ChanceBase^(log10(1+quality)^2)
type EnhanceParams struct {
	PriceFactor float64
	PriceGrowth float64
	ChanceBase  float64
}

// Params holds every tunable constant of the price/score/luck formulas.
// Tier weight curves are fixed and live in weights.go.
type Params struct {
	SoftCap SoftCap
	Base    ScoreParams
	Sale    SaleParams
	Enhance EnhanceParams
}

// DefaultParams returns the community-documented constants.
func DefaultParams() Params {
	return Params{
		SoftCap: SoftCap{Threshold: 18, Exponent: 0.3, Scale: 18},
		Base: ScoreParams{
			RarityBase:         1.125,
			RarityBonusAbove:   8,
			RarityBonus:        2,
			LevelBase:          9,
			LevelBonusFrom:     100,
			LevelBonusOffset:   90,
			LevelBonusDivisor:  10,
			LevelBonusExponent: 2.5,
		},
		Sale:    SaleParams{Divisor: 10, Exponent: 0.75, RarityGrowth: 1.1},
		Enhance: EnhanceParams{PriceFactor: 2, PriceGrowth: 1.3, ChanceBase: 0.9},
	}
}

var defaultParams = DefaultParams()
