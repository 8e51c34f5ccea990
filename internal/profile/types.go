// types.go
package profile

// RawProfile is a formula profile as loaded from YAML. Pointer fields
// distinguish "not set" from zero so layers can be merged.
type RawProfile struct {
	Version string         `yaml:"version"`
	Luck    LuckConfig     `yaml:"luck"`
	Score   ScoreConfig    `yaml:"score"`
	Sale    SaleConfig     `yaml:"sale"`
	Enhance EnhanceConfig  `yaml:"enhance"`
	Display *DisplayConfig `yaml:"display,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`
}

type LuckConfig struct {
	SoftCap *SoftCapConfig `yaml:"soft_cap,omitempty"`
}

type SoftCapConfig struct {
	Threshold *float64 `yaml:"threshold,omitempty"`
	Exponent  *float64 `yaml:"exponent,omitempty"`
	Scale     *float64 `yaml:"scale,omitempty"`
}

type ScoreConfig struct {
	RarityBase         *float64 `yaml:"rarity_base,omitempty"`
	RarityBonusAbove   *float64 `yaml:"rarity_bonus_above,omitempty"`
	RarityBonus        *float64 `yaml:"rarity_bonus,omitempty"`
	LevelBase          *float64 `yaml:"level_base,omitempty"`
	LevelBonusFrom     *float64 `yaml:"level_bonus_from,omitempty"`
	LevelBonusOffset   *float64 `yaml:"level_bonus_offset,omitempty"`
	LevelBonusDivisor  *float64 `yaml:"level_bonus_divisor,omitempty"`
	LevelBonusExponent *float64 `yaml:"level_bonus_exponent,omitempty"`
}

type SaleConfig struct {
	Divisor      *float64 `yaml:"divisor,omitempty"`
	Exponent     *float64 `yaml:"exponent,omitempty"`
	RarityGrowth *float64 `yaml:"rarity_growth,omitempty"`
}

type EnhanceConfig struct {
	PriceFactor *float64 `yaml:"price_factor,omitempty"`
	PriceGrowth *float64 `yaml:"price_growth,omitempty"`
	ChanceBase  *float64 `yaml:"chance_base,omitempty"`
}

type DisplayConfig struct {
	Format          string   `yaml:"format,omitempty"` // "scientific" | "comma" | "si"
	RelicMultiplier *float64 `yaml:"relic_multiplier,omitempty"`
}
