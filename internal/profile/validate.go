package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrProfileConfig = errors.New("invalid formula profile")

// Display formats understood by internal/display.
const (
	FormatScientific = "scientific"
	FormatComma      = "comma"
	FormatSI         = "si"
)

// ValidateRaw checks semantic constraints of a merged profile.
func ValidateRaw(cfg RawProfile) error {
	var errs []string
	positive := func(name string, v *float64) {
		if v != nil && !(*v > 0 && !math.IsInf(*v, 0)) {
			errs = append(errs, name+" must be > 0")
		}
	}
	finite := func(name string, v *float64) {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			errs = append(errs, name+" must be finite")
		}
	}

	if sc := cfg.Luck.SoftCap; sc != nil {
		finite("luck.soft_cap.threshold", sc.Threshold)
		positive("luck.soft_cap.exponent", sc.Exponent)
		positive("luck.soft_cap.scale", sc.Scale)
	}

	positive("score.rarity_base", cfg.Score.RarityBase)
	finite("score.rarity_bonus_above", cfg.Score.RarityBonusAbove)
	positive("score.rarity_bonus", cfg.Score.RarityBonus)
	finite("score.level_base", cfg.Score.LevelBase)
	finite("score.level_bonus_from", cfg.Score.LevelBonusFrom)
	finite("score.level_bonus_offset", cfg.Score.LevelBonusOffset)
	positive("score.level_bonus_divisor", cfg.Score.LevelBonusDivisor)
	positive("score.level_bonus_exponent", cfg.Score.LevelBonusExponent)

	positive("sale.divisor", cfg.Sale.Divisor)
	positive("sale.exponent", cfg.Sale.Exponent)
	positive("sale.rarity_growth", cfg.Sale.RarityGrowth)

	positive("enhance.price_factor", cfg.Enhance.PriceFactor)
	positive("enhance.price_growth", cfg.Enhance.PriceGrowth)
	if cb := cfg.Enhance.ChanceBase; cb != nil && !(*cb > 0 && *cb <= 1) {
		errs = append(errs, "enhance.chance_base must be in (0,1]")
	}

	if d := cfg.Display; d != nil {
		switch d.Format {
		case "", FormatScientific, FormatComma, FormatSI:
		default:
			errs = append(errs, "display.format must be one of: scientific, comma, si")
		}
		if d.RelicMultiplier != nil && !(*d.RelicMultiplier >= 0) {
			errs = append(errs, "display.relic_multiplier must be >= 0 (0 disables it)")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrProfileConfig, strings.Join(errs, "; "))
	}
	return nil
}
