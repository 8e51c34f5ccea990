// resolve.go
package profile

import (
	"fmt"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

// Overrides carries command-line values that beat every profile layer.
type Overrides struct {
	Format          *string
	RelicMultiplier *float64
}

// Settings are the presentation knobs resolved from a profile.
type Settings struct {
	Format          string
	RelicMultiplier float64 // 0 means "don't show"
	Version         string  // effective profile version for tracing
}

// Resolve loads the named profile, applies overrides, validates, and
// returns engine params plus display settings.
func (l *Loader) Resolve(name string, o Overrides) (RawProfile, zodiac.Params, Settings, error) {
	raw, err := l.LoadMerged(name)
	if err != nil {
		return RawProfile{}, zodiac.Params{}, Settings{}, err
	}
	if o.Format != nil || o.RelicMultiplier != nil {
		d := DisplayConfig{}
		if raw.Display != nil {
			d = *raw.Display
		}
		if o.Format != nil {
			d.Format = *o.Format
		}
		if o.RelicMultiplier != nil {
			d.RelicMultiplier = o.RelicMultiplier
		}
		raw.Display = &d
	}
	if err := ValidateRaw(raw); err != nil {
		return raw, zodiac.Params{}, Settings{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return raw, Params(raw), settings(raw), nil
}

// Params turns a profile into engine constants, defaulting unset fields.
func Params(raw RawProfile) zodiac.Params {
	p := zodiac.DefaultParams()
	if sc := raw.Luck.SoftCap; sc != nil {
		set(&p.SoftCap.Threshold, sc.Threshold)
		set(&p.SoftCap.Exponent, sc.Exponent)
		set(&p.SoftCap.Scale, sc.Scale)
	}
	set(&p.Base.RarityBase, raw.Score.RarityBase)
	set(&p.Base.RarityBonusAbove, raw.Score.RarityBonusAbove)
	set(&p.Base.RarityBonus, raw.Score.RarityBonus)
	set(&p.Base.LevelBase, raw.Score.LevelBase)
	set(&p.Base.LevelBonusFrom, raw.Score.LevelBonusFrom)
	set(&p.Base.LevelBonusOffset, raw.Score.LevelBonusOffset)
	set(&p.Base.LevelBonusDivisor, raw.Score.LevelBonusDivisor)
	set(&p.Base.LevelBonusExponent, raw.Score.LevelBonusExponent)
	set(&p.Sale.Divisor, raw.Sale.Divisor)
	set(&p.Sale.Exponent, raw.Sale.Exponent)
	set(&p.Sale.RarityGrowth, raw.Sale.RarityGrowth)
	set(&p.Enhance.PriceFactor, raw.Enhance.PriceFactor)
	set(&p.Enhance.PriceGrowth, raw.Enhance.PriceGrowth)
	set(&p.Enhance.ChanceBase, raw.Enhance.ChanceBase)
	return p
}

func settings(raw RawProfile) Settings {
	s := Settings{Format: FormatScientific, Version: raw.Version}
	if raw.Display != nil {
		if raw.Display.Format != "" {
			s.Format = raw.Display.Format
		}
		if raw.Display.RelicMultiplier != nil {
			s.RelicMultiplier = *raw.Display.RelicMultiplier
		}
	}
	return s
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
