package zodiac

import "math"

// EffectiveLuck applies the soft cap. Below the threshold luck passes
// through unchanged; at exactly the threshold it drops to 0.
func (p Params) EffectiveLuck(raw float64) float64 {
	if raw < p.SoftCap.Threshold {
		return raw
	}
	return math.Pow(raw-p.SoftCap.Threshold, p.SoftCap.Exponent) * p.SoftCap.Scale
}

// EffectiveLuck applies the default soft cap (threshold 18, exponent 0.3).
func EffectiveLuck(raw float64) float64 { return defaultParams.EffectiveLuck(raw) }
