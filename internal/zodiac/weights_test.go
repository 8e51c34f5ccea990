package zodiac_test

import (
	"math"
	"testing"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

func TestTierNames(t *testing.T) {
	want := []string{"Garbage", "Common", "Uncommon", "Rare", "Epic", "Legendary", "Mythic", "Godly", "Divine", "Immortal"}
	tiers := zodiac.AllTiers()
	if len(tiers) != len(want) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(want))
	}
	for i, tier := range tiers {
		if tier.String() != want[i] {
			t.Fatalf("tier %d: got %q, want %q", i, tier, want[i])
		}
	}
	if got := zodiac.Tier(zodiac.TierCount).String(); got != "Unknown" {
		t.Fatalf("out of range tier: got %q", got)
	}
}

func TestWeightsAtLuckOne(t *testing.T) {
	w := zodiac.RarityWeights(1)
	want := map[zodiac.Tier]float64{
		zodiac.TierGarbage:  5,
		zodiac.TierCommon:   15,
		zodiac.TierUncommon: 8,
		zodiac.TierRare:     2,
	}
	for _, tier := range zodiac.AllTiers() {
		approx(t, tier.String(), w.Get(tier), want[tier])
	}
}

func TestWeightsDocumentedLuck(t *testing.T) {
	w := zodiac.RarityWeights(zodiac.EffectiveLuck(25))
	approx(t, "Mythic", w.Get(zodiac.TierMythic), 1127.0551324233459)
	approx(t, "Godly", w.Get(zodiac.TierGodly), 14923.645638747435)
	approx(t, "Divine", w.Get(zodiac.TierDivine), 7754.734309359345)
	approx(t, "Immortal", w.Get(zodiac.TierImmortal), 466.09220966476687)
	for _, tier := range zodiac.AllTiers()[:zodiac.TierMythic] {
		if w.Get(tier) != 0 {
			t.Fatalf("%s should be exactly 0, got %v", tier, w.Get(tier))
		}
	}
}

func TestWeightsDropToExactlyZeroAtCutoff(t *testing.T) {
	cutoffs := map[zodiac.Tier]float64{
		zodiac.TierGarbage:   3,
		zodiac.TierCommon:    5,
		zodiac.TierUncommon:  8,
		zodiac.TierRare:      12,
		zodiac.TierEpic:      20,
		zodiac.TierLegendary: 30,
		zodiac.TierMythic:    50,
		zodiac.TierGodly:     60,
		zodiac.TierDivine:    70,
	}
	for tier, cut := range cutoffs {
		if before := zodiac.TierWeight(tier, cut-0.01); before <= 0 {
			t.Fatalf("%s just below cutoff %v should be positive; got %v", tier, cut, before)
		}
		for _, l := range []float64{cut, cut + 0.5, cut * 3} {
			if got := zodiac.TierWeight(tier, l); got != 0 {
				t.Fatalf("%s at luck %v: got %v, want exactly 0", tier, l, got)
			}
		}
	}
}

func TestWeightsZeroBelowLuckOne(t *testing.T) {
	for _, l := range []float64{0.999, 0, -5} {
		w := zodiac.RarityWeights(l)
		if s := w.Sum(); s != 0 {
			t.Fatalf("luck %v: weights should all be 0, sum=%v", l, s)
		}
	}
}

func TestWeightsNonNegative(t *testing.T) {
	for l := -2.0; l < 120; l += 0.25 {
		for _, tier := range zodiac.AllTiers() {
			if v := zodiac.TierWeight(tier, l); v < 0 || math.IsNaN(v) {
				t.Fatalf("%s at luck %v: weight %v", tier, l, v)
			}
		}
	}
}

func TestImmortalHasNoCutoff(t *testing.T) {
	if v := zodiac.TierWeight(zodiac.TierImmortal, 80); math.Abs(v-90844.491862) > 1e-5 {
		t.Fatalf("Immortal at 80: got %v", v)
	}
	if v := zodiac.TierWeight(zodiac.TierImmortal, 1e5); !math.IsInf(v, 1) {
		t.Fatalf("Immortal at extreme luck should overflow to +Inf; got %v", v)
	}
}
