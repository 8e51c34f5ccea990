package zodiac_test

import (
	"errors"
	"math"
	"testing"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

func TestAttemptBounds(t *testing.T) {
	got, err := zodiac.Attempt(0, zodiac.NewSeededRNG(1))
	if err != nil || got {
		t.Fatalf("p=0 should never succeed; got=%v err=%v", got, err)
	}
	got, err = zodiac.Attempt(1, zodiac.NewSeededRNG(1))
	if err != nil || !got {
		t.Fatalf("p=1 should always succeed; got=%v err=%v", got, err)
	}
	if _, err := zodiac.Attempt(-0.1, nil); err == nil {
		t.Fatalf("negative p must error")
	}
	if _, err := zodiac.Attempt(1.1, nil); err == nil {
		t.Fatalf("p>1 must error")
	}
}

func TestSimulateEnhanceMatchesGeometricMean(t *testing.T) {
	chance := zodiac.EnhanceChance(1000)
	sim, err := zodiac.SimulateEnhance(zodiac.EnhanceSimParams{
		Chance: chance,
		Price:  100,
		Trials: 50000,
	}, zodiac.NewSeededRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	want := 1 / chance
	if diff := sim.Attempts.Mean - want; math.Abs(diff) > 0.05 {
		t.Fatalf("mean attempts %f not close to %f", sim.Attempts.Mean, want)
	}
	if math.Abs(sim.MeanCost-sim.Attempts.Mean*100) > 1e-9 {
		t.Fatalf("mean cost %v inconsistent with attempts", sim.MeanCost)
	}
	if sim.Attempts.P50 > sim.Attempts.P90 || sim.Attempts.P90 > sim.Attempts.P99 {
		t.Fatalf("percentiles out of order: %+v", sim.Attempts)
	}
	if sim.Capped != 0 {
		t.Fatalf("no trial should hit the cap, got %d", sim.Capped)
	}
}

func TestSimulateEnhanceIsReplicable(t *testing.T) {
	p := zodiac.EnhanceSimParams{Chance: 0.3, Price: 1, Trials: 500}
	a, err := zodiac.SimulateEnhance(p, zodiac.NewSeededRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := zodiac.SimulateEnhance(p, zodiac.NewSeededRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if a.Attempts.Mean != b.Attempts.Mean || a.Attempts.P99 != b.Attempts.P99 {
		t.Fatalf("same seed should give same result")
	}
}

func TestSimulateEnhanceCap(t *testing.T) {
	sim, err := zodiac.SimulateEnhance(zodiac.EnhanceSimParams{
		Chance: 1e-12, Price: 1, Trials: 3, MaxAttempts: 5,
	}, zodiac.NewSeededRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if sim.Capped != 3 || sim.Attempts.Mean != 5 {
		t.Fatalf("expected every trial capped at 5: %+v", sim)
	}
	if _, err := zodiac.SimulateEnhance(zodiac.EnhanceSimParams{Chance: 0, Trials: 1}, nil); !errors.Is(err, zodiac.ErrInvalidProb) {
		t.Fatalf("zero chance must error, got %v", err)
	}
}

func TestSimulateRollsApproximatesChances(t *testing.T) {
	c, err := zodiac.RarityChances(zodiac.RarityWeights(zodiac.EffectiveLuck(25)))
	if err != nil {
		t.Fatal(err)
	}
	sim, err := zodiac.SimulateRolls(c, 100000, zodiac.NewSeededRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	if sim.Rolls != 100000 {
		t.Fatalf("rolls = %d", sim.Rolls)
	}
	for _, tier := range zodiac.AllTiers() {
		want := c.Get(tier)
		got := sim.Percent(tier)
		if want == 0 && got != 0 {
			t.Fatalf("%s has 0%% chance but was rolled %d times", tier, sim.Counts[tier])
		}
		if math.Abs(got-want) > 1 {
			t.Fatalf("%s: observed %.3f%%, expected %.3f%%", tier, got, want)
		}
	}
}

func TestRollTierDegenerate(t *testing.T) {
	if _, err := zodiac.RollTier(zodiac.ChanceVector{}, nil); !errors.Is(err, zodiac.ErrDegenerateDistribution) {
		t.Fatalf("expected ErrDegenerateDistribution, got %v", err)
	}
}
