package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xtding233/zodiac-calc/internal/display"
	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

func calc(t *testing.T, in zodiac.StatInput) zodiac.Bundle {
	t.Helper()
	b, err := zodiac.Default().Calculate(in, zodiac.OutAll)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRenderDocumentedExample(t *testing.T) {
	b := calc(t, zodiac.StatInput{
		Rarity:  zodiac.Stat(10),
		Quality: zodiac.Stat(1000),
		Level:   zodiac.Stat(50),
		Luck:    zodiac.Stat(25),
	})
	var buf bytes.Buffer
	if !display.Render(&buf, b, display.Options{Format: display.Scientific, RelicMultiplier: 2}) {
		t.Fatalf("expected output")
	}
	out := buf.String()
	for _, want := range []string{
		"Zodiac Sale Price: 118295.65",
		"With relic (x2): 236591.29",
		"Zodiac Enhance Price: 519850.27",
		"Zodiac Enhance Chance: 38.73%",
		"Zodiac Score: 1.63e+07",
		"Zodiac Luck: 32.270219",
		"Mythic: 4.6435%",
		"Godly: 61.4862%",
		"Divine: 31.9499%",
		"Immortal: 1.9203%",
		"Garbage: 0.0000%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMissingInputs(t *testing.T) {
	b := calc(t, zodiac.StatInput{Quality: zodiac.Stat(1000)})
	var buf bytes.Buffer
	display.Render(&buf, b, display.Options{})
	out := buf.String()
	if !strings.Contains(out, "Zodiac Enhance Chance: 38.73%") {
		t.Fatalf("chance should render:\n%s", out)
	}
	if !strings.Contains(out, "skipped (missing rarity, level)") {
		t.Fatalf("missing fields should be named:\n%s", out)
	}
	if strings.Contains(out, "Rarity Analysis") {
		t.Fatalf("rarity needs luck:\n%s", out)
	}
}

func TestRenderNothing(t *testing.T) {
	var buf bytes.Buffer
	if display.Render(&buf, calc(t, zodiac.StatInput{}), display.Options{}) {
		t.Fatalf("nothing should be reported as printed")
	}
	if !strings.Contains(buf.String(), "No calculations could be performed") {
		t.Fatalf("expected hint text:\n%s", buf.String())
	}
}

func TestRenderDegenerate(t *testing.T) {
	var buf bytes.Buffer
	display.Render(&buf, calc(t, zodiac.StatInput{Luck: zodiac.Stat(0)}), display.Options{ShowBars: true})
	out := buf.String()
	if !strings.Contains(out, "All rarity weights are zero") || strings.Contains(out, "NaN") {
		t.Fatalf("degenerate distribution rendering:\n%s", out)
	}
}

func TestRenderOverflow(t *testing.T) {
	var buf bytes.Buffer
	display.Render(&buf, calc(t, zodiac.StatInput{
		Rarity: zodiac.Stat(1e6), Quality: zodiac.Stat(1), Level: zodiac.Stat(1),
	}), display.Options{})
	if !strings.Contains(buf.String(), "Zodiac Score: ∞ (Infinity)") {
		t.Fatalf("overflow should render as infinity:\n%s", buf.String())
	}
}
