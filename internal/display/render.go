package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

// Options control how results are printed.
type Options struct {
	Format          string
	RelicMultiplier float64 // > 0 adds a "with relic" sale price line
	ShowBars        bool    // draw a bar next to each rarity chance
}

const (
	rule     = "=================================================="
	barWidth = 30
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
	barFill lipgloss.Style
}

// Colors come from the catppuccin palette; a non-terminal writer gets plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#94e2d5")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		barFill: r.NewStyle().Foreground(lipgloss.Color("#94e2d5")),
	}
}

// Render prints a bundle the way the interactive calculator shows it.
// It reports whether anything was printed beyond the header.
func Render(w io.Writer, b zodiac.Bundle, o Options) bool {
	st := newStyles(w)
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, st.title.Render("CALCULATION RESULTS"))
	fmt.Fprintln(w, rule)

	printed := false
	if shown(b.SalePrice) || shown(b.EnhancePrice) || shown(b.EnhanceChance) || shown(b.Score) {
		printed = true
		fmt.Fprintln(w, "\n"+st.section.Render("--- Basic Zodiac Calculations ---"))

		writeOutcome(w, st, "Zodiac Sale Price", b.SalePrice, o.Format)
		if b.SalePrice.OK() {
			fmt.Fprintln(w, st.muted.Render("  Note: This is the base sale price, multiplied by the 'Wolf Skull' Relic"))
			if o.RelicMultiplier > 0 {
				fmt.Fprintf(w, "  With relic (x%g): %s\n", o.RelicMultiplier, FormatNumber(b.SalePrice.Value*o.RelicMultiplier, o.Format))
			}
		}
		writeOutcome(w, st, "Zodiac Enhance Price", b.EnhancePrice, o.Format)
		switch {
		case b.EnhanceChance.OK():
			fmt.Fprintf(w, "Zodiac Enhance Chance: %s\n", FormatProbability(b.EnhanceChance.Value, 2))
		default:
			writeOutcome(w, st, "Zodiac Enhance Chance", b.EnhanceChance, o.Format)
		}
		if b.EnhancePrice.OK() && b.EnhanceChance.OK() {
			cost := zodiac.ExpectedEnhanceCost(b.EnhancePrice.Value, b.EnhanceChance.Value)
			fmt.Fprintf(w, "Expected Cost Until Success: %s\n", FormatNumber(cost, o.Format))
		}
		writeOutcome(w, st, "Zodiac Score", b.Score, o.Format)
	}

	if b.HasRarity() {
		printed = true
		fmt.Fprintln(w, "\n"+st.section.Render("--- Rarity Analysis ---"))
		fmt.Fprintf(w, "Zodiac Luck: %s\n", FormatNumber(b.EffectiveLuck.Value, o.Format))

		fmt.Fprintln(w, "\nRarity Weights:")
		for _, t := range zodiac.AllTiers() {
			fmt.Fprintf(w, "  %s: %s\n", t, FormatNumber(b.Weights.Get(t), o.Format))
		}

		fmt.Fprintln(w, "\nRarity Chances:")
		if errors.Is(b.RarityErr, zodiac.ErrDegenerateDistribution) {
			fmt.Fprintln(w, st.warn.Render("  All rarity weights are zero at this luck; no tier can roll."))
		}
		for _, t := range zodiac.AllTiers() {
			line := fmt.Sprintf("  %s: %s", t, FormatPercent(b.Chances.Get(t), 4))
			if o.ShowBars {
				line += " " + st.barFill.Render(bar(b.Chances.Get(t)))
			}
			fmt.Fprintln(w, line)
		}
	}

	if !printed {
		fmt.Fprintln(w, "\nNo calculations could be performed with the provided inputs.")
		fmt.Fprintln(w, "Please provide the required inputs for the calculations you want to see:")
		fmt.Fprintln(w, "- Sale Price/Score: Requires rarity, quality, and level")
		fmt.Fprintln(w, "- Enhance Price/Chance: Requires quality (and rarity/level for price)")
		fmt.Fprintln(w, "- Rarity Analysis: Requires luck")
	}
	return printed
}

// shown reports outcomes worth a line: computed values and NaN results.
func shown(o zodiac.Outcome) bool {
	return o.OK() || errors.Is(o.Err, zodiac.ErrUndefined)
}

// writeOutcome prints a computed value, or which stats it was missing.
func writeOutcome(w io.Writer, st styles, label string, o zodiac.Outcome, format string) {
	var mi *zodiac.MissingInputError
	switch {
	case o.OK():
		fmt.Fprintf(w, "%s: %s\n", label, FormatNumber(o.Value, format))
	case errors.Is(o.Err, zodiac.ErrUndefined):
		fmt.Fprintf(w, "%s: %s\n", label, FormatNumber(o.Value, format))
	case errors.As(o.Err, &mi):
		names := make([]string, len(mi.Fields))
		for i, f := range mi.Fields {
			names[i] = string(f)
		}
		fmt.Fprintf(w, "%s: %s\n", label, st.muted.Render("skipped (missing "+strings.Join(names, ", ")+")"))
	}
}

func bar(pct float64) string {
	n := int(pct / 100 * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	if n == 0 && pct > 0 {
		return "▏"
	}
	return strings.Repeat("█", n)
}
