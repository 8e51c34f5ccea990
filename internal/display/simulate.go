package display

import (
	"fmt"
	"io"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

// RenderEnhanceSim prints a Monte Carlo summary of enhance attempts.
func RenderEnhanceSim(w io.Writer, trials int, sim zodiac.EnhanceSim, format string) {
	st := newStyles(w)
	fmt.Fprintln(w, "\n"+st.section.Render(fmt.Sprintf("--- Enhance Simulation (%d trials) ---", trials)))
	fmt.Fprintf(w, "Attempts until success: mean %.3f, p50 %.0f, p90 %.0f, p99 %.0f\n",
		sim.Attempts.Mean, sim.Attempts.P50, sim.Attempts.P90, sim.Attempts.P99)
	fmt.Fprintf(w, "Cost until success: mean %s, p90 %s\n",
		FormatNumber(sim.MeanCost, format), FormatNumber(sim.P90Cost, format))
	if sim.Capped > 0 {
		fmt.Fprintln(w, st.warn.Render(fmt.Sprintf("  %d trials gave up before succeeding", sim.Capped)))
	}
}

// RenderRollSim compares observed tier shares against the expected chances.
func RenderRollSim(w io.Writer, sim zodiac.RollSim, expected zodiac.ChanceVector) {
	st := newStyles(w)
	fmt.Fprintln(w, "\n"+st.section.Render(fmt.Sprintf("--- Rarity Roll Simulation (%d rolls) ---", sim.Rolls)))
	for _, t := range zodiac.AllTiers() {
		if sim.Counts[t] == 0 && expected.Get(t) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %d (%s, expected %s)\n", t, sim.Counts[t],
			FormatPercent(sim.Percent(t), 2), FormatPercent(expected.Get(t), 2))
	}
}
