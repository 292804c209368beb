// Package game implements the farming state machine: the four player
// actions, the plot economy, and the leveling curve. All functions here
// mutate an already-normalized SaveState and never touch storage; the
// service layer owns loading, persistence, and the clock.
package game

import "github.com/greenpatch/sprout/internal/domain"

// PlotCost prices the next plot for a save that currently owns
// plotCount plots. The curve is quadratic in the number of plots bought
// beyond the starting two, so late plots are a long-term coin sink.
func PlotCost(plotCount int) int {
	n := plotCount - domain.DefaultPlotCount
	return 200 + 120*n*n + 180*n
}

// clampSlot forces a slot index into the valid range for the save.
// Out-of-range requests act on the nearest edge plot rather than
// failing, matching the deployed client behavior.
func clampSlot(slot, plotCount int) int {
	if slot < 0 {
		return 0
	}
	if slot >= plotCount {
		return plotCount - 1
	}
	return slot
}
