// Package save builds and repairs persisted save records. Normalize runs
// before every action so legacy or partially-written saves never reach
// the state machine in a broken shape.
package save

import (
	"encoding/json"

	"github.com/greenpatch/sprout/internal/catalog"
	"github.com/greenpatch/sprout/internal/domain"
)

const startingCoins = 50

// DefaultSave returns the starting state for a brand-new player: two
// empty plots, no seeds, and a small coin allowance to buy the first
// ones.
func DefaultSave() *domain.SaveState {
	s := &domain.SaveState{
		Coins:     startingCoins,
		Level:     1,
		PlotCount: domain.DefaultPlotCount,
		Inventory: make(map[string]int),
	}
	for _, id := range catalog.IDs() {
		s.Inventory[id] = 0
	}
	for i := 0; i < domain.DefaultPlotCount; i++ {
		s.Plots = append(s.Plots, domain.EmptyPlot(i))
	}
	return s
}

// Normalize repairs a possibly partial or legacy save record into a
// structurally complete SaveState. It is idempotent: normalizing an
// already-normal save yields an identical result. Returns
// domain.ErrInvalidSave when the record is not a JSON object.
func Normalize(raw []byte) (*domain.SaveState, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, domain.ErrInvalidSave
	}

	s := &domain.SaveState{
		Coins:         intOr(m["coins"], 0),
		Level:         intOr(m["level"], 1),
		XP:            intOr(m["xp"], 0),
		TotalHarvests: intOr(m["totalHarvests"], 0),
		TotalEarned:   intOr(m["totalEarned"], 0),
		Inventory:     make(map[string]int),
	}

	// Every catalog crop gets an entry; unknown crops are dropped and
	// negative counts reset, keeping the non-negative invariant.
	rawInv, _ := m["inv"].(map[string]any)
	for _, id := range catalog.IDs() {
		n := intOr(rawInv[id], 0)
		if n < 0 {
			n = 0
		}
		s.Inventory[id] = n
	}

	rawPlots, _ := m["plots"].([]any)
	plotCount := intOr(m["plotCount"], 0)
	if plotCount == 0 {
		plotCount = len(rawPlots)
	}
	if plotCount < domain.DefaultPlotCount {
		plotCount = domain.DefaultPlotCount
	}
	if plotCount > domain.MaxPlots {
		plotCount = domain.MaxPlots
	}
	s.PlotCount = plotCount

	// Pad with fresh plots up to plotCount, truncate beyond it.
	s.Plots = make([]domain.Plot, 0, plotCount)
	for i := 0; i < plotCount; i++ {
		if i < len(rawPlots) {
			s.Plots = append(s.Plots, normalizePlot(rawPlots[i], i))
		} else {
			s.Plots = append(s.Plots, domain.EmptyPlot(i))
		}
	}

	return s, nil
}

// normalizePlot coerces one plot record. Anything that is not a
// well-formed growing plot collapses to an empty plot; a growing plot
// with missing numeric fields keeps zeros, which harvest treats as
// immediately ready with no reward.
func normalizePlot(v any, index int) domain.Plot {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.EmptyPlot(index)
	}
	slot := intOr(m["slot"], index)

	status, _ := m["status"].(string)
	cropID, _ := m["cropId"].(string)
	if status != string(domain.PlotGrowing) || cropID == "" {
		return domain.EmptyPlot(slot)
	}

	planted := int64Or(m["plantedAt"], 0)
	growSec := intOr(m["growSec"], 0)
	reward := intOr(m["reward"], 0)
	xp := intOr(m["xp"], 0)
	return domain.Plot{
		Slot:      slot,
		Status:    domain.PlotGrowing,
		CropID:    &cropID,
		PlantedAt: &planted,
		GrowSec:   &growSec,
		Reward:    &reward,
		XP:        &xp,
	}
}

func intOr(v any, def int) int {
	if n, ok := v.(float64); ok {
		return int(n)
	}
	return def
}

func int64Or(v any, def int64) int64 {
	if n, ok := v.(float64); ok {
		return int64(n)
	}
	return def
}
