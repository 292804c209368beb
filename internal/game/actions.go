package game

import (
	"fmt"

	"github.com/greenpatch/sprout/internal/catalog"
	"github.com/greenpatch/sprout/internal/domain"
)

// applyAction dispatches one player action against a normalized save.
// Rejections (not enough coins, plot busy, ...) come back inside the
// result with the save untouched; only malformed requests return an
// error.
func applyAction(s *domain.SaveState, params domain.ActionParams, nowMs int64) (*domain.ActionResult, error) {
	switch params.Action {
	case domain.ActionBuySeed:
		return applyBuySeed(s, params.CropID)
	case domain.ActionBuyPlot:
		return applyBuyPlot(s)
	case domain.ActionPlant:
		return applyPlant(s, params.CropID, params.Slot, nowMs)
	case domain.ActionHarvest:
		return applyHarvest(s, params.Slot, nowMs)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, params.Action)
	}
}

func applyBuySeed(s *domain.SaveState, cropID string) (*domain.ActionResult, error) {
	crop, ok := catalog.Get(cropID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCrop, cropID)
	}
	if s.Coins < crop.SeedPrice {
		return reject(s, domain.RejectInsufficientFunds), nil
	}
	s.Coins -= crop.SeedPrice
	s.Inventory[cropID]++
	return success(s), nil
}

func applyBuyPlot(s *domain.SaveState) (*domain.ActionResult, error) {
	if s.PlotCount >= domain.MaxPlots {
		return reject(s, domain.RejectMaxPlots), nil
	}
	cost := PlotCost(s.PlotCount)
	if s.Coins < cost {
		return reject(s, domain.RejectInsufficientFunds), nil
	}
	s.Coins -= cost
	s.PlotCount++
	s.Plots = append(s.Plots, domain.EmptyPlot(s.PlotCount-1))
	return success(s), nil
}

func applyPlant(s *domain.SaveState, cropID string, slot int, nowMs int64) (*domain.ActionResult, error) {
	crop, ok := catalog.Get(cropID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCrop, cropID)
	}
	slot = clampSlot(slot, s.PlotCount)
	plot := &s.Plots[slot]
	if plot.Status != domain.PlotEmpty {
		return reject(s, domain.RejectPlotBusy), nil
	}
	if s.Inventory[cropID] <= 0 {
		return reject(s, domain.RejectNoSeed), nil
	}
	s.Inventory[cropID]--

	// Snapshot the catalog values onto the plot, so a crop growing
	// through a catalog change keeps the terms it was planted under.
	growSec, reward, xp := crop.GrowSec, crop.Reward, crop.XP
	planted := nowMs
	plot.Status = domain.PlotGrowing
	plot.CropID = &cropID
	plot.PlantedAt = &planted
	plot.GrowSec = &growSec
	plot.Reward = &reward
	plot.XP = &xp
	return success(s), nil
}

func applyHarvest(s *domain.SaveState, slot int, nowMs int64) (*domain.ActionResult, error) {
	slot = clampSlot(slot, s.PlotCount)
	plot := &s.Plots[slot]
	if plot.Status != domain.PlotGrowing {
		return reject(s, domain.RejectNothingToHarvest), nil
	}
	if readyAt := plot.ReadyAt(); nowMs < readyAt {
		r := reject(s, domain.RejectNotReady)
		r.RemainMs = readyAt - nowMs
		return r, nil
	}

	reward, xp := 0, 0
	if plot.Reward != nil {
		reward = *plot.Reward
	}
	if plot.XP != nil {
		xp = *plot.XP
	}

	s.TotalHarvests++
	s.Coins += reward
	s.TotalEarned += reward
	// Crop XP plus a small bonus scaling with the coin reward.
	s.XP += xp + reward/20
	applyLevelUps(s)

	*plot = domain.EmptyPlot(plot.Slot)
	return success(s), nil
}

func success(s *domain.SaveState) *domain.ActionResult {
	return &domain.ActionResult{Save: s}
}

func reject(s *domain.SaveState, reason domain.RejectReason) *domain.ActionResult {
	return &domain.ActionResult{Save: s, Rejected: true, Reason: reason}
}
