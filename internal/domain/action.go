package domain

// Player action identifiers as sent by the mini-app client.
const (
	ActionBuySeed = "buySeed"
	ActionBuyPlot = "buyPlot"
	ActionPlant   = "plant"
	ActionHarvest = "harvest"
)

// ActionParams carries one requested action. CropID and Slot are only
// meaningful for the actions that use them.
type ActionParams struct {
	Action string
	CropID string
	Slot   int
}

// RejectReason is a player-facing explanation for a refused action. A
// rejection is a normal outcome, not an error: the save is left exactly
// as it was.
type RejectReason string

const (
	RejectInsufficientFunds RejectReason = "Not enough coins"
	RejectMaxPlots          RejectReason = "Max plots"
	RejectPlotBusy          RejectReason = "Plot busy"
	RejectNoSeed            RejectReason = "No seed in inventory"
	RejectNothingToHarvest  RejectReason = "Nothing to harvest"
	RejectNotReady          RejectReason = "Not ready yet"
)

// ActionResult is the outcome of applying an action. On success Save is
// the mutated state; on rejection Save is unchanged and Reason explains
// why. RemainMs is set only for "not ready yet" harvests.
type ActionResult struct {
	Save     *SaveState
	Rejected bool
	Reason   RejectReason
	RemainMs int64
}
