package domain

const (
	// DefaultPlotCount is how many plots a new save starts with.
	DefaultPlotCount = 2
	// MaxPlots caps how many plots a save can ever own.
	MaxPlots = 8
)

// PlotStatus is the lifecycle state of a single plot.
type PlotStatus string

const (
	PlotEmpty   PlotStatus = "empty"
	PlotGrowing PlotStatus = "growing"
)

// Plot is one field slot. A growing plot carries a frozen snapshot of
// the crop it was planted with; an empty plot has all pointers nil so
// the stored JSON stays compact.
type Plot struct {
	Slot      int        `json:"slot"`
	Status    PlotStatus `json:"status"`
	CropID    *string    `json:"cropId,omitempty"`
	PlantedAt *int64     `json:"plantedAt,omitempty"`
	GrowSec   *int       `json:"growSec,omitempty"`
	Reward    *int       `json:"reward,omitempty"`
	XP        *int       `json:"xp,omitempty"`
}

// EmptyPlot returns a cleared plot for the given slot.
func EmptyPlot(slot int) Plot {
	return Plot{Slot: slot, Status: PlotEmpty}
}

// ReadyAt returns the Unix-millisecond time the plot finishes growing.
// Missing timing fields read as zero, which makes the plot immediately
// harvestable.
func (p *Plot) ReadyAt() int64 {
	var planted int64
	if p.PlantedAt != nil {
		planted = *p.PlantedAt
	}
	var growSec int64
	if p.GrowSec != nil {
		growSec = int64(*p.GrowSec)
	}
	return planted + growSec*1000
}

// SaveState is the full persisted state of one player's farm. The JSON
// field names are the stored wire format and must not change.
type SaveState struct {
	Coins         int            `json:"coins"`
	Level         int            `json:"level"`
	XP            int            `json:"xp"`
	TotalHarvests int            `json:"totalHarvests"`
	TotalEarned   int            `json:"totalEarned"`
	PlotCount     int            `json:"plotCount"`
	Inventory     map[string]int `json:"inv"`
	Plots         []Plot         `json:"plots"`
}

// Clone returns a deep copy, including the plot snapshot pointers.
func (s *SaveState) Clone() *SaveState {
	out := *s
	out.Inventory = make(map[string]int, len(s.Inventory))
	for k, v := range s.Inventory {
		out.Inventory[k] = v
	}
	out.Plots = make([]Plot, len(s.Plots))
	for i, p := range s.Plots {
		out.Plots[i] = Plot{
			Slot:      p.Slot,
			Status:    p.Status,
			CropID:    clonePtr(p.CropID),
			PlantedAt: clonePtr(p.PlantedAt),
			GrowSec:   clonePtr(p.GrowSec),
			Reward:    clonePtr(p.Reward),
			XP:        clonePtr(p.XP),
		}
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
