package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot_ReadyAt(t *testing.T) {
	planted := int64(1_700_000_000_000)
	growSec := 120
	p := Plot{
		Slot:      0,
		Status:    PlotGrowing,
		PlantedAt: &planted,
		GrowSec:   &growSec,
	}
	assert.Equal(t, planted+120_000, p.ReadyAt())

	empty := EmptyPlot(1)
	assert.Equal(t, int64(0), empty.ReadyAt())
}

func TestSaveState_Clone(t *testing.T) {
	cropID := "lettuce"
	planted := int64(100)
	growSec := 120
	s := &SaveState{
		Coins:     50,
		Level:     2,
		Inventory: map[string]int{"lettuce": 1},
		PlotCount: 2,
		Plots: []Plot{
			{Slot: 0, Status: PlotGrowing, CropID: &cropID, PlantedAt: &planted, GrowSec: &growSec},
			EmptyPlot(1),
		},
	}

	c := s.Clone()
	require.Equal(t, s, c)

	// Mutating the clone must not leak back into the original.
	c.Inventory["lettuce"] = 99
	*c.Plots[0].PlantedAt = 200
	assert.Equal(t, 1, s.Inventory["lettuce"])
	assert.Equal(t, int64(100), *s.Plots[0].PlantedAt)
}

func TestSaveState_WireFormat(t *testing.T) {
	s := &SaveState{
		Coins:     50,
		Level:     1,
		PlotCount: 2,
		Inventory: map[string]int{"lettuce": 0},
		Plots:     []Plot{EmptyPlot(0), EmptyPlot(1)},
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	// Stored saves use these exact key names.
	for _, key := range []string{`"coins"`, `"level"`, `"xp"`, `"totalHarvests"`, `"totalEarned"`, `"plotCount"`, `"inv"`, `"plots"`, `"slot"`, `"status"`} {
		assert.Contains(t, string(raw), key)
	}
	assert.NotContains(t, string(raw), `"cropId"`, "empty plots omit snapshot fields")
}
