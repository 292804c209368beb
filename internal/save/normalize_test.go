package save

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpatch/sprout/internal/domain"
)

func TestDefaultSave(t *testing.T) {
	s := DefaultSave()

	assert.Equal(t, 50, s.Coins)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, domain.DefaultPlotCount, s.PlotCount)
	assert.Len(t, s.Plots, domain.DefaultPlotCount)
	for i, p := range s.Plots {
		assert.Equal(t, i, p.Slot)
		assert.Equal(t, domain.PlotEmpty, p.Status)
	}
	assert.Equal(t, map[string]int{"corn": 0, "lettuce": 0, "tomato": 0}, s.Inventory)
}

func TestNormalize_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", "not json"},
		{"JSON null", "null"},
		{"JSON array", "[1,2,3]"},
		{"JSON string", `"save"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.raw))
			assert.ErrorIs(t, err, domain.ErrInvalidSave)
		})
	}
}

func TestNormalize_EmptyObject(t *testing.T) {
	s, err := Normalize([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 0, s.Coins)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, domain.DefaultPlotCount, s.PlotCount)
	assert.Len(t, s.Plots, domain.DefaultPlotCount)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := []byte(`{
		"coins": 37,
		"level": 3,
		"xp": 12,
		"totalHarvests": 9,
		"totalEarned": 210,
		"plotCount": 3,
		"inv": {"lettuce": 2, "corn": 1},
		"plots": [
			{"slot": 0, "status": "empty"},
			{"slot": 1, "status": "growing", "cropId": "lettuce", "plantedAt": 1700000000000, "growSec": 120, "reward": 10, "xp": 3},
			{"slot": 2, "status": "empty"}
		]
	}`)

	first, err := Normalize(raw)
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := Normalize(encoded)
	require.NoError(t, err)

	reencoded, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(encoded), string(reencoded))
	assert.Equal(t, first, second)
}

func TestNormalize_Inventory(t *testing.T) {
	s, err := Normalize([]byte(`{"inv": {"lettuce": -4, "corn": 2, "weeds": 99}}`))
	require.NoError(t, err)

	// Negatives reset, unknown crops dropped, missing crops zeroed.
	assert.Equal(t, map[string]int{"lettuce": 0, "corn": 2, "tomato": 0}, s.Inventory)
}

func TestNormalize_PlotCountClamping(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
	}{
		{"below minimum", `{"plotCount": 1}`, 2},
		{"zero defaults", `{"plotCount": 0}`, 2},
		{"above maximum", `{"plotCount": 50}`, 8},
		{"derived from plots", `{"plots": [{}, {}, {}]}`, 3},
		{"in range", `{"plotCount": 5}`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, s.PlotCount)
			assert.Len(t, s.Plots, tt.wantCount)
		})
	}
}

func TestNormalize_PlotPaddingAndTruncation(t *testing.T) {
	// plotCount 4 with only one stored plot: pad with empties.
	s, err := Normalize([]byte(`{"plotCount": 4, "plots": [{"slot": 0, "status": "growing", "cropId": "corn", "plantedAt": 1, "growSec": 600, "reward": 60, "xp": 10}]}`))
	require.NoError(t, err)
	require.Len(t, s.Plots, 4)
	assert.Equal(t, domain.PlotGrowing, s.Plots[0].Status)
	for i := 1; i < 4; i++ {
		assert.Equal(t, domain.PlotEmpty, s.Plots[i].Status)
		assert.Equal(t, i, s.Plots[i].Slot)
	}

	// plotCount 2 with four stored plots: truncate the extras.
	s, err = Normalize([]byte(`{"plotCount": 2, "plots": [{}, {}, {}, {}]}`))
	require.NoError(t, err)
	assert.Len(t, s.Plots, 2)
}

func TestNormalize_BrokenPlots(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"growing without cropId", `{"plots": [{"slot": 0, "status": "growing"}, {}]}`},
		{"unknown status", `{"plots": [{"slot": 0, "status": "flooded", "cropId": "corn"}, {}]}`},
		{"plot not an object", `{"plots": [17, {}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, domain.PlotEmpty, s.Plots[0].Status)
			assert.Nil(t, s.Plots[0].CropID)
		})
	}
}

func TestNormalize_GrowingPlotKeepsZeroNumerics(t *testing.T) {
	s, err := Normalize([]byte(`{"plots": [{"slot": 0, "status": "growing", "cropId": "lettuce"}, {}]}`))
	require.NoError(t, err)

	p := s.Plots[0]
	require.Equal(t, domain.PlotGrowing, p.Status)
	require.NotNil(t, p.CropID)
	assert.Equal(t, "lettuce", *p.CropID)
	// Missing numerics come back as zeros, making the plot immediately
	// harvestable for no reward.
	assert.Equal(t, int64(0), p.ReadyAt())
}

func TestNormalize_NonNumericFieldsCoerce(t *testing.T) {
	s, err := Normalize([]byte(`{"coins": "lots", "level": true, "xp": 5.9}`))
	require.NoError(t, err)

	assert.Equal(t, 0, s.Coins)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 5, s.XP)
}
