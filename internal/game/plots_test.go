package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotCost(t *testing.T) {
	// n = plots beyond the starting two: 200 + 120n^2 + 180n
	assert.Equal(t, 200, PlotCost(2))
	assert.Equal(t, 500, PlotCost(3))
	assert.Equal(t, 1040, PlotCost(4))
	assert.Equal(t, 1820, PlotCost(5))
}

func TestPlotCost_Monotonic(t *testing.T) {
	prev := PlotCost(2)
	for count := 3; count < 8; count++ {
		cost := PlotCost(count)
		assert.Greater(t, cost, prev, "cost must rise with plot count %d", count)
		prev = cost
	}
}

func TestClampSlot(t *testing.T) {
	tests := []struct {
		name      string
		slot      int
		plotCount int
		want      int
	}{
		{"negative", -5, 4, 0},
		{"in range", 2, 4, 2},
		{"at count", 4, 4, 3},
		{"far beyond", 99, 4, 3},
		{"zero", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampSlot(tt.slot, tt.plotCount))
		})
	}
}
