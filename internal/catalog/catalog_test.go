package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id        string
		growSec   int
		seedPrice int
		reward    int
		xp        int
	}{
		{"lettuce", 120, 5, 10, 3},
		{"corn", 600, 25, 60, 10},
		{"tomato", 3600, 150, 400, 40},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, ok := Get(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, c.ID)
			assert.Equal(t, tt.growSec, c.GrowSec)
			assert.Equal(t, tt.seedPrice, c.SeedPrice)
			assert.Equal(t, tt.reward, c.Reward)
			assert.Equal(t, tt.xp, c.XP)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, ok := Get("weeds")
	assert.False(t, ok)
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.Equal(t, []string{"corn", "lettuce", "tomato"}, ids)

	// Mutating the returned slice must not affect later calls.
	ids[0] = "mutated"
	assert.Equal(t, []string{"corn", "lettuce", "tomato"}, IDs())
}
