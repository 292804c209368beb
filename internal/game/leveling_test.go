package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenpatch/sprout/internal/domain"
)

func TestXPThreshold(t *testing.T) {
	assert.Equal(t, 20, XPThreshold(1))
	assert.Equal(t, 40, XPThreshold(2))
	assert.Equal(t, 200, XPThreshold(10))
}

func TestApplyLevelUps(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		xp         int
		wantLevel  int
		wantXP     int
		wantGained int
	}{
		{"no level up", 1, 19, 1, 19, 0},
		{"exact threshold", 1, 20, 2, 0, 1},
		{"single with remainder", 2, 45, 3, 5, 1},
		{"multiple from one award", 1, 125, 4, 5, 3}, // consumes 20+40+60
		{"zero xp", 1, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &domain.SaveState{Level: tt.level, XP: tt.xp}
			gained := applyLevelUps(s)
			assert.Equal(t, tt.wantLevel, s.Level)
			assert.Equal(t, tt.wantXP, s.XP)
			assert.Equal(t, tt.wantGained, gained)
		})
	}
}
