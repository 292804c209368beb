package game

import "github.com/greenpatch/sprout/internal/domain"

// XPThreshold is the XP needed to advance past the given level.
func XPThreshold(level int) int {
	return 20 * level
}

// applyLevelUps consumes accumulated XP into level advances, carrying
// the remainder. A single large XP award can produce several level-ups
// in one call. Returns the number of levels gained.
func applyLevelUps(s *domain.SaveState) int {
	gained := 0
	for s.XP >= XPThreshold(s.Level) {
		s.XP -= XPThreshold(s.Level)
		s.Level++
		gained++
	}
	return gained
}
