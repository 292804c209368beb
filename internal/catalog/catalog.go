// Package catalog holds the static crop economy table. The table is
// built once at process start and never mutated; in-flight crops carry
// frozen copies of these values (see the plant action), so editing the
// table between releases only affects future plantings.
package catalog

import (
	"sort"

	"github.com/greenpatch/sprout/internal/domain"
)

var crops = map[string]domain.CropDefinition{
	"lettuce": {ID: "lettuce", GrowSec: 120, SeedPrice: 5, Reward: 10, XP: 3},
	"corn":    {ID: "corn", GrowSec: 600, SeedPrice: 25, Reward: 60, XP: 10},
	"tomato":  {ID: "tomato", GrowSec: 3600, SeedPrice: 150, Reward: 400, XP: 40},
}

var ids = sortedIDs()

// Get returns the definition for a crop identifier.
func Get(id string) (domain.CropDefinition, bool) {
	c, ok := crops[id]
	return c, ok
}

// IDs returns every crop identifier in lexicographic order. The slice is
// a copy; callers may keep it.
func IDs() []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func sortedIDs() []string {
	out := make([]string, 0, len(crops))
	for id := range crops {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
