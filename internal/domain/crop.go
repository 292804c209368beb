package domain

// CropDefinition is one row of the crop economy table.
type CropDefinition struct {
	ID        string
	GrowSec   int
	SeedPrice int
	Reward    int
	XP        int
}
