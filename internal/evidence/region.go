package evidence

import "fmt"

// Region identifies which part of the frame a text detection came from.
type Region string

const (
	// RegionFullTimeScore is the full-time result graphic, the most reliable
	// boundary marker in the footage.
	RegionFullTimeScore Region = "ft_score"
	// RegionScoreboard is the persistent in-play score overlay.
	RegionScoreboard Region = "scoreboard"
	// RegionFormation is the pre-match line-up graphic.
	RegionFormation Region = "formation"
)

var allRegions = []Region{RegionFullTimeScore, RegionScoreboard, RegionFormation}

// ParseRegion validates a raw region tag from input data.
func ParseRegion(value string) (Region, error) {
	for _, region := range allRegions {
		if string(region) == value {
			return region, nil
		}
	}
	return "", fmt.Errorf("unknown evidence region %q", value)
}

// Valid reports whether the region is one of the closed set.
func (r Region) Valid() bool {
	for _, region := range allRegions {
		if r == region {
			return true
		}
	}
	return false
}
