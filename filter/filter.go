// Package filter narrows the spot set against the user's criteria. Apply is
// a pure function and is safe to call on every request.
package filter

import (
	"math"

	"shhplace/models"
)

// Nearest-region matching threshold in degrees, roughly 1km at mid-latitudes.
const regionMatchDegrees = 0.01

// Density assumed for spots with no region within the match threshold.
const defaultDensity = 0.5

// Apply returns the spots passing all four predicates, in their original
// order. The input slices are not mutated.
func Apply(spots []models.Spot, regions []models.Region, f models.SearchFilters) []models.Spot {
	out := make([]models.Spot, 0, len(spots))
	for _, s := range spots {
		if !matchesNoise(s, f.NoiseLevel) {
			continue
		}
		if !matchesCrowd(s, regions, f.CrowdLevel) {
			continue
		}
		if !matchesCategory(s, f.Categories) {
			continue
		}
		if s.Rating < f.Rating {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesNoise(s models.Spot, level string) bool {
	noise := s.NoiseLevel
	if noise == 0 {
		noise = models.NoiseDefault
	}
	switch level {
	case models.NoiseQuiet:
		return noise < 45
	case models.NoiseModerate:
		return noise >= 45 && noise < 60
	case models.NoiseNoisy:
		return noise >= 60
	default: // "all" or unset
		return true
	}
}

func matchesCrowd(s models.Spot, regions []models.Region, level string) bool {
	if level == "" || level == models.CrowdAll {
		return true
	}
	density := densityNear(s, regions)
	switch level {
	case models.CrowdEmpty:
		return density < 0.3
	case models.CrowdModerate:
		return density >= 0.3 && density < 0.7
	case models.CrowdCrowded:
		return density >= 0.7
	default:
		return true
	}
}

// densityNear finds the nearest region center by planar distance in degree
// space. Regions further than the match threshold do not count; with no
// region in range the default density applies.
func densityNear(s models.Spot, regions []models.Region) float64 {
	best := math.MaxFloat64
	density := defaultDensity
	for _, r := range regions {
		d := math.Hypot(r.Center.Lat-s.Lat, r.Center.Lng-s.Lng)
		if d < regionMatchDegrees && d < best {
			best = d
			density = r.Density
		}
	}
	return density
}

func matchesCategory(s models.Spot, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	if s.Category == "" {
		return false
	}
	for _, c := range categories {
		if s.Category == c {
			return true
		}
	}
	return false
}
