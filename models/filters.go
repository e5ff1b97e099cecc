package models

// Noise bucket selectors.
const (
	NoiseAll      = "all"
	NoiseQuiet    = "quiet"    // < 45 dB
	NoiseModerate = "moderate" // 45-60 dB
	NoiseNoisy    = "noisy"    // >= 60 dB
)

// Crowd bucket selectors.
const (
	CrowdAll      = "all"
	CrowdEmpty    = "empty"    // density < 0.3
	CrowdModerate = "moderate" // 0.3-0.7
	CrowdCrowded  = "crowded"  // >= 0.7
)

// SearchFilters struct - transient user-selected criteria narrowing the
// visible spot set. Never persisted.
type SearchFilters struct {
	NoiseLevel string   `json:"noiseLevel"`
	CrowdLevel string   `json:"crowdLevel"`
	Categories []string `json:"categories"`
	Rating     int      `json:"rating"`
}

// DefaultFilters returns the pass-everything criteria the UI starts with.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		NoiseLevel: NoiseAll,
		CrowdLevel: CrowdAll,
		Categories: []string{},
		Rating:     0,
	}
}
