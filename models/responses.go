package models

// ErrorResp struct - JSON error envelope shared by every endpoint.
type ErrorResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SpotListResp struct - filtered spot listing.
type SpotListResp struct {
	OK    bool   `json:"ok"`
	Spots []Spot `json:"spots"`
	Total int    `json:"total"`
}

// CreateSpotResp struct - result of a successful submission.
type CreateSpotResp struct {
	OK   bool `json:"ok"`
	Spot Spot `json:"spot"`
}

// RegionListResp struct - visible region layer plus snapshot stats.
type RegionListResp struct {
	OK         bool     `json:"ok"`
	Regions    []Region `json:"regions"`
	AvgDensity float64  `json:"avgDensity"`
	AvgNoise   float64  `json:"avgNoise"`
}

// RecommendationResp struct - outcome of a recommendation request.
type RecommendationResp struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message"`
	Remaining   int    `json:"remaining"`
	Matched     bool   `json:"matched"`
	FocusSpotID string `json:"focusSpotId,omitempty"`
}
