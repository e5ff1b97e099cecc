package models

// Region granularity tags.
const (
	RegionCity         = "city"
	RegionDistrict     = "district"
	RegionNeighborhood = "neighborhood"
)

// Bounds struct - rectangular bounding box in WGS84 degrees.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// LatLng struct - a point in WGS84 degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Region struct - a named area carrying simulated crowd density and noise.
// Regions are regenerated wholesale on every refresh, never mutated in place,
// and are held only in memory.
type Region struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"` // city | district | neighborhood
	Bounds     Bounds  `json:"bounds"`
	Center     LatLng  `json:"center"`
	Density    float64 `json:"density"`    // 0-1
	NoiseLevel int     `json:"noiseLevel"` // dB, 30-80
}
