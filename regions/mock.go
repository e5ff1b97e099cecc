// Package regions simulates the crowd-density and noise feed. The region
// set is fixed; density and noise are re-rolled wholesale on every fetch.
package regions

import (
	"math/rand"
	"sync"
	"time"

	"shhplace/models"
)

// DataSource produces a fresh region snapshot. A real telemetry feed can be
// substituted here without touching the filter engine.
type DataSource interface {
	Fetch() []models.Region
}

// Mock rolls uniform density [0,1) and noise [30,80) for a fixed set of
// Seoul districts plus the neighborhoods nested inside Jung-gu.
type Mock struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMock seeds from the clock.
func NewMock() *Mock {
	return &Mock{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewMockSeeded fixes the seed, for deterministic tests.
func NewMockSeeded(seed int64) *Mock {
	return &Mock{rnd: rand.New(rand.NewSource(seed))}
}

type regionDef struct {
	id     string
	name   string
	typ    string
	bounds models.Bounds
	center models.LatLng
}

var regionDefs = []regionDef{
	// Coarse layer: eight districts.
	{"gangnam", "Gangnam-gu", models.RegionDistrict,
		models.Bounds{North: 37.5172, South: 37.4910, East: 127.0694, West: 127.0205},
		models.LatLng{Lat: 37.5041, Lng: 127.0448}},
	{"jung", "Jung-gu", models.RegionDistrict,
		models.Bounds{North: 37.5758, South: 37.5530, East: 126.9988, West: 126.9706},
		models.LatLng{Lat: 37.5644, Lng: 126.9847}},
	{"jongno", "Jongno-gu", models.RegionDistrict,
		models.Bounds{North: 37.5990, South: 37.5692, East: 126.9998, West: 126.9540},
		models.LatLng{Lat: 37.5841, Lng: 126.9769}},
	{"mapo", "Mapo-gu", models.RegionDistrict,
		models.Bounds{North: 37.5664, South: 37.5346, East: 126.9294, West: 126.8966},
		models.LatLng{Lat: 37.5505, Lng: 126.9130}},
	{"yongsan", "Yongsan-gu", models.RegionDistrict,
		models.Bounds{North: 37.5582, South: 37.5203, East: 126.9994, West: 126.9606},
		models.LatLng{Lat: 37.5393, Lng: 126.9800}},
	{"songpa", "Songpa-gu", models.RegionDistrict,
		models.Bounds{North: 37.5319, South: 37.4940, East: 127.1386, West: 127.0632},
		models.LatLng{Lat: 37.5130, Lng: 127.1009}},
	{"seocho", "Seocho-gu", models.RegionDistrict,
		models.Bounds{North: 37.5041, South: 37.4732, East: 127.0694, West: 127.0056},
		models.LatLng{Lat: 37.4887, Lng: 127.0375}},
	{"gangdong", "Gangdong-gu", models.RegionDistrict,
		models.Bounds{North: 37.5319, South: 37.5108, East: 127.1776, West: 127.1096},
		models.LatLng{Lat: 37.5214, Lng: 127.1436}},

	// Fine layer: neighborhoods inside Jung-gu, shown at high zoom.
	{"myeongdong", "Myeongdong", models.RegionNeighborhood,
		models.Bounds{North: 37.5650, South: 37.5600, East: 126.9860, West: 126.9780},
		models.LatLng{Lat: 37.5625, Lng: 126.9820}},
	{"euljiro", "Euljiro", models.RegionNeighborhood,
		models.Bounds{North: 37.5680, South: 37.5630, East: 126.9900, West: 126.9820},
		models.LatLng{Lat: 37.5655, Lng: 126.9860}},
	{"dongdaemun", "Dongdaemun", models.RegionNeighborhood,
		models.Bounds{North: 37.5720, South: 37.5680, East: 126.9980, West: 126.9900},
		models.LatLng{Lat: 37.5700, Lng: 126.9940}},
}

// Fetch builds the full region set with fresh readings.
func (m *Mock) Fetch() []models.Region {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Region, 0, len(regionDefs))
	for _, d := range regionDefs {
		out = append(out, models.Region{
			ID:         d.id,
			Name:       d.name,
			Type:       d.typ,
			Bounds:     d.bounds,
			Center:     d.center,
			Density:    m.rnd.Float64(),
			NoiseLevel: models.NoiseMin + m.rnd.Intn(models.NoiseMax-models.NoiseMin),
		})
	}
	return out
}

// VisibleAt selects the layer for a map zoom level: the fine neighborhood
// layer at zoom 14 and above, the coarse district layer below that. Low and
// moderate zoom share the district layer; there is no city-level dataset.
func VisibleAt(regions []models.Region, zoom int) []models.Region {
	want := models.RegionDistrict
	if zoom >= 14 {
		want = models.RegionNeighborhood
	}
	out := make([]models.Region, 0, len(regions))
	for _, r := range regions {
		if r.Type == want {
			out = append(out, r)
		}
	}
	return out
}
