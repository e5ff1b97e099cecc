package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shhplace/models"
)

func spot(id string, noise, rating int) models.Spot {
	return models.Spot{
		ID:          id,
		Lat:         37.5041,
		Lng:         127.0448,
		Title:       id,
		Description: "test spot",
		NoiseLevel:  noise,
		Rating:      rating,
	}
}

func region(id string, lat, lng, density float64) models.Region {
	return models.Region{
		ID:      id,
		Name:    id,
		Type:    models.RegionDistrict,
		Center:  models.LatLng{Lat: lat, Lng: lng},
		Density: density,
	}
}

func ids(spots []models.Spot) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.ID)
	}
	return out
}

func TestNoiseAndRatingBuckets(t *testing.T) {
	quiet := spot("quiet", 40, 4)
	all := []models.Spot{quiet}

	got := Apply(all, nil, models.SearchFilters{NoiseLevel: models.NoiseQuiet, CrowdLevel: models.CrowdAll, Rating: 3})
	assert.Equal(t, []string{"quiet"}, ids(got), "noiseLevel 40 rating 4 passes quiet+rating>=3")

	got = Apply(all, nil, models.SearchFilters{NoiseLevel: models.NoiseNoisy, CrowdLevel: models.CrowdAll})
	assert.Empty(t, got, "a 40dB spot is not noisy")

	got = Apply(all, nil, models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdAll, Rating: 5})
	assert.Empty(t, got, "rating 4 fails a minimum of 5")
}

func TestNoiseBucketBoundaries(t *testing.T) {
	cases := []struct {
		noise  int
		bucket string
		want   bool
	}{
		{44, models.NoiseQuiet, true},
		{45, models.NoiseQuiet, false},
		{45, models.NoiseModerate, true},
		{59, models.NoiseModerate, true},
		{60, models.NoiseModerate, false},
		{60, models.NoiseNoisy, true},
	}
	for _, tc := range cases {
		got := Apply([]models.Spot{spot("s", tc.noise, 0)}, nil,
			models.SearchFilters{NoiseLevel: tc.bucket, CrowdLevel: models.CrowdAll})
		assert.Equal(t, tc.want, len(got) == 1, "noise %d against bucket %s", tc.noise, tc.bucket)
	}
}

func TestUnsetNoiseDefaultsToModerate(t *testing.T) {
	s := spot("legacy", 0, 0) // records predating normalization
	got := Apply([]models.Spot{s}, nil, models.SearchFilters{NoiseLevel: models.NoiseModerate, CrowdLevel: models.CrowdAll})
	assert.Len(t, got, 1, "missing noise level is treated as 50")
}

func TestCrowdLookupDistanceThreshold(t *testing.T) {
	busy := region("busy", 37.5041, 127.0448, 0.8)

	onCenter := spot("center", 50, 0)
	got := Apply([]models.Spot{onCenter}, []models.Region{busy},
		models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdCrowded})
	assert.Equal(t, []string{"center"}, ids(got), "spot on a 0.8-density center is crowded")

	farAway := spot("far", 50, 0)
	farAway.Lat += 2 // well outside the 0.01-degree threshold
	got = Apply([]models.Spot{farAway}, []models.Region{busy},
		models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdModerate})
	assert.Equal(t, []string{"far"}, ids(got), "no region in range falls back to density 0.5")

	got = Apply([]models.Spot{farAway}, []models.Region{busy},
		models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdCrowded})
	assert.Empty(t, got, "the distant region's density must not leak through")
}

func TestNearestRegionWins(t *testing.T) {
	near := region("near", 37.5042, 127.0448, 0.1)
	nearer := region("close", 37.5041, 127.0449, 0.9)
	s := spot("s", 50, 0)
	s.Lng = 127.04485 // closest to "close"

	got := Apply([]models.Spot{s}, []models.Region{near, nearer},
		models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdCrowded})
	assert.Len(t, got, 1, "density comes from the nearest in-range region")
}

func TestCategoryMembership(t *testing.T) {
	cafe := spot("cafe", 50, 0)
	cafe.Category = models.CategoryCafe
	bare := spot("bare", 50, 0)

	all := []models.Spot{cafe, bare}

	got := Apply(all, nil, models.SearchFilters{NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdAll})
	assert.Len(t, got, 2, "empty category set passes everything")

	got = Apply(all, nil, models.SearchFilters{
		NoiseLevel: models.NoiseAll, CrowdLevel: models.CrowdAll,
		Categories: []string{models.CategoryCafe, models.CategoryOther},
	})
	assert.Equal(t, []string{"cafe"}, ids(got), "uncategorized spots fail a category filter")
}

func TestOrderPreservedAndInputUntouched(t *testing.T) {
	all := []models.Spot{spot("c", 40, 0), spot("a", 70, 0), spot("b", 40, 0)}

	got := Apply(all, nil, models.SearchFilters{NoiseLevel: models.NoiseQuiet, CrowdLevel: models.CrowdAll})
	assert.Equal(t, []string{"c", "b"}, ids(got), "insertion order preserved")
	assert.Equal(t, []string{"c", "a", "b"}, ids(all), "input slice not mutated")
}

func TestEmptyInput(t *testing.T) {
	got := Apply(nil, nil, models.DefaultFilters())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
