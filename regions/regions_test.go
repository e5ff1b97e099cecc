package regions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shhplace/models"
)

func TestMockFetchShape(t *testing.T) {
	regions := NewMockSeeded(1).Fetch()
	require.Len(t, regions, 11, "8 districts + 3 neighborhoods")

	districts, neighborhoods := 0, 0
	for _, r := range regions {
		switch r.Type {
		case models.RegionDistrict:
			districts++
		case models.RegionNeighborhood:
			neighborhoods++
		}
		assert.GreaterOrEqual(t, r.Density, 0.0)
		assert.Less(t, r.Density, 1.0)
		assert.GreaterOrEqual(t, r.NoiseLevel, models.NoiseMin)
		assert.Less(t, r.NoiseLevel, models.NoiseMax)
		assert.NotEmpty(t, r.Name)
	}
	assert.Equal(t, 8, districts)
	assert.Equal(t, 3, neighborhoods)
}

func TestFetchRerollsWholesale(t *testing.T) {
	m := NewMockSeeded(42)
	first := m.Fetch()
	second := m.Fetch()

	require.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].ID, second[0].ID, "region identity is fixed")

	changed := false
	for i := range first {
		if first[i].Density != second[i].Density {
			changed = true
			break
		}
	}
	assert.True(t, changed, "readings are re-rolled on every fetch")
}

func TestVisibleAtZoomTiers(t *testing.T) {
	regions := NewMockSeeded(1).Fetch()

	fine := VisibleAt(regions, 14)
	require.NotEmpty(t, fine)
	for _, r := range fine {
		assert.Equal(t, models.RegionNeighborhood, r.Type, "zoom >= 14 shows the fine layer only")
	}

	for _, zoom := range []int{13, 11, 10, 5} {
		coarse := VisibleAt(regions, zoom)
		require.NotEmpty(t, coarse, "zoom %d", zoom)
		for _, r := range coarse {
			assert.Equal(t, models.RegionDistrict, r.Type, "zoom %d shows districts", zoom)
		}
	}
}

func TestSchedulerRefreshAndStats(t *testing.T) {
	s := NewScheduler(NewMockSeeded(7), nil, time.Hour, time.Hour)

	assert.Empty(t, s.Snapshot(), "no snapshot before the first refresh")
	d, n := s.Stats()
	assert.Zero(t, d)
	assert.Zero(t, n)

	s.Refresh()

	snap := s.Snapshot()
	require.Len(t, snap, 11)
	avgDensity, avgNoise := s.Stats()
	assert.Greater(t, avgDensity, 0.0)
	assert.GreaterOrEqual(t, avgNoise, float64(models.NoiseMin))
	assert.Less(t, avgNoise, float64(models.NoiseMax))
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := NewScheduler(NewMockSeeded(7), nil, time.Millisecond, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Let at least the initial fetch happen, then tear down.
	assert.Eventually(t, func() bool { return len(s.Snapshot()) > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancellation")
	}
}
