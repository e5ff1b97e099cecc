package regions

import (
	"context"
	"sync"
	"time"

	"shhplace/models"
	"shhplace/utils"
)

// Scheduler refreshes the region snapshot on a timer: once after a short
// initial delay so the map surface can come up first, then on a fixed
// interval. The snapshot is replaced wholesale, never mutated in place.
type Scheduler struct {
	src          DataSource
	log          *utils.Logger
	initialDelay time.Duration
	interval     time.Duration

	mu      sync.RWMutex
	regions []models.Region
}

func NewScheduler(src DataSource, log *utils.Logger, initialDelay, interval time.Duration) *Scheduler {
	return &Scheduler{
		src:          src,
		log:          log,
		initialDelay: initialDelay,
		interval:     interval,
		regions:      []models.Region{},
	}
}

// Run blocks until ctx is cancelled, refreshing on schedule. The ticker is
// stopped on teardown so no recurring work leaks.
func (s *Scheduler) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.initialDelay):
	}
	s.Refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh()
		}
	}
}

// Refresh fetches a fresh snapshot immediately.
func (s *Scheduler) Refresh() {
	regions := s.src.Fetch()
	s.mu.Lock()
	s.regions = regions
	s.mu.Unlock()
	if s.log != nil {
		s.log.Info("regions: refreshed %d regions", len(regions))
	}
}

// Snapshot returns the latest region set. Empty before the first refresh.
func (s *Scheduler) Snapshot() []models.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Stats reports the average density and noise over the current snapshot,
// zero when no snapshot exists yet.
func (s *Scheduler) Stats() (avgDensity, avgNoise float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.regions) == 0 {
		return 0, 0
	}
	for _, r := range s.regions {
		avgDensity += r.Density
		avgNoise += float64(r.NoiseLevel)
	}
	n := float64(len(s.regions))
	return avgDensity / n, avgNoise / n
}
