// Package recommend implements the rate-limited quiet-spot picker. The
// "AI" here is a deterministic local heuristic over the filtered spot set.
package recommend

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"shhplace/models"
)

// DailyLimit is the number of recommendations allowed per calendar day.
const DailyLimit = 3

// ErrQuotaExhausted rejects a request after the daily limit is spent. Not an
// exceptional condition: state is unchanged and no count is consumed.
var ErrQuotaExhausted = errors.New("daily recommendation limit exhausted")

// Result is a composed recommendation outcome. Matched is false when no
// candidate fit, in which case FocusSpotID is empty and the message asks the
// user to contribute a new spot.
type Result struct {
	Message     string
	Remaining   int
	Matched     bool
	FocusSpotID string
}

// Recommender tracks the remaining daily count, resetting lazily on the
// first call of a new calendar day (local time).
type Recommender struct {
	mu        sync.Mutex
	remaining int
	lastReset string
	delay     time.Duration
	now       func() time.Time
}

// New returns a recommender with a fresh daily quota. The delay simulates
// model latency before each computation.
func New(delay time.Duration) *Recommender {
	return &Recommender{
		remaining: DailyLimit,
		delay:     delay,
		now:       time.Now,
	}
}

// WithClock overrides the clock, for tests exercising the day rollover.
func (r *Recommender) WithClock(now func() time.Time) *Recommender {
	r.now = now
	return r
}

// Recommend picks the best quiet spot from the already-filtered set.
// Successful and no-match invocations both consume one of the day's count;
// only a quota rejection leaves it untouched.
func (r *Recommender) Recommend(filtered []models.Spot) (Result, error) {
	r.mu.Lock()
	now := r.now()
	today := now.Format("2006-01-02")
	if r.lastReset != today {
		r.remaining = DailyLimit
		r.lastReset = today
	}
	if r.remaining <= 0 {
		r.mu.Unlock()
		return Result{}, ErrQuotaExhausted
	}
	r.remaining--
	remaining := r.remaining
	r.mu.Unlock()

	// Simulated processing latency; cheap requests would feel fake.
	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	best, ok := pick(filtered)
	if !ok {
		return Result{
			Message:   noMatchMessage(timeOfDay(now)),
			Remaining: remaining,
		}, nil
	}
	return Result{
		Message:     matchMessage(timeOfDay(now), best),
		Remaining:   remaining,
		Matched:     true,
		FocusSpotID: best.ID,
	}, nil
}

// pick selects the candidate maximizing likes minus dislikes. Candidates
// are spots that are quiet (noise below 50) or net-positively rated; ties
// go to the earliest occurrence.
func pick(spots []models.Spot) (models.Spot, bool) {
	var best models.Spot
	bestScore := 0
	found := false
	for _, s := range spots {
		noise := s.NoiseLevel
		if noise == 0 {
			noise = models.NoiseDefault
		}
		if noise >= models.NoiseDefault && s.Likes <= s.Dislikes {
			continue
		}
		score := s.Likes - s.Dislikes
		if !found || score > bestScore {
			best = s
			bestScore = score
			found = true
		}
	}
	return best, found
}

func timeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func matchMessage(timeLabel string, s models.Spot) string {
	return fmt.Sprintf(
		"For the %s, try %q!\n\n"+
			"Location: %.4f, %.4f\n"+
			"Why: around %ddB, and %d people rated it quiet.\n\n"+
			"%q\n\n"+
			"Check it out on the map!",
		timeLabel, s.Title, s.Lat, s.Lng, s.NoiseLevel, s.Likes, excerpt(s.Description),
	)
}

func noMatchMessage(timeLabel string) string {
	return fmt.Sprintf(
		"No registered spot fits a quiet %s right now.\n\n"+
			"Found a new quiet place? Right-click the map to add it - "+
			"other users will thank you.",
		timeLabel,
	)
}

// excerpt truncates a description to 50 runes with an ellipsis.
func excerpt(desc string) string {
	runes := []rune(desc)
	if len(runes) <= 50 {
		return desc
	}
	return string(runes[:50]) + "..."
}
