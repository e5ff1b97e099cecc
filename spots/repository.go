// Package spots owns the ordered spot collection and is the only writer to
// persistent storage. Every mutation replaces and re-saves the whole
// collection.
package spots

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shhplace/events"
	"shhplace/models"
	"shhplace/store"
	"shhplace/utils"
)

// AnonymousAuthor is the fixed label for popup comments.
const AnonymousAuthor = "anonymous"

// Repository holds spots in insertion order. Save failures are tolerated:
// the session degrades to in-memory only and the error is logged.
type Repository struct {
	mu    sync.Mutex
	spots []models.Spot
	store store.Store
	log   *utils.Logger
	now   func() time.Time
}

// NewRepository loads the persisted collection and returns the repository.
func NewRepository(st store.Store, log *utils.Logger) (*Repository, error) {
	loaded, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &Repository{
		spots: loaded,
		store: st,
		log:   log,
		now:   time.Now,
	}, nil
}

// Add assigns identity and creation time, normalizes defaults, appends the
// spot and persists. Content uniqueness is not enforced, only id uniqueness.
func (r *Repository) Add(draft models.SpotDraft) models.Spot {
	spot := normalize(draft)
	spot.ID = uuid.NewString()
	spot.CreatedAt = r.now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.spots = append(r.spots, spot)
	r.persist()
	return spot
}

// Delete removes the matching spot. Unknown ids are a silent no-op.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.spots {
		if s.ID == id {
			r.spots = append(r.spots[:i], r.spots[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

// Like increments the like counter by exactly one.
func (r *Repository) Like(id string) bool {
	return r.mutate(id, func(s *models.Spot) { s.Likes++ })
}

// Dislike increments the dislike counter by exactly one.
func (r *Repository) Dislike(id string) bool {
	return r.mutate(id, func(s *models.Spot) { s.Dislikes++ })
}

// Comment appends an anonymous comment to the spot.
func (r *Repository) Comment(id, content string) bool {
	return r.mutate(id, func(s *models.Spot) {
		s.Comments = append(s.Comments, models.Comment{
			ID:        uuid.NewString(),
			Author:    AnonymousAuthor,
			Content:   content,
			CreatedAt: r.now().UTC(),
		})
	})
}

// All returns a copy of the collection in insertion order.
func (r *Repository) All() []models.Spot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Spot, len(r.spots))
	copy(out, r.spots)
	return out
}

// Len reports the number of stored spots.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spots)
}

// Reset empties the collection and clears the persisted slot.
func (r *Repository) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spots = []models.Spot{}
	return r.store.Reset()
}

// SubscribeBridge wires the engagement signal kinds to repository mutations,
// one handler per kind, for the repository's lifetime.
func (r *Repository) SubscribeBridge(b *events.Bridge) {
	b.Subscribe(events.KindLike, func(s events.Signal) { r.Like(s.SpotID) })
	b.Subscribe(events.KindDislike, func(s events.Signal) { r.Dislike(s.SpotID) })
	b.Subscribe(events.KindComment, func(s events.Signal) { r.Comment(s.SpotID, s.Content) })
}

// mutate applies fn to the spot with the given id and persists. Returns
// false without persisting when the id is gone.
func (r *Repository) mutate(id string, fn func(*models.Spot)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.spots {
		if r.spots[i].ID == id {
			fn(&r.spots[i])
			r.persist()
			return true
		}
	}
	return false
}

// persist writes the whole collection. Callers hold the lock. A failed save
// is logged and swallowed: losing durability must not break the session.
func (r *Repository) persist() {
	if err := r.store.Save(r.spots); err != nil {
		r.log.Warn("spots: save failed, continuing in memory: %v", err)
	}
}

// normalize fills the defaults downstream consumers rely on, so predicates
// never need per-field fallbacks. An explicit quiet score is kept even at 0;
// only an absent one is derived from the noise level.
func normalize(d models.SpotDraft) models.Spot {
	noise := d.NoiseLevel
	if noise == 0 {
		noise = models.NoiseDefault
	}
	var quiet int
	if d.QuietScore != nil {
		quiet = *d.QuietScore
	} else {
		// Linear mapping of the 30-80 dB range onto 100-0.
		quiet = (models.NoiseMax - noise) * 100 / (models.NoiseMax - models.NoiseMin)
	}
	var lat, lng float64
	if d.Lat != nil {
		lat = *d.Lat
	}
	if d.Lng != nil {
		lng = *d.Lng
	}
	return models.Spot{
		Lat:         lat,
		Lng:         lng,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Rating:      d.Rating,
		Category:    d.Category,
		Likes:       0,
		Dislikes:    0,
		Comments:    []models.Comment{},
		NoiseLevel:  noise,
		QuietScore:  quiet,
	}
}
