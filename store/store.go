package store

import "shhplace/models"

// Store persists the full spot collection as one serialized text value under
// a fixed slot. Every save rewrites the whole collection; there are no
// partial updates. A missing or corrupt payload loads as an empty collection.
type Store interface {
	Load() ([]models.Spot, error)
	Save(spots []models.Spot) error
	// Reset clears the persisted slot. Development aid for the debug route.
	Reset() error
	Close() error
}
