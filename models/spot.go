package models

import "time"

// Spot categories - fixed set selectable in the submission form.
const (
	CategoryRestaurant = "restaurant"
	CategoryCafe       = "cafe"
	CategoryAttraction = "attraction"
	CategoryShopping   = "shopping"
	CategoryOther      = "other"
)

// Noise level bounds in dB.
const (
	NoiseMin     = 30
	NoiseMax     = 80
	NoiseDefault = 50
)

// Comment struct - a single anonymous comment owned by its parent spot.
// Immutable once created.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Spot struct - a user-submitted quiet place record.
type Spot struct {
	ID          string    `json:"id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"` // base64 data URL
	Rating      int       `json:"rating"`          // 0 = unrated, else 1-5
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	Comments    []Comment `json:"comments"`
	NoiseLevel  int       `json:"noiseLevel"` // dB, 30-80
	QuietScore  int       `json:"quietScore"` // 0-100
}

// SpotDraft struct - user input for a new spot, before the repository
// assigns identity and normalizes defaults. Coordinates and quiet score are
// pointers so presence can be required without outlawing their zero values
// (latitude/longitude 0 are valid WGS84, quiet score 0 is a valid reading).
type SpotDraft struct {
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Lng         *float64 `json:"lng" validate:"required,longitude"`
	Title       string   `json:"title" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=500"`
	Image       string   `json:"image,omitempty"`
	Rating      int      `json:"rating" validate:"min=0,max=5"`
	Category    string   `json:"category" validate:"omitempty,oneof=restaurant cafe attraction shopping other"`
	NoiseLevel  int      `json:"noiseLevel" validate:"omitempty,min=30,max=80"`
	QuietScore  *int     `json:"quietScore" validate:"omitempty,min=0,max=100"`
}
