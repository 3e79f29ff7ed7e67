package domain

import "time"

// Category classifies a place by what it serves.
type Category string

const (
	CategoryMeal  Category = "meal"
	CategoryDrink Category = "drink"
)

func (c Category) Valid() bool {
	return c == CategoryMeal || c == CategoryDrink
}

// Place is a point of interest registered by a creator. (creator_id,
// address) is unique when address is present: a creator cannot register
// the same address twice.
type Place struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Lat         float64   `json:"lat" db:"lat"`
	Lon         float64   `json:"lon" db:"lon"`
	Address     *string   `json:"address,omitempty" db:"address"`
	District    *string   `json:"district,omitempty" db:"district"`
	Description string    `json:"description" db:"description"`
	Link        *string   `json:"link,omitempty" db:"link"`
	Category    Category  `json:"category" db:"category"`
	CreatorID   string    `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PlaceView is a Place hydrated with like aggregates for one viewer.
// Produced by a mapping step, never by mutating the persisted shape.
type PlaceView struct {
	Place
	LikesCount int  `json:"likes_count"`
	IsLiked    bool `json:"is_liked"`
}

// PlaceSort selects the ordering of place listings.
type PlaceSort string

const (
	// SortRecent orders by creation time descending.
	SortRecent PlaceSort = "recent"
	// SortLikes orders by like count descending; ties break on creation
	// time descending, then id, so the ordering is stable.
	SortLikes PlaceSort = "likes"
)

func (s PlaceSort) Valid() bool {
	return s == SortRecent || s == SortLikes
}
