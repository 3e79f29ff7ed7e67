package domain

import "time"

// StopLabel is the semantic role a place plays inside a route.
type StopLabel string

const (
	StopLabelMeal StopLabel = "meal"
	StopLabelCafe StopLabel = "cafe"
	StopLabelBar  StopLabel = "bar"
)

func (l StopLabel) Valid() bool {
	return l == StopLabelMeal || l == StopLabelCafe || l == StopLabelBar
}

// Route is an ordered, named sequence of place references inside an
// optional district. Its stops are owned entirely by the route: they are
// created, replaced and deleted only as part of a route mutation.
type Route struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	DistrictID  *string   `json:"district_id,omitempty" db:"district_id"`
	CreatorID   string    `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RouteStop pins a place to a position in a route. Order is unique
// within a route and produced contiguously as 1..N by this layer.
type RouteStop struct {
	ID      string    `json:"id" db:"id"`
	RouteID string    `json:"route_id" db:"route_id"`
	PlaceID string    `json:"place_id" db:"place_id"`
	Order   int       `json:"order" db:"stop_order"`
	Label   StopLabel `json:"label" db:"label"`

	// Place is filled by read paths that join stops to their places.
	Place *Place `json:"place,omitempty" db:"-"`
}

// StopView is a RouteStop whose embedded place carries like aggregates.
type StopView struct {
	ID      string    `json:"id"`
	Order   int       `json:"order"`
	Label   StopLabel `json:"label"`
	Place   PlaceView `json:"place"`
	PlaceID string    `json:"place_id"`
}

// RouteView is a Route hydrated with its ordered stops and like
// aggregates for one viewer.
type RouteView struct {
	Route
	Stops      []StopView `json:"stops"`
	LikesCount int        `json:"likes_count"`
	IsLiked    bool       `json:"is_liked"`
}
