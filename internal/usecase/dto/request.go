package dto

// CreatePlaceRequest - payload for registering a new place.
type CreatePlaceRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Lat         float64  `json:"lat" validate:"min=-90,max=90"`
	Lon         float64  `json:"lon" validate:"min=-180,max=180"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	District    *string  `json:"district,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Link        *string  `json:"link,omitempty" validate:"omitempty,uri"`
	Category    string   `json:"category" validate:"required,oneof=meal drink"`
}

// UpdatePlaceRequest - partial update; nil fields are left untouched.
type UpdatePlaceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Lat         *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon         *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	District    *string  `json:"district,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Link        *string  `json:"link,omitempty" validate:"omitempty,uri"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=meal drink"`
}

// ListPlacesRequest - district listing parameters.
type ListPlacesRequest struct {
	District *string `json:"district,omitempty"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=meal drink"`
	Sort     string  `json:"sort" validate:"omitempty,oneof=recent likes"`
	Page     int     `json:"page" validate:"min=1"`
	Limit    int     `json:"limit" validate:"min=1,max=100"`
}

// ListByCreatorRequest - creator-scoped listing parameters.
type ListByCreatorRequest struct {
	CreatorID string  `json:"creator_id" validate:"required"`
	District  *string `json:"district,omitempty"`
	Category  *string `json:"category,omitempty" validate:"omitempty,oneof=meal drink"`
	Page      int     `json:"page" validate:"min=1"`
	Limit     int     `json:"limit" validate:"min=1,max=100"`
}

// StopInput - one (place, order, label) tuple of a route's stop list.
type StopInput struct {
	PlaceID string `json:"place_id" validate:"required"`
	Order   int    `json:"order" validate:"min=1"`
	Label   string `json:"label" validate:"required,oneof=meal cafe bar"`
}

// CreateRouteRequest - payload for creating a route with its full
// ordered stop list.
type CreateRouteRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	DistrictID  *string     `json:"district_id,omitempty"`
	Places      []StopInput `json:"places" validate:"omitempty,dive"`
}

// UpdateRouteRequest - partial route update. When Places is present the
// entire stop set is replaced with it; when absent, stops are untouched.
type UpdateRouteRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	DistrictID  *string      `json:"district_id,omitempty"`
	Places      *[]StopInput `json:"places,omitempty" validate:"omitempty,dive"`
}

// ListRoutesRequest - route listing parameters.
type ListRoutesRequest struct {
	CreatorID  string  `json:"creator_id,omitempty"`
	DistrictID *string `json:"district_id,omitempty"`
	Page       int     `json:"page" validate:"min=1"`
	Limit      int     `json:"limit" validate:"min=1,max=100"`
}

// ToggleLikeRequest - like/unlike one target. Exactly one of PlaceID /
// RouteID must be set; the usecase enforces this business rule.
type ToggleLikeRequest struct {
	PlaceID *string `json:"place_id,omitempty"`
	RouteID *string `json:"route_id,omitempty"`
	Like    bool    `json:"like"`
}

// LikedFeedRequest - listing of the caller's own liked places/routes.
type LikedFeedRequest struct {
	District *string `json:"district,omitempty"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=meal drink"`
	Page     int     `json:"page" validate:"min=1"`
	Limit    int     `json:"limit" validate:"min=1,max=100"`
}

// FollowRequest - follow/unfollow edge.
type FollowRequest struct {
	FollowingID string `json:"following_id" validate:"required"`
}
