package dto

import (
	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/pkg/pagination"
)

// PlaceListResponse - one page of like-enriched places.
type PlaceListResponse struct {
	Places []domain.PlaceView  `json:"places"`
	Total  int                 `json:"total"`
	Page   pagination.PageInfo `json:"page"`
}

// RouteListResponse - one page of like-enriched routes with stops.
type RouteListResponse struct {
	Routes []domain.RouteView  `json:"routes"`
	Total  int                 `json:"total"`
	Page   pagination.PageInfo `json:"page"`
}

// ExistsResponse - duplicate-address probe result.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// FollowingResponse - ids the caller follows.
type FollowingResponse struct {
	Following []string `json:"following"`
}
