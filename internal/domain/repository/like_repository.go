package repository

import (
	"context"

	"github.com/curation-microservice/internal/domain"
)

// LikedFeedFilter scopes a listing of a user's own likes joined to
// their targets.
type LikedFeedFilter struct {
	UserID   string
	District *string
	Category *domain.Category
	Limit    int
	Offset   int
}

// LikeRepository persists like facts. Insert and Delete are idempotent:
// a duplicate-like race or an unlike against a missing row is a silent
// success, never a constraint error surfaced to the caller.
type LikeRepository interface {
	Insert(ctx context.Context, like *domain.Like) error

	Delete(ctx context.Context, userID string, target domain.LikeTarget) error

	Status(ctx context.Context, userID string, target domain.LikeTarget) (bool, error)

	Count(ctx context.Context, target domain.LikeTarget) (int, error)

	// CountByTargets is the grouped-count half of batch enrichment: one
	// query regardless of how many ids are supplied.
	CountByTargets(ctx context.Context, kind domain.LikeTargetKind, ids []string) (map[string]int, error)

	// LikedSet is the membership half: the subset of ids the user likes.
	LikedSet(ctx context.Context, userID string, kind domain.LikeTargetKind, ids []string) (map[string]bool, error)

	ListLikedPlaces(ctx context.Context, filter LikedFeedFilter) ([]*domain.Place, int, error)

	ListLikedRoutes(ctx context.Context, filter LikedFeedFilter) ([]*domain.Route, int, error)
}
