package repository

import (
	"context"

	"github.com/curation-microservice/internal/domain"
)

// FollowRepository persists the follow graph and projects the feed of
// places created by followed users.
type FollowRepository interface {
	// Follow is idempotent: following an already-followed user succeeds.
	Follow(ctx context.Context, followerID, followingID string) error

	Unfollow(ctx context.Context, followerID, followingID string) error

	ListFollowing(ctx context.Context, followerID string) ([]string, error)

	// FeedPlaces lists places created by anyone the user follows, newest
	// first, paginated.
	FeedPlaces(ctx context.Context, userID string, limit, offset int) ([]*domain.Place, int, error)
}
