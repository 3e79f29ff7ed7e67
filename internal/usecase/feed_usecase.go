package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/pagination"
	"github.com/curation-microservice/internal/usecase/dto"
)

// FeedUseCase projects the follow graph into a personalized feed of
// places created by followed users.
type FeedUseCase struct {
	followRepo repository.FollowRepository
	enricher   *LikeEnricher
	logger     *zap.Logger
}

func NewFeedUseCase(
	followRepo repository.FollowRepository,
	enricher *LikeEnricher,
	logger *zap.Logger,
) *FeedUseCase {
	return &FeedUseCase{
		followRepo: followRepo,
		enricher:   enricher,
		logger:     logger,
	}
}

func (uc *FeedUseCase) Follow(ctx context.Context, followerID, followingID string) error {
	return uc.followRepo.Follow(ctx, followerID, followingID)
}

func (uc *FeedUseCase) Unfollow(ctx context.Context, followerID, followingID string) error {
	return uc.followRepo.Unfollow(ctx, followerID, followingID)
}

func (uc *FeedUseCase) ListFollowing(ctx context.Context, followerID string) ([]string, error) {
	return uc.followRepo.ListFollowing(ctx, followerID)
}

// FeedFor pages through places created by anyone the user follows,
// newest first, enriched with like data like every other listing.
func (uc *FeedUseCase) FeedFor(
	ctx context.Context,
	userID string,
	page, limit int,
) (*dto.PlaceListResponse, error) {
	places, total, err := uc.followRepo.FeedPlaces(ctx, userID, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichPlaces(ctx, places, userID)
	if err != nil {
		return nil, err
	}

	return &dto.PlaceListResponse{
		Places: views,
		Total:  total,
		Page:   pagination.Compute(total, page, limit),
	}, nil
}
