package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
	"github.com/curation-microservice/internal/pkg/pagination"
	"github.com/curation-microservice/internal/usecase/dto"
)

// LikeUseCase is the like aggregation engine: single-target toggles and
// reads plus the liked-content feeds. Batch enrichment itself lives in
// LikeEnricher so listing usecases can share it.
type LikeUseCase struct {
	likeRepo   repository.LikeRepository
	streamRepo repository.StreamRepository
	enricher   *LikeEnricher
	logger     *zap.Logger
}

func NewLikeUseCase(
	likeRepo repository.LikeRepository,
	streamRepo repository.StreamRepository,
	enricher *LikeEnricher,
	logger *zap.Logger,
) *LikeUseCase {
	return &LikeUseCase{
		likeRepo:   likeRepo,
		streamRepo: streamRepo,
		enricher:   enricher,
		logger:     logger,
	}
}

// resolveTarget enforces the "exactly one of place_id/route_id" rule at
// the API boundary, so both-null and both-set never reach storage.
func resolveTarget(placeID, routeID *string) (domain.LikeTarget, error) {
	switch {
	case placeID != nil && routeID != nil:
		return domain.LikeTarget{}, errors.ErrInvalidLikeTarget
	case placeID != nil:
		return domain.PlaceTarget(*placeID), nil
	case routeID != nil:
		return domain.RouteTarget(*routeID), nil
	default:
		return domain.LikeTarget{}, errors.ErrInvalidLikeTarget
	}
}

// Toggle likes or unlikes one target, idempotently in both directions:
// re-liking a liked target and un-liking a never-liked target are
// silent successes.
func (uc *LikeUseCase) Toggle(ctx context.Context, userID string, req dto.ToggleLikeRequest) error {
	target, err := resolveTarget(req.PlaceID, req.RouteID)
	if err != nil {
		return err
	}

	if req.Like {
		like := &domain.Like{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		if target.Kind() == domain.LikeTargetPlace {
			id := target.ID()
			like.PlaceID = &id
		} else {
			id := target.ID()
			like.RouteID = &id
		}
		if err := uc.likeRepo.Insert(ctx, like); err != nil {
			return err
		}
	} else {
		if err := uc.likeRepo.Delete(ctx, userID, target); err != nil {
			return err
		}
	}

	uc.publishEvent(ctx, userID, target, req.Like)
	return nil
}

// publishEvent hands the toggle to the like stream, best-effort: a
// failed publish only delays cache invalidation until TTL expiry.
func (uc *LikeUseCase) publishEvent(ctx context.Context, userID string, target domain.LikeTarget, liked bool) {
	if uc.streamRepo == nil {
		return
	}
	event := domain.LikeEvent{
		UserID:     userID,
		TargetKind: target.Kind(),
		TargetID:   target.ID(),
		Liked:      liked,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.streamRepo.Publish(ctx, domain.StreamLikeEvents, event); err != nil {
		uc.logger.Warn("Failed to publish like event",
			zap.String("target_id", target.ID()),
			zap.Error(err))
	}
}

func (uc *LikeUseCase) StatusFor(ctx context.Context, userID string, target domain.LikeTarget) (bool, error) {
	if target.IsZero() {
		return false, errors.ErrInvalidLikeTarget
	}
	return uc.likeRepo.Status(ctx, userID, target)
}

func (uc *LikeUseCase) CountFor(ctx context.Context, target domain.LikeTarget) (int, error) {
	if target.IsZero() {
		return 0, errors.ErrInvalidLikeTarget
	}
	return uc.likeRepo.Count(ctx, target)
}

// InfoFor combines count and status in one call. The two reads are
// independent; a stale read of either half is acceptable, so no
// transaction is used.
func (uc *LikeUseCase) InfoFor(ctx context.Context, target domain.LikeTarget, viewerID string) (*domain.LikeInfo, error) {
	if target.IsZero() {
		return nil, errors.ErrInvalidLikeTarget
	}

	count, err := uc.likeRepo.Count(ctx, target)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerID != "" {
		liked, err = uc.likeRepo.Status(ctx, viewerID, target)
		if err != nil {
			return nil, err
		}
	}

	return &domain.LikeInfo{Count: count, Liked: liked}, nil
}

// FeedLikedPlaces pages through the caller's own liked places. Liked is
// trivially true for every row; only the counts need the grouped query.
func (uc *LikeUseCase) FeedLikedPlaces(
	ctx context.Context,
	userID string,
	req dto.LikedFeedRequest,
) (*dto.PlaceListResponse, error) {
	var category *domain.Category
	if req.Category != nil {
		c := domain.Category(*req.Category)
		category = &c
	}

	places, total, err := uc.likeRepo.ListLikedPlaces(ctx, repository.LikedFeedFilter{
		UserID:   userID,
		District: req.District,
		Category: category,
		Limit:    req.Limit,
		Offset:   pagination.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.ID)
	}
	counts, err := uc.likeRepo.CountByTargets(ctx, domain.LikeTargetPlace, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.PlaceView, 0, len(places))
	for _, p := range places {
		views = append(views, domain.PlaceView{
			Place:      *p,
			LikesCount: counts[p.ID],
			IsLiked:    true,
		})
	}

	return &dto.PlaceListResponse{
		Places: views,
		Total:  total,
		Page:   pagination.Compute(total, req.Page, req.Limit),
	}, nil
}

func (uc *LikeUseCase) FeedLikedRoutes(
	ctx context.Context,
	userID string,
	req dto.LikedFeedRequest,
) (*dto.RouteListResponse, error) {
	routes, total, err := uc.likeRepo.ListLikedRoutes(ctx, repository.LikedFeedFilter{
		UserID:   userID,
		District: req.District,
		Limit:    req.Limit,
		Offset:   pagination.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(routes))
	for _, rt := range routes {
		ids = append(ids, rt.ID)
	}
	counts, err := uc.likeRepo.CountByTargets(ctx, domain.LikeTargetRoute, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.RouteView, 0, len(routes))
	for _, rt := range routes {
		views = append(views, domain.RouteView{
			Route:      *rt,
			Stops:      []domain.StopView{},
			LikesCount: counts[rt.ID],
			IsLiked:    true,
		})
	}

	return &dto.RouteListResponse{
		Routes: views,
		Total:  total,
		Page:   pagination.Compute(total, req.Page, req.Limit),
	}, nil
}
