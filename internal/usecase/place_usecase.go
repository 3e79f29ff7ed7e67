package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
	"github.com/curation-microservice/internal/pkg/pagination"
	"github.com/curation-microservice/internal/usecase/dto"
)

// placeCachePrefix keys anonymous district listing pages.
const placeCachePrefix = "places:district"

type PlaceUseCase struct {
	placeRepo     repository.PlaceRepository
	cacheRepo     repository.CacheRepository
	enricher      *LikeEnricher
	logger        *zap.Logger
	mainCuratorID string
	cacheTTL      time.Duration
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	enricher *LikeEnricher,
	logger *zap.Logger,
	mainCuratorID string,
	cacheTTL time.Duration,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo:     placeRepo,
		cacheRepo:     cacheRepo,
		enricher:      enricher,
		logger:        logger,
		mainCuratorID: mainCuratorID,
		cacheTTL:      cacheTTL,
	}
}

// Create registers a place for creatorID. The pre-insert duplicate
// probe and the unique index both guard the (creator, address) pair; a
// race between them surfaces as DuplicateAddress either way.
func (uc *PlaceUseCase) Create(
	ctx context.Context,
	req dto.CreatePlaceRequest,
	creatorID string,
) (*domain.PlaceView, error) {
	if req.Address != nil {
		exists, err := uc.placeRepo.ExistsByAddress(ctx, creatorID, *req.Address)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.ErrDuplicateAddress
		}
	}

	now := time.Now().UTC()
	place := &domain.Place{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Address:     req.Address,
		District:    req.District,
		Description: req.Description,
		Link:        req.Link,
		Category:    domain.Category(req.Category),
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	return &domain.PlaceView{Place: *place}, nil
}

func (uc *PlaceUseCase) GetByID(ctx context.Context, id, viewerID string) (*domain.PlaceView, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichPlaces(ctx, []*domain.Place{place}, viewerID)
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// ListByDistrict pages through places visible to the viewer: those
// created by the main curator account or by the viewer themselves.
// Anonymous pages are served from cache when available; a stale page is
// acceptable for these reads.
func (uc *PlaceUseCase) ListByDistrict(
	ctx context.Context,
	req dto.ListPlacesRequest,
	viewerID string,
) (*dto.PlaceListResponse, error) {
	sort := domain.PlaceSort(req.Sort)
	if req.Sort == "" {
		sort = domain.SortRecent
	}
	if !sort.Valid() {
		return nil, errors.ErrInvalidRequest
	}

	cacheKey := ""
	if viewerID == "" && uc.cacheRepo != nil {
		cacheKey = uc.listingCacheKey(req, sort)
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.PlaceListResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var category *domain.Category
	if req.Category != nil {
		c := domain.Category(*req.Category)
		category = &c
	}

	places, total, err := uc.placeRepo.ListByDistrict(ctx, repository.PlaceListFilter{
		District:      req.District,
		Category:      category,
		ViewerID:      viewerID,
		MainCuratorID: uc.mainCuratorID,
		Sort:          sort,
		Limit:         req.Limit,
		Offset:        pagination.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichPlaces(ctx, places, viewerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlaceListResponse{
		Places: views,
		Total:  total,
		Page:   pagination.Compute(total, req.Page, req.Limit),
	}

	if cacheKey != "" {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache place listing", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (uc *PlaceUseCase) ListByCreator(
	ctx context.Context,
	req dto.ListByCreatorRequest,
	viewerID string,
) (*dto.PlaceListResponse, error) {
	var category *domain.Category
	if req.Category != nil {
		c := domain.Category(*req.Category)
		category = &c
	}

	places, total, err := uc.placeRepo.ListByCreator(ctx, repository.CreatorListFilter{
		CreatorID: req.CreatorID,
		District:  req.District,
		Category:  category,
		Limit:     req.Limit,
		Offset:    pagination.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichPlaces(ctx, places, viewerID)
	if err != nil {
		return nil, err
	}

	return &dto.PlaceListResponse{
		Places: views,
		Total:  total,
		Page:   pagination.Compute(total, req.Page, req.Limit),
	}, nil
}

// Update applies a partial patch after the ownership check. The check
// is read-then-decide: a rename racing a delete fails with NotFound.
func (uc *PlaceUseCase) Update(
	ctx context.Context,
	id, callerID string,
	req dto.UpdatePlaceRequest,
) (*domain.PlaceView, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place.CreatorID != callerID {
		return nil, errors.ErrNotOwner
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Lat != nil {
		place.Lat = *req.Lat
	}
	if req.Lon != nil {
		place.Lon = *req.Lon
	}
	if req.Address != nil {
		place.Address = req.Address
	}
	if req.District != nil {
		place.District = req.District
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Link != nil {
		place.Link = req.Link
	}
	if req.Category != nil {
		place.Category = domain.Category(*req.Category)
	}
	place.UpdatedAt = time.Now().UTC()

	if err := uc.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	views, err := uc.enricher.EnrichPlaces(ctx, []*domain.Place{place}, callerID)
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

func (uc *PlaceUseCase) Delete(ctx context.Context, id, callerID string) error {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if place.CreatorID != callerID {
		return errors.ErrNotOwner
	}

	if err := uc.placeRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateListings(ctx)
	return nil
}

// Exists is the duplicate probe used by client-side pre-validation.
func (uc *PlaceUseCase) Exists(ctx context.Context, creatorID, address string) (bool, error) {
	return uc.placeRepo.ExistsByAddress(ctx, creatorID, address)
}

func (uc *PlaceUseCase) listingCacheKey(req dto.ListPlacesRequest, sort domain.PlaceSort) string {
	district := "-"
	if req.District != nil {
		district = *req.District
	}
	category := "-"
	if req.Category != nil {
		category = *req.Category
	}
	return fmt.Sprintf("%s:%s:cat:%s:sort:%s:p:%d:l:%d",
		placeCachePrefix, district, category, sort, req.Page, req.Limit)
}

func (uc *PlaceUseCase) invalidateListings(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.DeleteByPrefix(ctx, placeCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate place listing cache", zap.Error(err))
	}
}
