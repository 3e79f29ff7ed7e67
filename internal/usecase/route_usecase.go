package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
	"github.com/curation-microservice/internal/pkg/pagination"
	"github.com/curation-microservice/internal/usecase/dto"
)

const routeCachePrefix = "routes:district"

type RouteUseCase struct {
	routeRepo repository.RouteRepository
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	enricher  *LikeEnricher
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	enricher *LikeEnricher,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		enricher:  enricher,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Create inserts a route and its ordered stops atomically. The created
// route is returned without re-reading its stops, keeping the write
// path cheap.
func (uc *RouteUseCase) Create(
	ctx context.Context,
	req dto.CreateRouteRequest,
	creatorID string,
) (*domain.Route, error) {
	now := time.Now().UTC()
	route := &domain.Route{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		DistrictID:  req.DistrictID,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	stops, err := uc.buildStops(ctx, route.ID, req.Places)
	if err != nil {
		return nil, err
	}

	if err := uc.routeRepo.Create(ctx, route, stops); err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)
	return route, nil
}

func (uc *RouteUseCase) GetByID(ctx context.Context, id, viewerID string) (*domain.RouteView, error) {
	route, stops, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichRoutes(ctx,
		[]*domain.Route{route},
		map[string][]*domain.RouteStop{route.ID: stops},
		viewerID,
	)
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// Update applies the scalar patch and, if and only if the patch carries
// a places list, replaces the whole stop set in the same transaction.
func (uc *RouteUseCase) Update(
	ctx context.Context,
	id, callerID string,
	req dto.UpdateRouteRequest,
) (*domain.Route, error) {
	route, _, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route.CreatorID != callerID {
		return nil, errors.ErrNotOwner
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.Description != nil {
		route.Description = *req.Description
	}
	if req.DistrictID != nil {
		route.DistrictID = req.DistrictID
	}
	route.UpdatedAt = time.Now().UTC()

	replaceStops := req.Places != nil
	var stops []*domain.RouteStop
	if replaceStops {
		stops, err = uc.buildStops(ctx, route.ID, *req.Places)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.routeRepo.Update(ctx, route, replaceStops, stops); err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)
	return route, nil
}

func (uc *RouteUseCase) Delete(ctx context.Context, id, callerID string) error {
	route, _, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if route.CreatorID != callerID {
		return errors.ErrNotOwner
	}

	if err := uc.routeRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateListings(ctx)
	return nil
}

func (uc *RouteUseCase) ListByCreator(
	ctx context.Context,
	req dto.ListRoutesRequest,
	viewerID string,
) (*dto.RouteListResponse, error) {
	routes, total, err := uc.routeRepo.ListByCreator(ctx, repository.RouteListFilter{
		CreatorID:  req.CreatorID,
		DistrictID: req.DistrictID,
		Limit:      req.Limit,
		Offset:     pagination.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, err
	}

	return uc.buildListResponse(ctx, routes, total, req.Page, req.Limit, viewerID)
}

// ListPublicByDistrict pages public routes of one district, enriched at
// both levels: route likes and per-stop place likes. Anonymous pages
// are cached.
func (uc *RouteUseCase) ListPublicByDistrict(
	ctx context.Context,
	districtID, viewerID string,
	page, limit int,
) (*dto.RouteListResponse, error) {
	cacheKey := ""
	if viewerID == "" && uc.cacheRepo != nil {
		cacheKey = fmt.Sprintf("%s:%s:p:%d:l:%d", routeCachePrefix, districtID, page, limit)
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.RouteListResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	routes, total, err := uc.routeRepo.ListPublicByDistrict(ctx, districtID, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	resp, err := uc.buildListResponse(ctx, routes, total, page, limit, viewerID)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache route listing", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (uc *RouteUseCase) buildListResponse(
	ctx context.Context,
	routes []*domain.Route,
	total, page, limit int,
	viewerID string,
) (*dto.RouteListResponse, error) {
	routeIDs := make([]string, 0, len(routes))
	for _, rt := range routes {
		routeIDs = append(routeIDs, rt.ID)
	}

	stopsByRoute, err := uc.routeRepo.StopsForRoutes(ctx, routeIDs)
	if err != nil {
		return nil, err
	}

	views, err := uc.enricher.EnrichRoutes(ctx, routes, stopsByRoute, viewerID)
	if err != nil {
		return nil, err
	}

	return &dto.RouteListResponse{
		Routes: views,
		Total:  total,
		Page:   pagination.Compute(total, page, limit),
	}, nil
}

// buildStops validates that every referenced place exists and produces
// contiguous 1..N orders following the caller's requested ordering.
func (uc *RouteUseCase) buildStops(
	ctx context.Context,
	routeID string,
	inputs []dto.StopInput,
) ([]*domain.RouteStop, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.PlaceID)
	}

	places, err := uc.placeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(places))
	for _, p := range places {
		known[p.ID] = true
	}

	var missing []string
	for _, in := range inputs {
		if !known[in.PlaceID] {
			missing = append(missing, in.PlaceID)
		}
	}
	if len(missing) > 0 {
		return nil, errors.ErrInvalidStops.WithDetails(map[string]interface{}{
			"missing_place_ids": missing,
		})
	}

	ordered := make([]dto.StopInput, len(inputs))
	copy(ordered, inputs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	stops := make([]*domain.RouteStop, 0, len(ordered))
	for i, in := range ordered {
		stops = append(stops, &domain.RouteStop{
			ID:      uuid.NewString(),
			RouteID: routeID,
			PlaceID: in.PlaceID,
			Order:   i + 1,
			Label:   domain.StopLabel(in.Label),
		})
	}

	return stops, nil
}

func (uc *RouteUseCase) invalidateListings(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.DeleteByPrefix(ctx, routeCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate route listing cache", zap.Error(err))
	}
}
