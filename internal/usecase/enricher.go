package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
)

// LikeEnricher attaches like aggregates to pages of places and routes.
// Cost is O(1) store queries per page regardless of page size: one
// grouped count per target kind plus, when a viewer is present, one
// membership query per target kind.
type LikeEnricher struct {
	likeRepo repository.LikeRepository
	logger   *zap.Logger
}

func NewLikeEnricher(likeRepo repository.LikeRepository, logger *zap.Logger) *LikeEnricher {
	return &LikeEnricher{
		likeRepo: likeRepo,
		logger:   logger,
	}
}

// EnrichPlaces maps N places to N views with two queries at most.
func (e *LikeEnricher) EnrichPlaces(
	ctx context.Context,
	places []*domain.Place,
	viewerID string,
) ([]domain.PlaceView, error) {
	views := make([]domain.PlaceView, 0, len(places))
	if len(places) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.ID)
	}

	counts, err := e.likeRepo.CountByTargets(ctx, domain.LikeTargetPlace, ids)
	if err != nil {
		return nil, err
	}

	liked := map[string]bool{}
	if viewerID != "" {
		liked, err = e.likeRepo.LikedSet(ctx, viewerID, domain.LikeTargetPlace, ids)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range places {
		views = append(views, domain.PlaceView{
			Place:      *p,
			LikesCount: counts[p.ID],
			IsLiked:    liked[p.ID],
		})
	}

	return views, nil
}

// EnrichRoutes hydrates a page of routes at both aggregation levels:
// route-level likes and place-level likes for every stop, still with a
// fixed number of queries for the whole page.
func (e *LikeEnricher) EnrichRoutes(
	ctx context.Context,
	routes []*domain.Route,
	stopsByRoute map[string][]*domain.RouteStop,
	viewerID string,
) ([]domain.RouteView, error) {
	views := make([]domain.RouteView, 0, len(routes))
	if len(routes) == 0 {
		return views, nil
	}

	routeIDs := make([]string, 0, len(routes))
	for _, rt := range routes {
		routeIDs = append(routeIDs, rt.ID)
	}

	// Distinct place ids across every stop of every listed route.
	placeIDSet := map[string]struct{}{}
	for _, stops := range stopsByRoute {
		for _, s := range stops {
			placeIDSet[s.PlaceID] = struct{}{}
		}
	}
	placeIDs := make([]string, 0, len(placeIDSet))
	for id := range placeIDSet {
		placeIDs = append(placeIDs, id)
	}

	routeCounts, err := e.likeRepo.CountByTargets(ctx, domain.LikeTargetRoute, routeIDs)
	if err != nil {
		return nil, err
	}
	placeCounts, err := e.likeRepo.CountByTargets(ctx, domain.LikeTargetPlace, placeIDs)
	if err != nil {
		return nil, err
	}

	routeLiked := map[string]bool{}
	placeLiked := map[string]bool{}
	if viewerID != "" {
		routeLiked, err = e.likeRepo.LikedSet(ctx, viewerID, domain.LikeTargetRoute, routeIDs)
		if err != nil {
			return nil, err
		}
		placeLiked, err = e.likeRepo.LikedSet(ctx, viewerID, domain.LikeTargetPlace, placeIDs)
		if err != nil {
			return nil, err
		}
	}

	for _, rt := range routes {
		stops := stopsByRoute[rt.ID]
		stopViews := make([]domain.StopView, 0, len(stops))
		for _, s := range stops {
			sv := domain.StopView{
				ID:      s.ID,
				Order:   s.Order,
				Label:   s.Label,
				PlaceID: s.PlaceID,
			}
			if s.Place != nil {
				sv.Place = domain.PlaceView{
					Place:      *s.Place,
					LikesCount: placeCounts[s.PlaceID],
					IsLiked:    placeLiked[s.PlaceID],
				}
			}
			stopViews = append(stopViews, sv)
		}

		views = append(views, domain.RouteView{
			Route:      *rt,
			Stops:      stopViews,
			LikesCount: routeCounts[rt.ID],
			IsLiked:    routeLiked[rt.ID],
		})
	}

	return views, nil
}
