package repository

import (
	"context"

	"github.com/curation-microservice/internal/domain"
)

// RouteListFilter scopes a route listing.
type RouteListFilter struct {
	CreatorID  string
	DistrictID *string
	Limit      int
	Offset     int
}

// RouteRepository persists routes and their ordered stop sets. Create
// and ReplaceStops are transactional: a mid-sequence failure leaves no
// route with a partial stop list.
type RouteRepository interface {
	// Create inserts the route row and all stop rows atomically. The
	// returned route does not re-read its stops; the write path stays cheap.
	Create(ctx context.Context, route *domain.Route, stops []*domain.RouteStop) error

	// GetByID returns the route with stops in ascending order, each stop
	// carrying its joined place.
	GetByID(ctx context.Context, id string) (*domain.Route, []*domain.RouteStop, error)

	// Update writes the scalar fields. When replaceStops is true the
	// entire existing stop set is deleted and newStops inserted, in the
	// same transaction as the scalar update.
	Update(ctx context.Context, route *domain.Route, replaceStops bool, newStops []*domain.RouteStop) error

	// Delete removes the route, its stops and the likes targeting it.
	// Referenced places are never touched.
	Delete(ctx context.Context, id string) error

	ListByCreator(ctx context.Context, filter RouteListFilter) ([]*domain.Route, int, error)

	ListPublicByDistrict(ctx context.Context, districtID string, limit, offset int) ([]*domain.Route, int, error)

	// StopsForRoutes loads the ordered stops (with joined places) for a
	// page of routes in a single query.
	StopsForRoutes(ctx context.Context, routeIDs []string) (map[string][]*domain.RouteStop, error)
}
