package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const routeColumns = `
	id, name, description, district_id, creator_id, created_at, updated_at
`

// Create inserts the route row and every stop row in one transaction.
// Any stop failure aborts the whole operation so no route is left
// behind with a partial stop list.
func (r *routeRepository) Create(ctx context.Context, route *domain.Route, stops []*domain.RouteStop) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin route create transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO routes (id, name, description, district_id, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, query,
		route.ID, route.Name, route.Description, route.DistrictID,
		route.CreatorID, route.CreatedAt, route.UpdatedAt,
	); err != nil {
		r.logger.Error("Failed to insert route", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := insertStops(ctx, tx, stops); err != nil {
		r.logger.Error("Failed to insert route stops",
			zap.String("route_id", route.ID),
			zap.Int("stops", len(stops)),
			zap.Error(err))
		return errors.ErrConflict
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route create", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrConflict
	}

	return nil
}

func insertStops(ctx context.Context, tx *sqlx.Tx, stops []*domain.RouteStop) error {
	query := `
		INSERT INTO route_stops (id, route_id, place_id, stop_order, label)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, stop := range stops {
		if _, err := tx.ExecContext(ctx, query,
			stop.ID, stop.RouteID, stop.PlaceID, stop.Order, stop.Label,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*domain.Route, []*domain.RouteStop, error) {
	query := `SELECT` + routeColumns + `FROM routes WHERE id = $1`

	var route domain.Route
	err := r.db.GetContext(ctx, &route, query, id)
	if err == sql.ErrNoRows {
		return nil, nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.String("id", id), zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}

	stopsByRoute, err := r.StopsForRoutes(ctx, []string{id})
	if err != nil {
		return nil, nil, err
	}

	return &route, stopsByRoute[id], nil
}

// StopsForRoutes loads stops for a whole page of routes in one query,
// ordered by route and ascending stop order, with each stop's place
// joined in.
func (r *routeRepository) StopsForRoutes(ctx context.Context, routeIDs []string) (map[string][]*domain.RouteStop, error) {
	if len(routeIDs) == 0 {
		return map[string][]*domain.RouteStop{}, nil
	}

	query := `
		SELECT
			s.id, s.route_id, s.place_id, s.stop_order, s.label,
			p.id, p.name, p.lat, p.lon, p.address, p.district, p.description,
			p.link, p.category, p.creator_id, p.created_at, p.updated_at
		FROM route_stops s
		JOIN places p ON p.id = s.place_id
		WHERE s.route_id = ANY($1)
		ORDER BY s.route_id, s.stop_order
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(routeIDs))
	if err != nil {
		r.logger.Error("Failed to load route stops", zap.Int("routes", len(routeIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	result := make(map[string][]*domain.RouteStop, len(routeIDs))
	for rows.Next() {
		var stop domain.RouteStop
		var place domain.Place

		err := rows.Scan(
			&stop.ID, &stop.RouteID, &stop.PlaceID, &stop.Order, &stop.Label,
			&place.ID, &place.Name, &place.Lat, &place.Lon,
			&place.Address, &place.District, &place.Description, &place.Link,
			&place.Category, &place.CreatorID, &place.CreatedAt, &place.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan route stop", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		stop.Place = &place
		result[stop.RouteID] = append(result[stop.RouteID], &stop)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate route stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return result, nil
}

// Update writes the scalar fields and, when replaceStops is set,
// replaces the full stop set in the same transaction. Callers submit
// the complete desired stop list; there is no per-stop patching.
func (r *routeRepository) Update(
	ctx context.Context,
	route *domain.Route,
	replaceStops bool,
	newStops []*domain.RouteStop,
) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin route update transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		UPDATE routes
		SET name = $2, description = $3, district_id = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, query,
		route.ID, route.Name, route.Description, route.DistrictID, route.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update route", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	if replaceStops {
		if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE route_id = $1`, route.ID); err != nil {
			r.logger.Error("Failed to clear route stops", zap.String("id", route.ID), zap.Error(err))
			return errors.ErrConflict
		}
		if err := insertStops(ctx, tx, newStops); err != nil {
			r.logger.Error("Failed to replace route stops",
				zap.String("route_id", route.ID),
				zap.Int("stops", len(newStops)),
				zap.Error(err))
			return errors.ErrConflict
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route update", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrConflict
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin route delete transaction", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM route_stops WHERE route_id = $1`,
		`DELETE FROM likes WHERE route_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			r.logger.Error("Failed to delete route dependents", zap.String("id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route delete", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) ListByCreator(
	ctx context.Context,
	filter repository.RouteListFilter,
) ([]*domain.Route, int, error) {
	where := `WHERE creator_id = $1`
	args := []interface{}{filter.CreatorID}
	argIdx := 2

	if filter.DistrictID != nil {
		where += fmt.Sprintf(" AND district_id = $%d", argIdx)
		args = append(args, *filter.DistrictID)
		argIdx++
	}

	return r.list(ctx, where, args, argIdx, filter.Limit, filter.Offset)
}

func (r *routeRepository) ListPublicByDistrict(
	ctx context.Context,
	districtID string,
	limit, offset int,
) ([]*domain.Route, int, error) {
	where := `WHERE district_id = $1`
	args := []interface{}{districtID}
	return r.list(ctx, where, args, 2, limit, offset)
}

func (r *routeRepository) list(
	ctx context.Context,
	where string,
	args []interface{},
	argIdx, limit, offset int,
) ([]*domain.Route, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM routes `+where, args...); err != nil {
		r.logger.Error("Failed to count routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT`+routeColumns+`
		FROM routes
		%s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var routes []*domain.Route
	if err := r.db.SelectContext(ctx, &routes, query, args...); err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return routes, total, nil
}
