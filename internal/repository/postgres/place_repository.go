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

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const placeColumns = `
	id, name, lat, lon, address, district, description, link,
	category, creator_id, created_at, updated_at
`

func (r *placeRepository) Create(ctx context.Context, place *domain.Place) error {
	query := `
		INSERT INTO places (
			id, name, lat, lon, address, district, description, link,
			category, creator_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		place.ID, place.Name, place.Lat, place.Lon,
		place.Address, place.District, place.Description, place.Link,
		place.Category, place.CreatorID, place.CreatedAt, place.UpdatedAt,
	)
	if err != nil {
		// A race past the pre-insert duplicate probe lands here as a
		// rejected insert on the (creator_id, address) unique index.
		if isUniqueViolation(err) {
			return errors.ErrDuplicateAddress
		}
		r.logger.Error("Failed to insert place", zap.String("id", place.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	query := `SELECT` + placeColumns + `FROM places WHERE id = $1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Place, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT` + placeColumns + `FROM places WHERE id = ANY($1)`

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get places by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) ListByDistrict(
	ctx context.Context,
	filter repository.PlaceListFilter,
) ([]*domain.Place, int, error) {
	where := `WHERE (p.creator_id = $1 OR p.creator_id = $2)`
	args := []interface{}{filter.MainCuratorID, filter.ViewerID}
	argIdx := 3

	if filter.District != nil {
		where += fmt.Sprintf(" AND p.district = $%d", argIdx)
		args = append(args, *filter.District)
		argIdx++
	}
	if filter.Category != nil {
		where += fmt.Sprintf(" AND p.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM places p ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count places by district", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	orderBy := `ORDER BY p.created_at DESC, p.id`
	join := ``
	if filter.Sort == domain.SortLikes {
		// Like-count sort breaks ties on creation time descending, then
		// id, to keep ordering stable across pages.
		join = `
		LEFT JOIN (
			SELECT place_id, COUNT(*) AS cnt
			FROM likes
			WHERE place_id IS NOT NULL
			GROUP BY place_id
		) l ON l.place_id = p.id`
		orderBy = `ORDER BY COALESCE(l.cnt, 0) DESC, p.created_at DESC, p.id`
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.lat, p.lon, p.address, p.district, p.description,
		       p.link, p.category, p.creator_id, p.created_at, p.updated_at
		FROM places p %s
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, join, where, orderBy, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to list places by district", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return places, total, nil
}

func (r *placeRepository) ListByCreator(
	ctx context.Context,
	filter repository.CreatorListFilter,
) ([]*domain.Place, int, error) {
	where := `WHERE creator_id = $1`
	args := []interface{}{filter.CreatorID}
	argIdx := 2

	if filter.District != nil {
		where += fmt.Sprintf(" AND district = $%d", argIdx)
		args = append(args, *filter.District)
		argIdx++
	}
	if filter.Category != nil {
		where += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM places `+where, args...); err != nil {
		r.logger.Error("Failed to count places by creator", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT`+placeColumns+`
		FROM places
		%s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to list places by creator", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return places, total, nil
}

func (r *placeRepository) Update(ctx context.Context, place *domain.Place) error {
	query := `
		UPDATE places
		SET name = $2, lat = $3, lon = $4, address = $5, district = $6,
		    description = $7, link = $8, category = $9, updated_at = $10
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		place.ID, place.Name, place.Lat, place.Lon,
		place.Address, place.District, place.Description, place.Link,
		place.Category, place.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateAddress
		}
		r.logger.Error("Failed to update place", zap.String("id", place.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.String("id", place.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrPlaceNotFound
	}

	return nil
}

// Delete removes the place and everything referencing it: route stops
// are cascaded here because the place is the source of truth and routes
// merely reference it.
func (r *placeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin delete transaction", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	steps := []struct {
		query string
	}{
		{`DELETE FROM route_stops WHERE place_id = $1`},
		{`DELETE FROM likes WHERE place_id = $1`},
		{`DELETE FROM places WHERE id = $1`},
	}

	var affected int64
	for i, step := range steps {
		res, err := tx.ExecContext(ctx, step.query, id)
		if err != nil {
			r.logger.Error("Failed to delete place", zap.String("id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
		if i == len(steps)-1 {
			affected, _ = res.RowsAffected()
		}
	}

	if affected == 0 {
		return errors.ErrPlaceNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit place delete", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) ExistsByAddress(ctx context.Context, creatorID, address string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM places WHERE creator_id = $1 AND address = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, creatorID, address); err != nil {
		r.logger.Error("Failed to probe duplicate address",
			zap.String("creator_id", creatorID),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}
