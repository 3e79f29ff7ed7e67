package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
)

type likeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLikeRepository(db *DB) repository.LikeRepository {
	return &likeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// targetColumn maps a like-target kind onto the nullable column holding
// its id.
func targetColumn(kind domain.LikeTargetKind) string {
	if kind == domain.LikeTargetRoute {
		return "route_id"
	}
	return "place_id"
}

// Insert is idempotent: a concurrent duplicate like lands on the
// (user_id, target) unique index and is dropped by ON CONFLICT rather
// than surfaced as an error.
func (r *likeRepository) Insert(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (id, user_id, place_id, route_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		like.ID, like.UserID, like.PlaceID, like.RouteID, like.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert like", zap.String("user_id", like.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// Delete is a silent no-op when no like row exists for the pair.
func (r *likeRepository) Delete(ctx context.Context, userID string, target domain.LikeTarget) error {
	query := fmt.Sprintf(`DELETE FROM likes WHERE user_id = $1 AND %s = $2`, targetColumn(target.Kind()))

	if _, err := r.db.ExecContext(ctx, query, userID, target.ID()); err != nil {
		r.logger.Error("Failed to delete like",
			zap.String("user_id", userID),
			zap.String("target_id", target.ID()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *likeRepository) Status(ctx context.Context, userID string, target domain.LikeTarget) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND %s = $2)`,
		targetColumn(target.Kind()),
	)

	var liked bool
	if err := r.db.GetContext(ctx, &liked, query, userID, target.ID()); err != nil {
		r.logger.Error("Failed to get like status", zap.String("user_id", userID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return liked, nil
}

func (r *likeRepository) Count(ctx context.Context, target domain.LikeTarget) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM likes WHERE %s = $1`, targetColumn(target.Kind()))

	var count int
	if err := r.db.GetContext(ctx, &count, query, target.ID()); err != nil {
		r.logger.Error("Failed to count likes", zap.String("target_id", target.ID()), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}

// CountByTargets is one grouped query for the whole id set, regardless
// of its size.
func (r *likeRepository) CountByTargets(
	ctx context.Context,
	kind domain.LikeTargetKind,
	ids []string,
) (map[string]int, error) {
	if len(ids) == 0 {
		return map[string]int{}, nil
	}

	column := targetColumn(kind)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM likes
		WHERE %s = ANY($1)
		GROUP BY %s
	`, column, column, column)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to count likes by targets", zap.Int("targets", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := make(map[string]int, len(ids))
	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			r.logger.Error("Failed to scan like count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate like counts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}

// LikedSet is one membership query for the whole id set.
func (r *likeRepository) LikedSet(
	ctx context.Context,
	userID string,
	kind domain.LikeTargetKind,
	ids []string,
) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	column := targetColumn(kind)
	query := fmt.Sprintf(`SELECT %s FROM likes WHERE user_id = $1 AND %s = ANY($2)`, column, column)

	rows, err := r.db.QueryContext(ctx, query, userID, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load liked set", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	liked := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.logger.Error("Failed to scan liked id", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		liked[id] = true
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate liked set", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return liked, nil
}

func (r *likeRepository) ListLikedPlaces(
	ctx context.Context,
	filter repository.LikedFeedFilter,
) ([]*domain.Place, int, error) {
	where := `WHERE l.user_id = $1 AND l.place_id IS NOT NULL`
	args := []interface{}{filter.UserID}
	argIdx := 2

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

	countQuery := `SELECT COUNT(*) FROM likes l JOIN places p ON p.id = l.place_id ` + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count liked places", zap.String("user_id", filter.UserID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.lat, p.lon, p.address, p.district, p.description,
		       p.link, p.category, p.creator_id, p.created_at, p.updated_at
		FROM likes l
		JOIN places p ON p.id = l.place_id
		%s
		ORDER BY l.created_at DESC, p.id
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to list liked places", zap.String("user_id", filter.UserID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return places, total, nil
}

func (r *likeRepository) ListLikedRoutes(
	ctx context.Context,
	filter repository.LikedFeedFilter,
) ([]*domain.Route, int, error) {
	where := `WHERE l.user_id = $1 AND l.route_id IS NOT NULL`
	args := []interface{}{filter.UserID}
	argIdx := 2

	if filter.District != nil {
		where += fmt.Sprintf(" AND r.district_id = $%d", argIdx)
		args = append(args, *filter.District)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM likes l JOIN routes r ON r.id = l.route_id ` + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count liked routes", zap.String("user_id", filter.UserID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.name, r.description, r.district_id, r.creator_id,
		       r.created_at, r.updated_at
		FROM likes l
		JOIN routes r ON r.id = l.route_id
		%s
		ORDER BY l.created_at DESC, r.id
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	var routes []*domain.Route
	if err := r.db.SelectContext(ctx, &routes, query, args...); err != nil {
		r.logger.Error("Failed to list liked routes", zap.String("user_id", filter.UserID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return routes, total, nil
}
