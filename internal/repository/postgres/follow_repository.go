package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
)

type followRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFollowRepository(db *DB) repository.FollowRepository {
	return &followRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID string) error {
	edge := domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES (:follower_id, :following_id, :created_at)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, edge); err != nil {
		r.logger.Error("Failed to insert follow",
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		r.logger.Error("Failed to delete follow",
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *followRepository) ListFollowing(ctx context.Context, followerID string) ([]string, error) {
	query := `SELECT following_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`

	var following []string
	if err := r.db.SelectContext(ctx, &following, query, followerID); err != nil {
		r.logger.Error("Failed to list following", zap.String("follower_id", followerID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return following, nil
}

func (r *followRepository) FeedPlaces(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*domain.Place, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM places p
		JOIN follows f ON f.following_id = p.creator_id
		WHERE f.follower_id = $1
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		r.logger.Error("Failed to count feed places", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT p.id, p.name, p.lat, p.lon, p.address, p.district, p.description,
		       p.link, p.category, p.creator_id, p.created_at, p.updated_at
		FROM places p
		JOIN follows f ON f.following_id = p.creator_id
		WHERE f.follower_id = $1
		ORDER BY p.created_at DESC, p.id
		LIMIT $2 OFFSET $3
	`

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, userID, limit, offset); err != nil {
		r.logger.Error("Failed to list feed places", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return places, total, nil
}
