package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a place repository with test database and logger
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewPlaceRepository(pgDB)
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewRouteRepository(pgDB)
}

// NewLikeRepositoryForTest creates a like repository with test database and logger
func NewLikeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LikeRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewLikeRepository(pgDB)
}

// NewFollowRepositoryForTest creates a follow repository with test database and logger
func NewFollowRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FollowRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewFollowRepository(pgDB)
}
