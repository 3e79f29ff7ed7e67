package repository

import (
	"context"

	"github.com/curation-microservice/internal/domain"
)

// PlaceListFilter scopes a district listing. Visibility: a place is
// listed when it was created by the main curator account or by the
// viewer themselves.
type PlaceListFilter struct {
	District      *string
	Category      *domain.Category
	ViewerID      string // empty for anonymous reads
	MainCuratorID string
	Sort          domain.PlaceSort
	Limit         int
	Offset        int
}

// CreatorListFilter scopes a listing to one creator.
type CreatorListFilter struct {
	CreatorID string
	District  *string
	Category  *domain.Category
	Limit     int
	Offset    int
}

// PlaceRepository persists places and their cascading deletes.
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) error

	GetByID(ctx context.Context, id string) (*domain.Place, error)

	// ListByDistrict returns one page plus the total count of matching rows.
	ListByDistrict(ctx context.Context, filter PlaceListFilter) ([]*domain.Place, int, error)

	ListByCreator(ctx context.Context, filter CreatorListFilter) ([]*domain.Place, int, error)

	Update(ctx context.Context, place *domain.Place) error

	// Delete removes the place together with route stops and likes that
	// reference it, in one transaction.
	Delete(ctx context.Context, id string) error

	// ExistsByAddress is the duplicate probe behind pre-validation.
	ExistsByAddress(ctx context.Context, creatorID, address string) (bool, error)

	// GetByIDs resolves a set of ids, used to validate stop references.
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Place, error)
}
