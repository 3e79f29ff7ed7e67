package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/pkg/errors"
	"github.com/curation-microservice/internal/usecase"
	"github.com/curation-microservice/internal/usecase/dto"
)

func strPtr(s string) *string { return &s }

func newPlaceUseCase(placeRepo *MockPlaceRepository, likeRepo *MockLikeRepository, cacheRepo repository.CacheRepository) *usecase.PlaceUseCase {
	logger := zap.NewNop()
	enricher := usecase.NewLikeEnricher(likeRepo, logger)
	return usecase.NewPlaceUseCase(placeRepo, cacheRepo, enricher, logger, "main-curator", time.Minute)
}

func TestPlaceUseCase_Create_Success(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("ExistsByAddress", mock.Anything, "user-1", "12 Station Road").Return(false, nil)
	placeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Place")).Return(nil)

	view, err := uc.Create(context.Background(), dto.CreatePlaceRequest{
		Name:     "Station Cafe",
		Lat:      55.75,
		Lon:      37.61,
		Address:  strPtr("12 Station Road"),
		District: strPtr("central"),
		Category: "drink",
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Station Cafe", view.Name)
	assert.Equal(t, "user-1", view.CreatorID)
	assert.Equal(t, domain.CategoryDrink, view.Category)
	assert.Equal(t, 0, view.LikesCount)
	assert.False(t, view.IsLiked)
	placeRepo.AssertExpectations(t)
}

func TestPlaceUseCase_Create_DuplicateAddress(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("ExistsByAddress", mock.Anything, "user-1", "12 Station Road").Return(true, nil)

	_, err := uc.Create(context.Background(), dto.CreatePlaceRequest{
		Name:     "Station Cafe",
		Address:  strPtr("12 Station Road"),
		Category: "drink",
	}, "user-1")

	assert.ErrorIs(t, err, errors.ErrDuplicateAddress)
	placeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceUseCase_Create_NoAddressSkipsProbe(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Place")).Return(nil)

	_, err := uc.Create(context.Background(), dto.CreatePlaceRequest{
		Name:     "Pop-up Stand",
		Category: "meal",
	}, "user-1")

	require.NoError(t, err)
	placeRepo.AssertNotCalled(t, "ExistsByAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceUseCase_GetByID_Enriched(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	place := &domain.Place{ID: "p-1", Name: "Station Cafe", CreatorID: "main-curator"}
	placeRepo.On("GetByID", mock.Anything, "p-1").Return(place, nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, []string{"p-1"}).
		Return(map[string]int{"p-1": 7}, nil)
	likeRepo.On("LikedSet", mock.Anything, "viewer-1", domain.LikeTargetPlace, []string{"p-1"}).
		Return(map[string]bool{"p-1": true}, nil)

	view, err := uc.GetByID(context.Background(), "p-1", "viewer-1")

	require.NoError(t, err)
	assert.Equal(t, 7, view.LikesCount)
	assert.True(t, view.IsLiked)
}

func TestPlaceUseCase_GetByID_NotFound(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.ErrPlaceNotFound)

	_, err := uc.GetByID(context.Background(), "missing", "")
	assert.ErrorIs(t, err, errors.ErrPlaceNotFound)
}

func TestPlaceUseCase_ListByDistrict_Pagination(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	places := []*domain.Place{
		{ID: "p-1", CreatorID: "main-curator"},
		{ID: "p-2", CreatorID: "main-curator"},
	}
	placeRepo.On("ListByDistrict", mock.Anything, mock.MatchedBy(func(f repository.PlaceListFilter) bool {
		return f.MainCuratorID == "main-curator" &&
			f.ViewerID == "viewer-1" &&
			f.Sort == domain.SortRecent &&
			f.Limit == 5 && f.Offset == 10
	})).Return(places, 23, nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, []string{"p-1", "p-2"}).
		Return(map[string]int{"p-1": 3}, nil)
	likeRepo.On("LikedSet", mock.Anything, "viewer-1", domain.LikeTargetPlace, []string{"p-1", "p-2"}).
		Return(map[string]bool{"p-2": true}, nil)

	resp, err := uc.ListByDistrict(context.Background(), dto.ListPlacesRequest{
		District: strPtr("central"),
		Page:     3,
		Limit:    5,
	}, "viewer-1")

	require.NoError(t, err)
	assert.Equal(t, 23, resp.Total)
	assert.Equal(t, 5, resp.Page.TotalPages)
	assert.Equal(t, 3, resp.Page.CurrentPage)
	require.Len(t, resp.Places, 2)
	assert.Equal(t, 3, resp.Places[0].LikesCount)
	assert.False(t, resp.Places[0].IsLiked)
	assert.Equal(t, 0, resp.Places[1].LikesCount)
	assert.True(t, resp.Places[1].IsLiked)
}

func TestPlaceUseCase_ListByDistrict_AnonymousSkipsMembership(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("ListByDistrict", mock.Anything, mock.Anything).
		Return([]*domain.Place{{ID: "p-1"}}, 1, nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, []string{"p-1"}).
		Return(map[string]int{"p-1": 2}, nil)

	resp, err := uc.ListByDistrict(context.Background(), dto.ListPlacesRequest{Page: 1, Limit: 20}, "")

	require.NoError(t, err)
	assert.False(t, resp.Places[0].IsLiked)
	likeRepo.AssertNotCalled(t, "LikedSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceUseCase_ListByDistrict_AnonymousCacheHit(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	cacheRepo := new(MockCacheRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, cacheRepo)

	cached := []byte(`{"places":[],"total":0,"page":{"total_pages":0,"current_page":1}}`)
	cacheRepo.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	resp, err := uc.ListByDistrict(context.Background(), dto.ListPlacesRequest{Page: 1, Limit: 20}, "")

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	placeRepo.AssertNotCalled(t, "ListByDistrict", mock.Anything, mock.Anything)
}

func TestPlaceUseCase_ListByDistrict_InvalidSort(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	_, err := uc.ListByDistrict(context.Background(), dto.ListPlacesRequest{
		Sort: "alphabetical", Page: 1, Limit: 20,
	}, "")

	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestPlaceUseCase_Update_NotOwner(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("GetByID", mock.Anything, "p-1").
		Return(&domain.Place{ID: "p-1", CreatorID: "owner"}, nil)

	_, err := uc.Update(context.Background(), "p-1", "intruder", dto.UpdatePlaceRequest{
		Name: strPtr("Hijacked"),
	})

	assert.ErrorIs(t, err, errors.ErrNotOwner)
	placeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPlaceUseCase_Update_PartialPatch(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	existing := &domain.Place{
		ID:        "p-1",
		Name:      "Station Cafe",
		Address:   strPtr("12 Station Road"),
		Category:  domain.CategoryDrink,
		CreatorID: "owner",
	}
	placeRepo.On("GetByID", mock.Anything, "p-1").Return(existing, nil)
	placeRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Place) bool {
		return p.Name == "Terminus Cafe" &&
			p.Address != nil && *p.Address == "12 Station Road" &&
			p.Category == domain.CategoryDrink
	})).Return(nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, []string{"p-1"}).
		Return(map[string]int{}, nil)
	likeRepo.On("LikedSet", mock.Anything, "owner", domain.LikeTargetPlace, []string{"p-1"}).
		Return(map[string]bool{}, nil)

	view, err := uc.Update(context.Background(), "p-1", "owner", dto.UpdatePlaceRequest{
		Name: strPtr("Terminus Cafe"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Terminus Cafe", view.Name)
	placeRepo.AssertExpectations(t)
}

func TestPlaceUseCase_Delete_NotOwner(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("GetByID", mock.Anything, "p-1").
		Return(&domain.Place{ID: "p-1", CreatorID: "owner"}, nil)

	err := uc.Delete(context.Background(), "p-1", "intruder")

	assert.ErrorIs(t, err, errors.ErrNotOwner)
	placeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaceUseCase_Delete_InvalidatesListings(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	cacheRepo := new(MockCacheRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, cacheRepo)

	placeRepo.On("GetByID", mock.Anything, "p-1").
		Return(&domain.Place{ID: "p-1", CreatorID: "owner"}, nil)
	placeRepo.On("Delete", mock.Anything, "p-1").Return(nil)
	cacheRepo.On("DeleteByPrefix", mock.Anything, "places:district").Return(nil)

	err := uc.Delete(context.Background(), "p-1", "owner")

	require.NoError(t, err)
	cacheRepo.AssertExpectations(t)
}

func TestPlaceUseCase_Exists(t *testing.T) {
	placeRepo := new(MockPlaceRepository)
	likeRepo := new(MockLikeRepository)
	uc := newPlaceUseCase(placeRepo, likeRepo, nil)

	placeRepo.On("ExistsByAddress", mock.Anything, "user-1", "12 Station Road").Return(true, nil)

	exists, err := uc.Exists(context.Background(), "user-1", "12 Station Road")

	require.NoError(t, err)
	assert.True(t, exists)
}
