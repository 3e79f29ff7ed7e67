package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/usecase"
)

func newFeedUseCase(followRepo *MockFollowRepository, likeRepo *MockLikeRepository) *usecase.FeedUseCase {
	logger := zap.NewNop()
	enricher := usecase.NewLikeEnricher(likeRepo, logger)
	return usecase.NewFeedUseCase(followRepo, enricher, logger)
}

func TestFeedUseCase_Follow(t *testing.T) {
	followRepo := new(MockFollowRepository)
	likeRepo := new(MockLikeRepository)
	uc := newFeedUseCase(followRepo, likeRepo)

	followRepo.On("Follow", mock.Anything, "user-1", "curator-1").Return(nil)

	err := uc.Follow(context.Background(), "user-1", "curator-1")

	require.NoError(t, err)
	followRepo.AssertExpectations(t)
}

func TestFeedUseCase_ListFollowing(t *testing.T) {
	followRepo := new(MockFollowRepository)
	likeRepo := new(MockLikeRepository)
	uc := newFeedUseCase(followRepo, likeRepo)

	followRepo.On("ListFollowing", mock.Anything, "user-1").
		Return([]string{"curator-1", "curator-2"}, nil)

	following, err := uc.ListFollowing(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"curator-1", "curator-2"}, following)
}

func TestFeedUseCase_FeedFor_Enriched(t *testing.T) {
	followRepo := new(MockFollowRepository)
	likeRepo := new(MockLikeRepository)
	uc := newFeedUseCase(followRepo, likeRepo)

	places := []*domain.Place{
		{ID: "p-1", CreatorID: "curator-1"},
		{ID: "p-2", CreatorID: "curator-2"},
	}
	followRepo.On("FeedPlaces", mock.Anything, "user-1", 10, 10).Return(places, 12, nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, []string{"p-1", "p-2"}).
		Return(map[string]int{"p-1": 4}, nil)
	likeRepo.On("LikedSet", mock.Anything, "user-1", domain.LikeTargetPlace, []string{"p-1", "p-2"}).
		Return(map[string]bool{"p-1": true}, nil)

	resp, err := uc.FeedFor(context.Background(), "user-1", 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 2, resp.Page.TotalPages)
	assert.Equal(t, 2, resp.Page.CurrentPage)
	require.Len(t, resp.Places, 2)
	assert.True(t, resp.Places[0].IsLiked)
	assert.Equal(t, 4, resp.Places[0].LikesCount)
	assert.False(t, resp.Places[1].IsLiked)
}

func TestFeedUseCase_FeedFor_Empty(t *testing.T) {
	followRepo := new(MockFollowRepository)
	likeRepo := new(MockLikeRepository)
	uc := newFeedUseCase(followRepo, likeRepo)

	followRepo.On("FeedPlaces", mock.Anything, "user-1", 10, 0).
		Return([]*domain.Place{}, 0, nil)

	resp, err := uc.FeedFor(context.Background(), "user-1", 1, 10)

	require.NoError(t, err)
	assert.Empty(t, resp.Places)
	assert.Equal(t, 0, resp.Page.TotalPages)
	likeRepo.AssertNotCalled(t, "CountByTargets", mock.Anything, mock.Anything, mock.Anything)
}
