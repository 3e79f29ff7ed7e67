package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/usecase"
)

func TestLikeEnricher_EnrichPlaces_QueryCountIsFixed(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	enricher := usecase.NewLikeEnricher(likeRepo, zap.NewNop())

	places := make([]*domain.Place, 0, 50)
	ids := make([]string, 0, 50)
	counts := map[string]int{}
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("p-%02d", i)
		places = append(places, &domain.Place{ID: id})
		ids = append(ids, id)
		counts[id] = i
	}

	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace, ids).Return(counts, nil)
	likeRepo.On("LikedSet", mock.Anything, "viewer-1", domain.LikeTargetPlace, ids).
		Return(map[string]bool{ids[3]: true}, nil)

	views, err := enricher.EnrichPlaces(context.Background(), places, "viewer-1")

	require.NoError(t, err)
	require.Len(t, views, 50)
	// One grouped count plus one membership query for the whole page.
	likeRepo.AssertNumberOfCalls(t, "CountByTargets", 1)
	likeRepo.AssertNumberOfCalls(t, "LikedSet", 1)
	assert.True(t, views[3].IsLiked)
	assert.False(t, views[4].IsLiked)
	assert.Equal(t, 49, views[49].LikesCount)
}

func TestLikeEnricher_EnrichPlaces_EmptyPage(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	enricher := usecase.NewLikeEnricher(likeRepo, zap.NewNop())

	views, err := enricher.EnrichPlaces(context.Background(), nil, "viewer-1")

	require.NoError(t, err)
	assert.Empty(t, views)
	likeRepo.AssertNotCalled(t, "CountByTargets", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeEnricher_EnrichRoutes_TwoLevels(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	enricher := usecase.NewLikeEnricher(likeRepo, zap.NewNop())

	routes := []*domain.Route{{ID: "r-1"}, {ID: "r-2"}}
	stopsByRoute := map[string][]*domain.RouteStop{
		"r-1": {
			{ID: "s-1", RouteID: "r-1", PlaceID: "p-a", Order: 1, Label: domain.StopLabelMeal,
				Place: &domain.Place{ID: "p-a"}},
			{ID: "s-2", RouteID: "r-1", PlaceID: "p-b", Order: 2, Label: domain.StopLabelBar,
				Place: &domain.Place{ID: "p-b"}},
		},
		"r-2": {
			// Shared stop: p-a appears in both routes but is counted once.
			{ID: "s-3", RouteID: "r-2", PlaceID: "p-a", Order: 1, Label: domain.StopLabelCafe,
				Place: &domain.Place{ID: "p-a"}},
		},
	}

	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetRoute, []string{"r-1", "r-2"}).
		Return(map[string]int{"r-1": 2}, nil)
	likeRepo.On("CountByTargets", mock.Anything, domain.LikeTargetPlace,
		mock.MatchedBy(func(ids []string) bool { return len(ids) == 2 })).
		Return(map[string]int{"p-a": 10, "p-b": 1}, nil)

	views, err := enricher.EnrichRoutes(context.Background(), routes, stopsByRoute, "")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].LikesCount)
	assert.Equal(t, 0, views[1].LikesCount)
	require.Len(t, views[0].Stops, 2)
	assert.Equal(t, 10, views[0].Stops[0].Place.LikesCount)
	assert.Equal(t, 1, views[0].Stops[1].Place.LikesCount)
	assert.Equal(t, 10, views[1].Stops[0].Place.LikesCount)
	likeRepo.AssertNumberOfCalls(t, "CountByTargets", 2)
	likeRepo.AssertNotCalled(t, "LikedSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
