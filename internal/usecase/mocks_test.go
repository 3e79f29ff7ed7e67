package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) ListByDistrict(ctx context.Context, filter repository.PlaceListFilter) ([]*domain.Place, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Place), args.Int(1), args.Error(2)
}

func (m *MockPlaceRepository) ListByCreator(ctx context.Context, filter repository.CreatorListFilter) ([]*domain.Place, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Place), args.Int(1), args.Error(2)
}

func (m *MockPlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceRepository) ExistsByAddress(ctx context.Context, creatorID, address string) (bool, error) {
	args := m.Called(ctx, creatorID, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaceRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Place, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route, stops []*domain.RouteStop) error {
	args := m.Called(ctx, route, stops)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, []*domain.RouteStop, error) {
	args := m.Called(ctx, id)
	var route *domain.Route
	var stops []*domain.RouteStop
	if args.Get(0) != nil {
		route = args.Get(0).(*domain.Route)
	}
	if args.Get(1) != nil {
		stops = args.Get(1).([]*domain.RouteStop)
	}
	return route, stops, args.Error(2)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route, replaceStops bool, newStops []*domain.RouteStop) error {
	args := m.Called(ctx, route, replaceStops, newStops)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouteRepository) ListByCreator(ctx context.Context, filter repository.RouteListFilter) ([]*domain.Route, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Route), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) ListPublicByDistrict(ctx context.Context, districtID string, limit, offset int) ([]*domain.Route, int, error) {
	args := m.Called(ctx, districtID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Route), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) StopsForRoutes(ctx context.Context, routeIDs []string) (map[string][]*domain.RouteStop, error) {
	args := m.Called(ctx, routeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]*domain.RouteStop), args.Error(1)
}

// MockLikeRepository is a mock of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Insert(ctx context.Context, like *domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID string, target domain.LikeTarget) error {
	args := m.Called(ctx, userID, target)
	return args.Error(0)
}

func (m *MockLikeRepository) Status(ctx context.Context, userID string, target domain.LikeTarget) (bool, error) {
	args := m.Called(ctx, userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Count(ctx context.Context, target domain.LikeTarget) (int, error) {
	args := m.Called(ctx, target)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeRepository) CountByTargets(ctx context.Context, kind domain.LikeTargetKind, ids []string) (map[string]int, error) {
	args := m.Called(ctx, kind, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockLikeRepository) LikedSet(ctx context.Context, userID string, kind domain.LikeTargetKind, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, kind, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLikeRepository) ListLikedPlaces(ctx context.Context, filter repository.LikedFeedFilter) ([]*domain.Place, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Place), args.Int(1), args.Error(2)
}

func (m *MockLikeRepository) ListLikedRoutes(ctx context.Context, filter repository.LikedFeedFilter) ([]*domain.Route, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Route), args.Int(1), args.Error(2)
}

// MockFollowRepository is a mock of FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, followerID string) ([]string, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowRepository) FeedPlaces(ctx context.Context, userID string, limit, offset int) ([]*domain.Place, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Place), args.Int(1), args.Error(2)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) Publish(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
