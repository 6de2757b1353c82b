package catalog_proxy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
)

// MockPublishingHouseService implements service.PublishingHouseServicer
type MockPublishingHouseService struct {
	mock.Mock
}

func (m *MockPublishingHouseService) Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	args := m.Called(ctx, house)
	return args.Get(0).(entity.PublishingHouse), args.Error(1)
}

func (m *MockPublishingHouseService) Get(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.PublishingHouse), args.Error(1)
}

func (m *MockPublishingHouseService) Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	args := m.Called(ctx, house)
	return args.Get(0).(entity.PublishingHouse), args.Error(1)
}

func (m *MockPublishingHouseService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPublishingHouseService) List(ctx context.Context, params query.Params) (query.Page[entity.PublishingHouse], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(query.Page[entity.PublishingHouse]), args.Error(1)
}

func (m *MockPublishingHouseService) ListBooks(ctx context.Context, houseID uuid.UUID, params query.Params) (query.Page[entity.Book], error) {
	args := m.Called(ctx, houseID, params)
	return args.Get(0).(query.Page[entity.Book]), args.Error(1)
}

// MockCache implements cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string) (interface{}, bool) {
	args := m.Called(key)
	return args.Get(0), args.Bool(1)
}

func (m *MockCache) Set(key string, value interface{}, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockCache) Delete(key string) {
	m.Called(key)
}

func TestPublishingHouseProxy_Get_CacheHit(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	id := uuid.New()
	cached := entity.PublishingHouse{ID: id, Name: "Hodder & Stoughton"}

	mockCache.On("Get", cacheKey(id)).Return(cached, true).Once()

	result, err := proxy.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, cached, result)

	mockCache.AssertExpectations(t)
	mockService.AssertNotCalled(t, "Get")
}

func TestPublishingHouseProxy_Get_CacheMiss(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	id := uuid.New()
	house := entity.PublishingHouse{ID: id, Name: "Hodder & Stoughton"}

	mockCache.On("Get", cacheKey(id)).Return(nil, false).Once()
	mockService.On("Get", ctx, id).Return(house, nil).Once()
	mockCache.On("Set", cacheKey(id), house, 5*time.Minute).Once()

	result, err := proxy.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, house, result)

	mockCache.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestPublishingHouseProxy_Get_ServiceError(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	id := uuid.New()

	mockCache.On("Get", cacheKey(id)).Return(nil, false).Once()
	mockService.On("Get", ctx, id).Return(entity.PublishingHouse{}, errors.New("not found")).Once()

	_, err := proxy.Get(ctx, id)
	assert.Error(t, err)

	mockCache.AssertNotCalled(t, "Set")
	mockService.AssertExpectations(t)
}

func TestPublishingHouseProxy_Update_InvalidatesCache(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	house := entity.PublishingHouse{ID: uuid.New(), Name: "Renamed"}

	mockService.On("Update", ctx, house).Return(house, nil).Once()
	mockCache.On("Delete", cacheKey(house.ID)).Once()

	_, err := proxy.Update(ctx, house)
	assert.NoError(t, err)

	mockCache.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestPublishingHouseProxy_Update_ErrorKeepsCache(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	house := entity.PublishingHouse{ID: uuid.New(), Name: "Renamed"}

	mockService.On("Update", ctx, house).Return(entity.PublishingHouse{}, errors.New("boom")).Once()

	_, err := proxy.Update(ctx, house)
	assert.Error(t, err)

	mockCache.AssertNotCalled(t, "Delete")
	mockService.AssertExpectations(t)
}

func TestPublishingHouseProxy_Delete_InvalidatesCache(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	id := uuid.New()

	mockService.On("Delete", ctx, id).Return(nil).Once()
	mockCache.On("Delete", cacheKey(id)).Once()

	err := proxy.Delete(ctx, id)
	assert.NoError(t, err)

	mockCache.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestPublishingHouseProxy_List_BypassesCache(t *testing.T) {
	mockService := new(MockPublishingHouseService)
	mockCache := new(MockCache)
	proxy := NewPublishingHouseProxy(mockService, mockCache, 5*time.Minute)

	ctx := context.Background()
	params := query.Params{Page: 1, PageSize: 10}
	page := query.Page[entity.PublishingHouse]{Items: []entity.PublishingHouse{}, TotalPages: 1}

	mockService.On("List", ctx, params).Return(page, nil).Once()

	result, err := proxy.List(ctx, params)
	assert.NoError(t, err)
	assert.Equal(t, page, result)

	mockCache.AssertNotCalled(t, "Get")
	mockService.AssertExpectations(t)
}
