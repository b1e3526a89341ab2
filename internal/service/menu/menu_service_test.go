package menu

import (
	"context"
	"testing"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockCache) InvalidateMenu(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestMenuService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockMenuRepository{}
	mockCache := &MockCache{}

	service := NewMenuService(mockRepo, mockCache)

	ctx := context.Background()

	items := []domain.MenuItem{
		{ID: 1, Name: "Chicken Burger", PriceCents: 500},
		{ID: 2, Name: "Fries", PriceCents: 200},
	}

	mockCache.On("GetMenu", ctx).Return(([]domain.MenuItem)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(items, nil).Once()
	mockCache.On("SetMenu", ctx, items).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, items, result)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestMenuService_List_CacheHit(t *testing.T) {
	mockRepo := &MockMenuRepository{}
	mockCache := &MockCache{}

	service := NewMenuService(mockRepo, mockCache)

	ctx := context.Background()

	items := []domain.MenuItem{{ID: 1, Name: "Fries", PriceCents: 200}}

	mockCache.On("GetMenu", ctx).Return(items, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, items, result)

	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertExpectations(t)
}

func TestMenuService_AddItem(t *testing.T) {
	mockRepo := &MockMenuRepository{}
	mockCache := &MockCache{}

	service := NewMenuService(mockRepo, mockCache)

	ctx := context.Background()

	mockRepo.On("GetByName", ctx, "Soda").Return(nil, domain.ErrNotFound).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
	mockCache.On("InvalidateMenu", ctx).Return(nil).Once()

	item, err := service.AddItem(ctx, "Soda", 100)

	assert.NoError(t, err)
	assert.Equal(t, "Soda", item.Name)
	assert.Equal(t, int64(100), item.PriceCents)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestMenuService_AddItem_Duplicate(t *testing.T) {
	mockRepo := &MockMenuRepository{}

	service := NewMenuService(mockRepo, nil)

	ctx := context.Background()

	existing := &domain.MenuItem{ID: 1, Name: "Fries", PriceCents: 200}
	mockRepo.On("GetByName", ctx, "Fries").Return(existing, nil).Once()

	_, err := service.AddItem(ctx, "Fries", 250)

	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestMenuService_AddItem_EmptyName(t *testing.T) {
	mockRepo := &MockMenuRepository{}

	service := NewMenuService(mockRepo, nil)

	_, err := service.AddItem(context.Background(), "", 100)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetByName")
}

func TestMenuService_AddItem_NegativePrice(t *testing.T) {
	mockRepo := &MockMenuRepository{}

	service := NewMenuService(mockRepo, nil)

	_, err := service.AddItem(context.Background(), "Fries", -1)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetByName")
}
