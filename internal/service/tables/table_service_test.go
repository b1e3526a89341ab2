package tables

import (
	"context"
	"testing"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) List(ctx context.Context) ([]domain.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockTableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetTables(ctx context.Context) ([]domain.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockCache) SetTables(ctx context.Context, tables []domain.Table) error {
	args := m.Called(ctx, tables)
	return args.Error(0)
}

func TestTableService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockTableRepository{}
	mockCache := &MockCache{}

	service := NewTableService(mockRepo, mockCache)

	ctx := context.Background()

	tables := []domain.Table{
		{ID: 1, Number: 1, Capacity: 4},
		{ID: 2, Number: 2, Capacity: 2},
	}

	mockCache.On("GetTables", ctx).Return(([]domain.Table)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(tables, nil).Once()
	mockCache.On("SetTables", ctx, tables).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestTableService_List_CacheHit(t *testing.T) {
	mockRepo := &MockTableRepository{}
	mockCache := &MockCache{}

	service := NewTableService(mockRepo, mockCache)

	ctx := context.Background()

	tables := []domain.Table{{ID: 1, Number: 1, Capacity: 4}}

	mockCache.On("GetTables", ctx).Return(tables, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertExpectations(t)
}

func TestTableService_List_NoCache(t *testing.T) {
	mockRepo := &MockTableRepository{}

	service := NewTableService(mockRepo, nil)

	ctx := context.Background()

	tables := []domain.Table{{ID: 1, Number: 1, Capacity: 4}}
	mockRepo.On("List", ctx).Return(tables, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, tables, result)
	mockRepo.AssertExpectations(t)
}

func TestTableService_GetByID(t *testing.T) {
	mockRepo := &MockTableRepository{}

	service := NewTableService(mockRepo, nil)

	ctx := context.Background()

	table := &domain.Table{ID: 1, Number: 1, Capacity: 4}
	mockRepo.On("GetByID", ctx, int64(1)).Return(table, nil).Once()

	result, err := service.GetByID(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, table, result)
	mockRepo.AssertExpectations(t)
}

func TestTableService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockTableRepository{}

	service := NewTableService(mockRepo, nil)

	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.GetByID(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
