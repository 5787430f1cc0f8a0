package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"harsha-hotel/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Insert(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func TestMenuService_List_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testItems := []model.MenuItem{
		{ID: "i1a2b3c4", Name: "Dosa", Price: 50, Rating: 4.5, CreatedAt: time.Now()},
		{ID: "i5d6e7f8", Name: "Idli", Price: 40, Rating: 4.2, CreatedAt: time.Now()},
	}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetAll", ctx).Return(testItems, nil)

	svc := NewMenuService(mockRepo, logger)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, testItems, items)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_List_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("GetAll", ctx).Return(nil, errors.New("connection refused"))

	svc := NewMenuService(mockRepo, logger)

	items, err := svc.List(ctx)
	require.Error(t, err)
	assert.Nil(t, items)
	assert.Contains(t, err.Error(), "failed to list menu items")
}

func TestMenuService_Add_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.MenuItemRequest{
		Name:        "Dosa",
		Description: "Crisp rice crepe",
		Price:       50,
		Rating:      4.5,
	}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("Insert", ctx, mock.MatchedBy(func(item *model.MenuItem) bool {
		return item.ID != "" &&
			item.Name == "Dosa" &&
			item.Description == "Crisp rice crepe" &&
			item.Price == 50 &&
			item.Rating == 4.5
	})).Return(nil)

	svc := NewMenuService(mockRepo, logger)

	id, err := svc.Add(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_Add_PermissiveDefaults(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	// An empty request is accepted as-is: no required-field validation.
	mockRepo := new(MockMenuRepository)
	mockRepo.On("Insert", ctx, mock.MatchedBy(func(item *model.MenuItem) bool {
		return item.Name == "" &&
			item.Description == "" &&
			item.Price == 0 &&
			item.Rating == 0
	})).Return(nil)

	svc := NewMenuService(mockRepo, logger)

	id, err := svc.Add(ctx, &model.MenuItemRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_Add_GeneratesUniqueIDs(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := NewMenuService(mockRepo, logger)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := svc.Add(ctx, &model.MenuItemRequest{Name: "Dosa"})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id: %s", id)
		seen[id] = true
	}
}

func TestMenuService_Add_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMenuRepository)
	mockRepo.On("Insert", ctx, mock.Anything).Return(errors.New("duplicate key"))

	svc := NewMenuService(mockRepo, logger)

	id, err := svc.Add(ctx, &model.MenuItemRequest{Name: "Dosa"})
	require.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, err.Error(), "failed to add menu item")
}

func TestMenuService_Add_NilRequest(t *testing.T) {
	logger := zerolog.Nop()

	svc := NewMenuService(new(MockMenuRepository), logger)

	id, err := svc.Add(context.Background(), nil)
	require.Error(t, err)
	assert.Empty(t, id)
}
