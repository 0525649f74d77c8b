package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cattery/internal/domain"
	"cattery/internal/service"
	"cattery/mocks"
)

func TestStoreService_Create(t *testing.T) {
	repo := new(mocks.MockStoreRepo)
	svc := service.NewStoreService(repo)

	branch := domain.StoreTypeBranch
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Store) bool {
		return s.Name == "苏州店" && *s.StoreType == domain.StoreTypeBranch && s.IsActive
	})).Return(nil)

	store, err := svc.Create(context.Background(), service.CreateStoreInput{Name: " 苏州店 ", StoreType: &branch})

	require.NoError(t, err)
	assert.Equal(t, "苏州店", store.Name)
	repo.AssertExpectations(t)
}

func TestStoreService_Create_InvalidType(t *testing.T) {
	repo := new(mocks.MockStoreRepo)
	svc := service.NewStoreService(repo)

	bad := domain.StoreType("franchise")
	_, err := svc.Create(context.Background(), service.CreateStoreInput{Name: "x", StoreType: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidStoreType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStoreService_Create_Duplicate(t *testing.T) {
	repo := new(mocks.MockStoreRepo)
	svc := service.NewStoreService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateStore)

	_, err := svc.Create(context.Background(), service.CreateStoreInput{Name: "山东店"})

	assert.ErrorIs(t, err, domain.ErrDuplicateStore)
}

func TestStoreService_Update_Partial(t *testing.T) {
	repo := new(mocks.MockStoreRepo)
	svc := service.NewStoreService(repo)

	id := uuid.New()
	mainType := domain.StoreTypeMain
	repo.On("GetByID", mock.Anything, id).Return(&domain.Store{
		ID:        id,
		Name:      "山东店",
		StoreType: &mainType,
		Location:  strPtr("济南"),
		IsActive:  true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	var input service.UpdateStoreInput
	require.NoError(t, json.Unmarshal([]byte(`{"location":null,"is_active":false}`), &input))

	store, err := svc.Update(context.Background(), id, input)

	require.NoError(t, err)
	assert.Equal(t, "山东店", store.Name)
	assert.Equal(t, &mainType, store.StoreType, "absent fields are kept")
	assert.Nil(t, store.Location, "explicit null clears the field")
	assert.False(t, store.IsActive)
}

func TestStoreService_BulkDelete_Empty(t *testing.T) {
	repo := new(mocks.MockStoreRepo)
	svc := service.NewStoreService(repo)

	_, err := svc.BulkDelete(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrEmptyBulkSelection)
}

func TestCatBreedService_CreateAndUpdate(t *testing.T) {
	repo := new(mocks.MockCatBreedRepo)
	svc := service.NewCatBreedService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.CatBreed) bool {
		return b.Label == "豹猫妹妹" && b.Value == "豹猫妹妹"
	})).Return(nil)

	_, err := svc.Create(context.Background(), service.CatBreedInput{Label: " 豹猫妹妹", Value: "豹猫妹妹 ", SortOrder: 3})
	require.NoError(t, err)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.CatBreed{ID: id, Label: "old", Value: "old"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), id, service.CatBreedInput{Label: "新", Value: "新", SortOrder: 1})

	require.NoError(t, err)
	assert.Equal(t, "新", updated.Value)
	assert.Equal(t, 1, updated.SortOrder)
	repo.AssertExpectations(t)
}

func TestCatBreedService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockCatBreedRepo)
	svc := service.NewCatBreedService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), id, service.CatBreedInput{Label: "a", Value: "a"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
