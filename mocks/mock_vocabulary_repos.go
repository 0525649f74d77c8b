package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
)

// MockCatBreedRepo is a mock implementation of port.CatBreedRepository.
type MockCatBreedRepo struct {
	mock.Mock
}

func (m *MockCatBreedRepo) List(ctx context.Context) ([]domain.CatBreed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatBreed), args.Error(1)
}

func (m *MockCatBreedRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatBreed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatBreed), args.Error(1)
}

func (m *MockCatBreedRepo) Create(ctx context.Context, breed *domain.CatBreed) error {
	args := m.Called(ctx, breed)
	return args.Error(0)
}

func (m *MockCatBreedRepo) Update(ctx context.Context, breed *domain.CatBreed) error {
	args := m.Called(ctx, breed)
	return args.Error(0)
}

func (m *MockCatBreedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatStatusRepo is a mock implementation of port.CatStatusRepository.
type MockCatStatusRepo struct {
	mock.Mock
}

func (m *MockCatStatusRepo) List(ctx context.Context) ([]domain.CatStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatStatus), args.Error(1)
}

func (m *MockCatStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatStatus), args.Error(1)
}

func (m *MockCatStatusRepo) Create(ctx context.Context, status *domain.CatStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockCatStatusRepo) Update(ctx context.Context, status *domain.CatStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockCatStatusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStoreRepo is a mock implementation of port.StoreRepository.
type MockStoreRepo struct {
	mock.Mock
}

func (m *MockStoreRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Store, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Store), args.Int(1), args.Error(2)
}

func (m *MockStoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepo) Create(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepo) Update(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

// MockConfigRepo is a mock implementation of port.ConfigRepository.
type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error) {
	args := m.Called(ctx, keyFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ConfigEntry), args.Int(1), args.Error(2)
}

func (m *MockConfigRepo) GetByKey(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfigEntry), args.Error(1)
}

func (m *MockConfigRepo) Upsert(ctx context.Context, entry *domain.ConfigEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
