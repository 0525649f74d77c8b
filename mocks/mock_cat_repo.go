package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
)

// MockCatRepo is a mock implementation of port.CatRepository.
type MockCatRepo struct {
	mock.Mock
}

func (m *MockCatRepo) Create(ctx context.Context, cat *domain.Cat) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockCatRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cat), args.Error(1)
}

func (m *MockCatRepo) List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Cat), args.Int(1), args.Error(2)
}

func (m *MockCatRepo) ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cat), args.Error(1)
}

func (m *MockCatRepo) Update(ctx context.Context, cat *domain.Cat) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockCatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}
