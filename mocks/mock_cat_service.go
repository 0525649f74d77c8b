package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
	"cattery/internal/service"
)

// MockCatService is a mock implementation of service.CatService.
type MockCatService struct {
	mock.Mock
}

func (m *MockCatService) Create(ctx context.Context, input service.CreateCatInput) (*domain.Cat, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cat), args.Error(1)
}

func (m *MockCatService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cat), args.Error(1)
}

func (m *MockCatService) List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Cat), args.Int(1), args.Error(2)
}

func (m *MockCatService) ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cat), args.Error(1)
}

func (m *MockCatService) Update(ctx context.Context, id uuid.UUID, input service.UpdateCatInput) (*domain.Cat, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cat), args.Error(1)
}

func (m *MockCatService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}
