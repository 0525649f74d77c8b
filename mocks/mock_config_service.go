package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
	"cattery/internal/service"
)

// MockConfigService is a mock implementation of service.ConfigService.
type MockConfigService struct {
	mock.Mock
}

func (m *MockConfigService) List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error) {
	args := m.Called(ctx, keyFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ConfigEntry), args.Int(1), args.Error(2)
}

func (m *MockConfigService) Get(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfigEntry), args.Error(1)
}

func (m *MockConfigService) Set(ctx context.Context, key string, input service.SetConfigInput) (*domain.ConfigEntry, error) {
	args := m.Called(ctx, key, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfigEntry), args.Error(1)
}

func (m *MockConfigService) DefaultVisible(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
