package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cattery/internal/aifill"
	"cattery/internal/domain"
	"cattery/internal/service"
)

// MockFormFillService is a mock implementation of service.FormFillService.
type MockFormFillService struct {
	mock.Mock
}

func (m *MockFormFillService) Fill(ctx context.Context, input service.FillInput) (*aifill.Output, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aifill.Output), args.Error(1)
}

func (m *MockFormFillService) Providers() []service.ProviderInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.ProviderInfo)
}

// MockDraftService is a mock implementation of service.DraftService.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) view(args mock.Arguments) (*service.DraftView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftView), args.Error(1)
}

func (m *MockDraftService) Open(ctx context.Context, input service.OpenDraftInput) (*service.DraftView, error) {
	return m.view(m.Called(ctx, input))
}

func (m *MockDraftService) Get(ctx context.Context, id uuid.UUID) (*service.DraftView, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockDraftService) Edit(ctx context.Context, id uuid.UUID, edit aifill.Edit) (*service.DraftView, error) {
	return m.view(m.Called(ctx, id, edit))
}

func (m *MockDraftService) Fill(ctx context.Context, id uuid.UUID, input service.DraftFillInput) (*service.DraftFillResult, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftFillResult), args.Error(1)
}

func (m *MockDraftService) Reset(ctx context.Context, id uuid.UUID) (*service.DraftView, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockDraftService) Commit(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cat), args.Error(1)
}

func (m *MockDraftService) Close(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDraftService) CloseAll() {
	m.Called()
}
