package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
	"cattery/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadBatch(ctx context.Context, uploadType domain.UploadType, files []service.UploadFileInput) ([]service.UploadResult, error) {
	args := m.Called(ctx, uploadType, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.UploadResult), args.Error(1)
}
