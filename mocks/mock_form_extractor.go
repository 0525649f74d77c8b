package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cattery/internal/aifill"
)

// MockFormExtractor is a mock implementation of service.FormExtractor.
type MockFormExtractor struct {
	mock.Mock
}

func (m *MockFormExtractor) Extract(ctx context.Context, input aifill.Input, provider string) (*aifill.Output, error) {
	args := m.Called(ctx, input, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aifill.Output), args.Error(1)
}

// MockVocabularySource is a mock implementation of aifill.VocabularySource.
type MockVocabularySource struct {
	mock.Mock
}

func (m *MockVocabularySource) Vocabulary(ctx context.Context) (*aifill.Vocabulary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aifill.Vocabulary), args.Error(1)
}
