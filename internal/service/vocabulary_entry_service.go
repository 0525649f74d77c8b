package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"cattery/internal/domain"
	"cattery/internal/port"
)

// CatBreedInput is the DTO for creating or replacing a breed entry.
type CatBreedInput struct {
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CatStatusInput is the DTO for creating or replacing a status entry.
type CatStatusInput struct {
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	Color     string `json:"color"`
	Hint      string `json:"hint"`
	SortOrder int    `json:"sort_order"`
}

// CatBreedService defines breed vocabulary management.
type CatBreedService interface {
	List(ctx context.Context) ([]domain.CatBreed, error)
	Create(ctx context.Context, input CatBreedInput) (*domain.CatBreed, error)
	Update(ctx context.Context, id uuid.UUID, input CatBreedInput) (*domain.CatBreed, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatStatusService defines status vocabulary management.
type CatStatusService interface {
	List(ctx context.Context) ([]domain.CatStatus, error)
	Create(ctx context.Context, input CatStatusInput) (*domain.CatStatus, error)
	Update(ctx context.Context, id uuid.UUID, input CatStatusInput) (*domain.CatStatus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catBreedService struct {
	repo port.CatBreedRepository
}

// NewCatBreedService creates a new CatBreedService implementation.
func NewCatBreedService(repo port.CatBreedRepository) CatBreedService {
	return &catBreedService{repo: repo}
}

func (s *catBreedService) List(ctx context.Context) ([]domain.CatBreed, error) {
	return s.repo.List(ctx)
}

func (s *catBreedService) Create(ctx context.Context, input CatBreedInput) (*domain.CatBreed, error) {
	breed := &domain.CatBreed{
		Label:     strings.TrimSpace(input.Label),
		Value:     strings.TrimSpace(input.Value),
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(ctx, breed); err != nil {
		return nil, err
	}
	return breed, nil
}

func (s *catBreedService) Update(ctx context.Context, id uuid.UUID, input CatBreedInput) (*domain.CatBreed, error) {
	breed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	breed.Label = strings.TrimSpace(input.Label)
	breed.Value = strings.TrimSpace(input.Value)
	breed.SortOrder = input.SortOrder
	if err := s.repo.Update(ctx, breed); err != nil {
		return nil, err
	}
	return breed, nil
}

func (s *catBreedService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

type catStatusService struct {
	repo port.CatStatusRepository
}

// NewCatStatusService creates a new CatStatusService implementation.
func NewCatStatusService(repo port.CatStatusRepository) CatStatusService {
	return &catStatusService{repo: repo}
}

func (s *catStatusService) List(ctx context.Context) ([]domain.CatStatus, error) {
	return s.repo.List(ctx)
}

func (s *catStatusService) Create(ctx context.Context, input CatStatusInput) (*domain.CatStatus, error) {
	status := &domain.CatStatus{
		Label:     strings.TrimSpace(input.Label),
		Value:     strings.TrimSpace(input.Value),
		Color:     strings.TrimSpace(input.Color),
		Hint:      strings.TrimSpace(input.Hint),
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *catStatusService) Update(ctx context.Context, id uuid.UUID, input CatStatusInput) (*domain.CatStatus, error) {
	status, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status.Label = strings.TrimSpace(input.Label)
	status.Value = strings.TrimSpace(input.Value)
	status.Color = strings.TrimSpace(input.Color)
	status.Hint = strings.TrimSpace(input.Hint)
	status.SortOrder = input.SortOrder
	if err := s.repo.Update(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *catStatusService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
