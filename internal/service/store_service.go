package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"cattery/internal/domain"
	"cattery/internal/port"
)

// CreateStoreInput is the DTO for creating a store. New stores are active.
type CreateStoreInput struct {
	Name               string            `json:"name" binding:"required"`
	StoreType          *domain.StoreType `json:"store_type"`
	OwnerContact       *string           `json:"owner_contact"`
	Location           *string           `json:"location"`
	BusinessHours      *string           `json:"business_hours"`
	CatteryDescription *string           `json:"cattery_description"`
}

// UpdateStoreInput is the DTO for a partial store update.
type UpdateStoreInput struct {
	Name               *string                    `json:"name"`
	StoreType          Nullable[domain.StoreType] `json:"store_type" swaggertype:"string"`
	OwnerContact       Nullable[string]           `json:"owner_contact" swaggertype:"string"`
	Location           Nullable[string]           `json:"location" swaggertype:"string"`
	BusinessHours      Nullable[string]           `json:"business_hours" swaggertype:"string"`
	CatteryDescription Nullable[string]           `json:"cattery_description" swaggertype:"string"`
	IsActive           *bool                      `json:"is_active"`
}

// StoreService defines store management.
type StoreService interface {
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Store, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	Create(ctx context.Context, input CreateStoreInput) (*domain.Store, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStoreInput) (*domain.Store, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type storeService struct {
	repo port.StoreRepository
}

// NewStoreService creates a new StoreService implementation.
func NewStoreService(repo port.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Store, int, error) {
	return s.repo.List(ctx, activeOnly, offset, limit)
}

func (s *storeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *storeService) Create(ctx context.Context, input CreateStoreInput) (*domain.Store, error) {
	if input.StoreType != nil && !domain.ValidStoreTypes[*input.StoreType] {
		return nil, domain.ErrInvalidStoreType
	}
	store := &domain.Store{
		Name:               strings.TrimSpace(input.Name),
		StoreType:          input.StoreType,
		OwnerContact:       input.OwnerContact,
		Location:           input.Location,
		BusinessHours:      input.BusinessHours,
		CatteryDescription: input.CatteryDescription,
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) Update(ctx context.Context, id uuid.UUID, input UpdateStoreInput) (*domain.Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = strings.TrimSpace(*input.Name)
	}
	if input.StoreType.Set && input.StoreType.Value != nil && !domain.ValidStoreTypes[*input.StoreType.Value] {
		return nil, domain.ErrInvalidStoreType
	}
	input.StoreType.apply(&store.StoreType)
	input.OwnerContact.apply(&store.OwnerContact)
	input.Location.apply(&store.Location)
	input.BusinessHours.apply(&store.BusinessHours)
	input.CatteryDescription.apply(&store.CatteryDescription)
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *storeService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, domain.ErrEmptyBulkSelection
	}
	return s.repo.BulkDelete(ctx, ids)
}
