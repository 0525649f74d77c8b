package port

import (
	"context"

	"github.com/google/uuid"

	"cattery/internal/domain"
)

// CatBreedRepository defines the contract for breed vocabulary persistence.
// List returns entries ordered by sort_order, then label.
type CatBreedRepository interface {
	List(ctx context.Context) ([]domain.CatBreed, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatBreed, error)
	Create(ctx context.Context, breed *domain.CatBreed) error
	Update(ctx context.Context, breed *domain.CatBreed) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatStatusRepository defines the contract for status vocabulary persistence.
type CatStatusRepository interface {
	List(ctx context.Context) ([]domain.CatStatus, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatStatus, error)
	Create(ctx context.Context, status *domain.CatStatus) error
	Update(ctx context.Context, status *domain.CatStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StoreRepository defines the contract for store persistence.
type StoreRepository interface {
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Store, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

// ConfigRepository defines the contract for key/value settings.
type ConfigRepository interface {
	List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error)
	GetByKey(ctx context.Context, key string) (*domain.ConfigEntry, error)
	Upsert(ctx context.Context, entry *domain.ConfigEntry) error
}
