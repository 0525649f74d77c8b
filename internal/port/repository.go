package port

import (
	"context"

	"github.com/google/uuid"

	"cattery/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// CatRepository defines the contract for cat persistence.
type CatRepository interface {
	Create(ctx context.Context, cat *domain.Cat) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
	List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error)
	ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error)
	Update(ctx context.Context, cat *domain.Cat) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}
