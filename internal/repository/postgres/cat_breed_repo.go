package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cattery/internal/domain"
	"cattery/internal/port"
)

type catBreedRepo struct {
	db *sqlx.DB
}

// NewCatBreedRepo creates a new PostgreSQL-backed CatBreedRepository.
func NewCatBreedRepo(db *sqlx.DB) port.CatBreedRepository {
	return &catBreedRepo{db: db}
}

func (r *catBreedRepo) List(ctx context.Context) ([]domain.CatBreed, error) {
	var breeds []domain.CatBreed
	err := r.db.SelectContext(ctx, &breeds, "SELECT * FROM cat_breeds ORDER BY sort_order, label")
	if err != nil {
		return nil, fmt.Errorf("catBreedRepo.List: %w", err)
	}
	return breeds, nil
}

func (r *catBreedRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatBreed, error) {
	var breed domain.CatBreed
	err := r.db.GetContext(ctx, &breed, "SELECT * FROM cat_breeds WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("catBreedRepo.GetByID: %w", err)
	}
	return &breed, nil
}

func (r *catBreedRepo) Create(ctx context.Context, breed *domain.CatBreed) error {
	breed.ID = uuid.New()
	now := time.Now().UTC()
	breed.CreatedAt = now
	breed.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cat_breeds (id, label, value, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		breed.ID, breed.Label, breed.Value, breed.SortOrder, breed.CreatedAt, breed.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBreed
		}
		return fmt.Errorf("catBreedRepo.Create: %w", err)
	}
	return nil
}

func (r *catBreedRepo) Update(ctx context.Context, breed *domain.CatBreed) error {
	breed.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE cat_breeds SET label = $1, value = $2, sort_order = $3, updated_at = $4 WHERE id = $5`,
		breed.Label, breed.Value, breed.SortOrder, breed.UpdatedAt, breed.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBreed
		}
		return fmt.Errorf("catBreedRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catBreedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cat_breeds WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catBreedRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
