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

type catStatusRepo struct {
	db *sqlx.DB
}

// NewCatStatusRepo creates a new PostgreSQL-backed CatStatusRepository.
func NewCatStatusRepo(db *sqlx.DB) port.CatStatusRepository {
	return &catStatusRepo{db: db}
}

func (r *catStatusRepo) List(ctx context.Context) ([]domain.CatStatus, error) {
	var statuses []domain.CatStatus
	err := r.db.SelectContext(ctx, &statuses, "SELECT * FROM cat_statuses ORDER BY sort_order, label")
	if err != nil {
		return nil, fmt.Errorf("catStatusRepo.List: %w", err)
	}
	return statuses, nil
}

func (r *catStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatStatus, error) {
	var status domain.CatStatus
	err := r.db.GetContext(ctx, &status, "SELECT * FROM cat_statuses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("catStatusRepo.GetByID: %w", err)
	}
	return &status, nil
}

func (r *catStatusRepo) Create(ctx context.Context, status *domain.CatStatus) error {
	status.ID = uuid.New()
	now := time.Now().UTC()
	status.CreatedAt = now
	status.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cat_statuses (id, label, value, color, hint, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		status.ID, status.Label, status.Value, status.Color, status.Hint, status.SortOrder, status.CreatedAt, status.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStatus
		}
		return fmt.Errorf("catStatusRepo.Create: %w", err)
	}
	return nil
}

func (r *catStatusRepo) Update(ctx context.Context, status *domain.CatStatus) error {
	status.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE cat_statuses SET label = $1, value = $2, color = $3, hint = $4, sort_order = $5, updated_at = $6
		 WHERE id = $7`,
		status.Label, status.Value, status.Color, status.Hint, status.SortOrder, status.UpdatedAt, status.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStatus
		}
		return fmt.Errorf("catStatusRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catStatusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cat_statuses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catStatusRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
