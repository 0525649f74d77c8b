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

type storeRepo struct {
	db *sqlx.DB
}

// NewStoreRepo creates a new PostgreSQL-backed StoreRepository.
func NewStoreRepo(db *sqlx.DB) port.StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Store, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = TRUE"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stores"+where); err != nil {
		return nil, 0, fmt.Errorf("storeRepo.List count: %w", err)
	}

	var stores []domain.Store
	err := r.db.SelectContext(ctx, &stores,
		"SELECT * FROM stores"+where+" ORDER BY created_at ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("storeRepo.List: %w", err)
	}
	return stores, total, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	var store domain.Store
	err := r.db.GetContext(ctx, &store, "SELECT * FROM stores WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("storeRepo.GetByID: %w", err)
	}
	return &store, nil
}

func (r *storeRepo) Create(ctx context.Context, store *domain.Store) error {
	store.ID = uuid.New()
	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stores (id, name, store_type, owner_contact, location, business_hours,
			cattery_description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		store.ID, store.Name, store.StoreType, store.OwnerContact, store.Location, store.BusinessHours,
		store.CatteryDescription, store.IsActive, store.CreatedAt, store.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStore
		}
		return fmt.Errorf("storeRepo.Create: %w", err)
	}
	return nil
}

func (r *storeRepo) Update(ctx context.Context, store *domain.Store) error {
	store.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE stores SET name = $1, store_type = $2, owner_contact = $3, location = $4,
			business_hours = $5, cattery_description = $6, is_active = $7, updated_at = $8
		 WHERE id = $9`,
		store.Name, store.StoreType, store.OwnerContact, store.Location,
		store.BusinessHours, store.CatteryDescription, store.IsActive, store.UpdatedAt, store.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStore
		}
		return fmt.Errorf("storeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *storeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stores WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("storeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *storeRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	return bulkDelete(ctx, r.db, "stores", ids)
}
