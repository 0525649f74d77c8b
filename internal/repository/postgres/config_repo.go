package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cattery/internal/domain"
	"cattery/internal/port"
)

type configRepo struct {
	db *sqlx.DB
}

// NewConfigRepo creates a new PostgreSQL-backed ConfigRepository.
func NewConfigRepo(db *sqlx.DB) port.ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error) {
	where := ""
	args := []interface{}{}
	if keyFilter != "" {
		where = " WHERE key ILIKE $1"
		args = append(args, "%"+keyFilter+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM configs"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("configRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM configs%s ORDER BY key LIMIT $%d OFFSET $%d", where, len(args)+1, len(args)+2)
	var entries []domain.ConfigEntry
	if err := r.db.SelectContext(ctx, &entries, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("configRepo.List: %w", err)
	}
	return entries, total, nil
}

func (r *configRepo) GetByKey(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	var entry domain.ConfigEntry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM configs WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("configRepo.GetByKey: %w", err)
	}
	return &entry, nil
}

func (r *configRepo) Upsert(ctx context.Context, entry *domain.ConfigEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	query := `INSERT INTO configs (id, key, value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, entry.ID, entry.Key, string(entry.Value), entry.Description).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("configRepo.Upsert: %w", err)
	}
	return nil
}
