package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cattery/internal/domain"
	"cattery/internal/port"
)

type catRepo struct {
	db *sqlx.DB
}

// NewCatRepo creates a new PostgreSQL-backed CatRepository.
func NewCatRepo(db *sqlx.DB) port.CatRepository {
	return &catRepo{db: db}
}

// catWhere builds the WHERE clause for a filter. Placeholders start at $1.
func catWhere(filter domain.CatFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Breed != "" {
		add("breed = $%d", filter.Breed)
	}
	if filter.CatcafeStatus != "" {
		add("catcafe_status = $%d", filter.CatcafeStatus)
	}
	if filter.StoreName != "" {
		add("store_name = $%d", filter.StoreName)
	}
	if !filter.IncludeHidden {
		conds = append(conds, "visible = TRUE")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *catRepo) Create(ctx context.Context, cat *domain.Cat) error {
	cat.ID = uuid.New()
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	if cat.Images == nil {
		cat.Images = domain.StringList{}
	}

	query := `INSERT INTO cats (
		id, name, breed, store_name, birthday, price, images, thumbnail,
		description, catcafe_status, visible, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		cat.ID, cat.Name, cat.Breed, cat.StoreName, cat.Birthday, cat.Price, cat.Images, cat.Thumbnail,
		cat.Description, cat.CatcafeStatus, cat.Visible, cat.CreatedAt, cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("catRepo.Create: %w", err)
	}
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	var cat domain.Cat
	err := r.db.GetContext(ctx, &cat, "SELECT * FROM cats WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("catRepo.GetByID: %w", err)
	}
	return &cat, nil
}

func (r *catRepo) List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error) {
	where, args := catWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM cats"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("catRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM cats%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	var cats []domain.Cat
	if err := r.db.SelectContext(ctx, &cats, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("catRepo.List: %w", err)
	}
	return cats, total, nil
}

func (r *catRepo) ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error) {
	where, args := catWhere(filter)

	var cats []domain.Cat
	if err := r.db.SelectContext(ctx, &cats, "SELECT * FROM cats"+where+" ORDER BY created_at DESC", args...); err != nil {
		return nil, fmt.Errorf("catRepo.ListAll: %w", err)
	}
	return cats, nil
}

func (r *catRepo) Update(ctx context.Context, cat *domain.Cat) error {
	cat.UpdatedAt = time.Now().UTC()
	if cat.Images == nil {
		cat.Images = domain.StringList{}
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE cats SET
			name = $1, breed = $2, store_name = $3, birthday = $4, price = $5,
			images = $6, thumbnail = $7, description = $8, catcafe_status = $9,
			visible = $10, updated_at = $11
		 WHERE id = $12`,
		cat.Name, cat.Breed, cat.StoreName, cat.Birthday, cat.Price,
		cat.Images, cat.Thumbnail, cat.Description, cat.CatcafeStatus,
		cat.Visible, cat.UpdatedAt, cat.ID)
	if err != nil {
		return fmt.Errorf("catRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}

func (r *catRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cats WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}

func (r *catRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	return bulkDelete(ctx, r.db, "cats", ids)
}

// bulkDelete removes every row of table whose id is in ids and returns the
// number of rows removed. Unknown ids are ignored.
func bulkDelete(ctx context.Context, db *sqlx.DB, table string, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM "+table+" WHERE id IN (?)", ids)
	if err != nil {
		return 0, fmt.Errorf("bulkDelete %s: %w", table, err)
	}
	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("bulkDelete %s: %w", table, err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}
