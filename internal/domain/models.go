package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated dashboard user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Cat is one cat listed by the cattery. Birthday is stored as YYYY-MM-DD.
type Cat struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          *string    `db:"name" json:"name"`
	Breed         string     `db:"breed" json:"breed"`
	StoreName     *string    `db:"store_name" json:"store_name"`
	Birthday      *string    `db:"birthday" json:"birthday"`
	Price         *float64   `db:"price" json:"price"`
	Images        StringList `db:"images" json:"images"`
	Thumbnail     *string    `db:"thumbnail" json:"thumbnail"`
	Description   *string    `db:"description" json:"description"`
	CatcafeStatus *string    `db:"catcafe_status" json:"catcafe_status"`
	Visible       bool       `db:"visible" json:"visible"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// CatFilter narrows a cat listing. Empty strings do not filter.
type CatFilter struct {
	Breed         string
	CatcafeStatus string
	StoreName     string
	IncludeHidden bool
}

// CatBreed is one entry of the configured breed vocabulary.
type CatBreed struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	Value     string    `db:"value" json:"value"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CatStatus is one entry of the configured cat-cafe status vocabulary.
type CatStatus struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Label string    `db:"label" json:"label"`
	Value string    `db:"value" json:"value"`
	Color string    `db:"color" json:"color"`
	// Hint lists slash-separated keywords that imply this status in free text.
	Hint      string    `db:"hint" json:"hint"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Store is a physical cattery location.
type Store struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	StoreType          *StoreType `db:"store_type" json:"store_type"`
	OwnerContact       *string    `db:"owner_contact" json:"owner_contact"`
	Location           *string    `db:"location" json:"location"`
	BusinessHours      *string    `db:"business_hours" json:"business_hours"`
	CatteryDescription *string    `db:"cattery_description" json:"cattery_description"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// ConfigEntry is a key/value setting. Value is arbitrary JSON.
type ConfigEntry struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Key         string          `db:"key" json:"key"`
	Value       json.RawMessage `db:"value" json:"value"`
	Description *string         `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// StringList is a []string stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("StringList.Scan: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
