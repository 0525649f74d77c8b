package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"cattery/internal/aifill"
	"cattery/internal/domain"
	"cattery/internal/port"
)

var birthdayRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CreateCatInput is the DTO for creating a cat. Visible defaults to true.
type CreateCatInput struct {
	Name          *string  `json:"name"`
	Breed         string   `json:"breed" binding:"required"`
	StoreName     *string  `json:"store_name"`
	Birthday      *string  `json:"birthday"`
	Price         *float64 `json:"price"`
	Images        []string `json:"images"`
	Thumbnail     *string  `json:"thumbnail"`
	Description   *string  `json:"description"`
	CatcafeStatus *string  `json:"catcafe_status"`
	Visible       *bool    `json:"visible"`
}

// UpdateCatInput is the DTO for a partial cat update. Absent fields are left
// alone; explicit nulls clear nullable fields.
type UpdateCatInput struct {
	Name          Nullable[string]   `json:"name" swaggertype:"string"`
	Breed         Nullable[string]   `json:"breed" swaggertype:"string"`
	StoreName     Nullable[string]   `json:"store_name" swaggertype:"string"`
	Birthday      Nullable[string]   `json:"birthday" swaggertype:"string"`
	Price         Nullable[float64]  `json:"price" swaggertype:"number"`
	Images        Nullable[[]string] `json:"images" swaggertype:"array,string"`
	Thumbnail     Nullable[string]   `json:"thumbnail" swaggertype:"string"`
	Description   Nullable[string]   `json:"description" swaggertype:"string"`
	CatcafeStatus Nullable[string]   `json:"catcafe_status" swaggertype:"string"`
	Visible       Nullable[bool]     `json:"visible" swaggertype:"boolean"`
}

// CatService defines the cat management contract.
type CatService interface {
	Create(ctx context.Context, input CreateCatInput) (*domain.Cat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
	List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error)
	ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCatInput) (*domain.Cat, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type catService struct {
	repo  port.CatRepository
	vocab aifill.VocabularySource
}

// NewCatService creates a new CatService implementation.
func NewCatService(repo port.CatRepository, vocab aifill.VocabularySource) CatService {
	return &catService{repo: repo, vocab: vocab}
}

func (s *catService) Create(ctx context.Context, input CreateCatInput) (*domain.Cat, error) {
	cat := &domain.Cat{
		Name:          trimmed(input.Name),
		Breed:         strings.TrimSpace(input.Breed),
		StoreName:     trimmed(input.StoreName),
		Birthday:      trimmed(input.Birthday),
		Price:         input.Price,
		Images:        domain.StringList(input.Images),
		Thumbnail:     trimmed(input.Thumbnail),
		Description:   input.Description,
		CatcafeStatus: trimmed(input.CatcafeStatus),
		Visible:       true,
	}
	if input.Visible != nil {
		cat.Visible = *input.Visible
	}

	if err := s.validate(ctx, cat); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	log.Printf("catService.Create: created cat %s (breed %s)", cat.ID, cat.Breed)
	return cat, nil
}

func (s *catService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catService) List(ctx context.Context, filter domain.CatFilter, offset, limit int) ([]domain.Cat, int, error) {
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *catService) ListAll(ctx context.Context, filter domain.CatFilter) ([]domain.Cat, error) {
	return s.repo.ListAll(ctx, filter)
}

func (s *catService) Update(ctx context.Context, id uuid.UUID, input UpdateCatInput) (*domain.Cat, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Breed.Set {
		if input.Breed.Value == nil {
			return nil, fmt.Errorf("%w: breed cannot be null", domain.ErrInvalidCat)
		}
		cat.Breed = strings.TrimSpace(*input.Breed.Value)
	}
	if input.Visible.Set {
		if input.Visible.Value == nil {
			return nil, fmt.Errorf("%w: visible cannot be null", domain.ErrInvalidCat)
		}
		cat.Visible = *input.Visible.Value
	}
	input.Name.apply(&cat.Name)
	input.StoreName.apply(&cat.StoreName)
	input.Birthday.apply(&cat.Birthday)
	input.Price.apply(&cat.Price)
	input.Thumbnail.apply(&cat.Thumbnail)
	input.Description.apply(&cat.Description)
	input.CatcafeStatus.apply(&cat.CatcafeStatus)
	if input.Images.Set {
		if input.Images.Value == nil {
			cat.Images = domain.StringList{}
		} else {
			cat.Images = domain.StringList(*input.Images.Value)
		}
	}
	cat.Name = trimmed(cat.Name)
	cat.StoreName = trimmed(cat.StoreName)
	cat.Birthday = trimmed(cat.Birthday)
	cat.CatcafeStatus = trimmed(cat.CatcafeStatus)

	if err := s.validate(ctx, cat); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *catService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *catService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, domain.ErrEmptyBulkSelection
	}
	n, err := s.repo.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	log.Printf("catService.BulkDelete: deleted %d of %d cats", n, len(ids))
	return n, nil
}

// validate checks field formats and canonicalises breed, store and status
// against the configured vocabulary.
func (s *catService) validate(ctx context.Context, cat *domain.Cat) error {
	if cat.Breed == "" {
		return fmt.Errorf("%w: breed is required", domain.ErrInvalidCat)
	}
	if cat.Birthday != nil {
		if !birthdayRe.MatchString(*cat.Birthday) {
			return domain.ErrInvalidBirthday
		}
		if _, err := time.Parse("2006-01-02", *cat.Birthday); err != nil {
			return domain.ErrInvalidBirthday
		}
	}
	if cat.Price != nil && (math.IsNaN(*cat.Price) || math.IsInf(*cat.Price, 0) || *cat.Price <= 0) {
		return domain.ErrInvalidPrice
	}

	vocab, err := s.vocab.Vocabulary(ctx)
	if err != nil {
		return fmt.Errorf("catService.validate: %w", err)
	}
	breed, ok := vocab.CanonicalBreed(cat.Breed)
	if !ok {
		return domain.ErrUnknownBreed
	}
	cat.Breed = breed
	if cat.StoreName != nil {
		store, ok := vocab.CanonicalStore(*cat.StoreName)
		if !ok {
			return domain.ErrUnknownStore
		}
		cat.StoreName = &store
	}
	if cat.CatcafeStatus != nil {
		status, ok := vocab.CanonicalStatus(*cat.CatcafeStatus)
		if !ok {
			return domain.ErrUnknownStatus
		}
		cat.CatcafeStatus = &status
	}
	return nil
}

// trimmed returns nil for nil or blank strings, else the trimmed value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
