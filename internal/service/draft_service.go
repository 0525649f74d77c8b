package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"cattery/internal/aifill"
	"cattery/internal/domain"
)

const defaultMaxOpenDrafts = 256

// OpenDraftInput is the DTO for opening a cat form session. With CatID the
// form starts from that cat (edit); without it the form is blank (create).
type OpenDraftInput struct {
	CatID *uuid.UUID `json:"cat_id"`
}

// DraftFillInput is the DTO for an AI fill inside a form session.
type DraftFillInput struct {
	Text     string   `json:"text"`
	Images   []string `json:"images"`
	Provider string   `json:"provider"`
}

// DraftView is a snapshot of an open form session.
type DraftView struct {
	ID        uuid.UUID         `json:"id"`
	CatID     *uuid.UUID        `json:"cat_id"`
	Values    aifill.FormValues `json:"values"`
	AIFilled  aifill.FieldSet   `json:"ai_filled" swaggertype:"array,string"`
	Filling   bool              `json:"filling"`
	Warnings  []string          `json:"warnings"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// DraftFillResult is returned after a successful AI fill.
type DraftFillResult struct {
	Draft  *DraftView     `json:"draft"`
	Output *aifill.Output `json:"output"`
}

// DraftService manages open cat form sessions. Attribution lives only in
// memory and is never persisted.
type DraftService interface {
	Open(ctx context.Context, input OpenDraftInput) (*DraftView, error)
	Get(ctx context.Context, id uuid.UUID) (*DraftView, error)
	Edit(ctx context.Context, id uuid.UUID, edit aifill.Edit) (*DraftView, error)
	Fill(ctx context.Context, id uuid.UUID, input DraftFillInput) (*DraftFillResult, error)
	Reset(ctx context.Context, id uuid.UUID) (*DraftView, error)
	Commit(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
	Close(ctx context.Context, id uuid.UUID) error
	// CloseAll closes every session and cancels in-flight fills.
	CloseAll()
}

type draftSession struct {
	mu        sync.Mutex
	id        uuid.UUID
	catID     *uuid.UUID
	form      *aifill.Form
	filling   bool
	warnings  []string
	createdAt time.Time
	updatedAt time.Time

	// ctx is cancelled when the session is closed or evicted.
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *draftSession) viewLocked() *DraftView {
	return &DraftView{
		ID:        s.id,
		CatID:     s.catID,
		Values:    s.form.Values(),
		AIFilled:  s.form.Attribution(),
		Filling:   s.filling,
		Warnings:  append([]string(nil), s.warnings...),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}

type draftService struct {
	sessions  *lru.Cache[uuid.UUID, *draftSession]
	cats      CatService
	configs   ConfigService
	extractor FormExtractor
	now       func() time.Time
}

// NewDraftService creates a DraftService holding at most maxOpen sessions.
// The least recently used session is evicted past that, cancelling any
// extraction it has in flight.
func NewDraftService(maxOpen int, cats CatService, configs ConfigService, extractor FormExtractor) (DraftService, error) {
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenDrafts
	}
	cache, err := lru.NewWithEvict[uuid.UUID, *draftSession](maxOpen, func(id uuid.UUID, sess *draftSession) {
		sess.cancel()
	})
	if err != nil {
		return nil, fmt.Errorf("creating draft cache: %w", err)
	}
	return &draftService{
		sessions:  cache,
		cats:      cats,
		configs:   configs,
		extractor: extractor,
		now:       time.Now,
	}, nil
}

func (s *draftService) get(id uuid.UUID) (*draftSession, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return sess, nil
}

func (s *draftService) Open(ctx context.Context, input OpenDraftInput) (*DraftView, error) {
	var defaults aifill.FormValues
	if input.CatID != nil {
		cat, err := s.cats.GetByID(ctx, *input.CatID)
		if err != nil {
			return nil, err
		}
		defaults = formValuesFromCat(cat)
	} else {
		defaults = aifill.FormValues{Visible: s.configs.DefaultVisible(ctx)}
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	now := s.now()
	sess := &draftSession{
		id:        uuid.New(),
		catID:     input.CatID,
		form:      aifill.NewForm(defaults),
		createdAt: now,
		updatedAt: now,
		ctx:       sessCtx,
		cancel:    cancel,
	}
	if evicted := s.sessions.Add(sess.id, sess); evicted {
		log.Printf("draftService.Open: draft limit reached, evicted least recently used draft")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

func (s *draftService) Get(_ context.Context, id uuid.UUID) (*DraftView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

func (s *draftService) Edit(_ context.Context, id uuid.UUID, edit aifill.Edit) (*DraftView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.filling {
		return nil, domain.ErrFillInProgress
	}
	sess.form.Apply(edit)
	sess.updatedAt = s.now()
	return sess.viewLocked(), nil
}

func (s *draftService) Fill(ctx context.Context, id uuid.UUID, input DraftFillInput) (*DraftFillResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.filling {
		sess.mu.Unlock()
		return nil, domain.ErrFillInProgress
	}
	sess.filling = true
	sess.mu.Unlock()

	// The call ends when either the request or the session goes away.
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sess.ctx, cancel)
	defer stop()

	out, err := runExtraction(callCtx, s.extractor, aifill.Input{Text: input.Text, Images: input.Images}, input.Provider)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.filling = false
	if sess.ctx.Err() != nil {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	sess.form.Merge(out)
	sess.warnings = out.Warnings
	sess.updatedAt = s.now()
	return &DraftFillResult{Draft: sess.viewLocked(), Output: out}, nil
}

func (s *draftService) Reset(_ context.Context, id uuid.UUID) (*DraftView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.filling {
		return nil, domain.ErrFillInProgress
	}
	sess.form.Reset()
	sess.warnings = nil
	sess.updatedAt = s.now()
	return sess.viewLocked(), nil
}

func (s *draftService) Commit(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.filling {
		sess.mu.Unlock()
		return nil, domain.ErrFillInProgress
	}
	values := sess.form.Values()
	catID := sess.catID
	sess.mu.Unlock()

	var cat *domain.Cat
	if catID == nil {
		cat, err = s.cats.Create(ctx, createInputFromValues(values))
	} else {
		cat, err = s.cats.Update(ctx, *catID, updateInputFromValues(values))
	}
	if err != nil {
		return nil, err
	}

	s.sessions.Remove(id)
	log.Printf("draftService.Commit: committed draft %s as cat %s", id, cat.ID)
	return cat, nil
}

func (s *draftService) Close(_ context.Context, id uuid.UUID) error {
	sess, ok := s.sessions.Peek(id)
	if !ok {
		return domain.ErrDraftNotFound
	}
	s.sessions.Remove(id)
	sess.cancel()
	return nil
}

func (s *draftService) CloseAll() {
	s.sessions.Purge()
}

func formValuesFromCat(cat *domain.Cat) aifill.FormValues {
	return aifill.FormValues{
		Name:          deref(cat.Name),
		Breed:         cat.Breed,
		StoreName:     deref(cat.StoreName),
		Birthday:      deref(cat.Birthday),
		Price:         cat.Price,
		Description:   deref(cat.Description),
		CatcafeStatus: deref(cat.CatcafeStatus),
		Visible:       cat.Visible,
		Images:        append([]string(nil), cat.Images...),
		Thumbnail:     deref(cat.Thumbnail),
	}
}

func createInputFromValues(v aifill.FormValues) CreateCatInput {
	visible := v.Visible
	return CreateCatInput{
		Name:          optional(v.Name),
		Breed:         v.Breed,
		StoreName:     optional(v.StoreName),
		Birthday:      optional(v.Birthday),
		Price:         v.Price,
		Images:        v.Images,
		Thumbnail:     optional(v.Thumbnail),
		Description:   optional(v.Description),
		CatcafeStatus: optional(v.CatcafeStatus),
		Visible:       &visible,
	}
}

func updateInputFromValues(v aifill.FormValues) UpdateCatInput {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return UpdateCatInput{
		Name:          nullableString(v.Name),
		Breed:         Of(v.Breed),
		StoreName:     nullableString(v.StoreName),
		Birthday:      nullableString(v.Birthday),
		Price:         Nullable[float64]{Set: true, Value: v.Price},
		Images:        Of(images),
		Thumbnail:     nullableString(v.Thumbnail),
		Description:   nullableString(v.Description),
		CatcafeStatus: nullableString(v.CatcafeStatus),
		Visible:       Of(v.Visible),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableString(s string) Nullable[string] {
	if s == "" {
		return Null[string]()
	}
	return Of(s)
}
