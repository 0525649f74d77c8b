package aifill

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Input is the free text to extract from. Images are accepted but not sent
// to the provider.
type Input struct {
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}

// Extractor runs the pipeline: resolve provider, build prompt, call the
// provider, normalize. It holds no per-call state and is safe for
// concurrent use.
type Extractor struct {
	resolver  *Resolver
	completer Completer
	vocab     VocabularySource
	now       func() time.Time
	validate  bool
}

// ExtractorOption customises an Extractor.
type ExtractorOption func(*Extractor)

// WithClock overrides the clock used for relative birthdays.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) { e.now = now }
}

// WithVocabularyValidation toggles checking breed, store and status
// against the live vocabulary.
func WithVocabularyValidation(enabled bool) ExtractorOption {
	return func(e *Extractor) { e.validate = enabled }
}

// NewExtractor wires the pipeline stages together.
func NewExtractor(resolver *Resolver, completer Completer, vocab VocabularySource, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		resolver:  resolver,
		completer: completer,
		vocab:     vocab,
		now:       time.Now,
		validate:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolver exposes the provider resolver.
func (e *Extractor) Resolver() *Resolver {
	return e.resolver
}

// Extract runs one extraction for input using provider, or the default
// provider when provider is blank. Credentials are checked before any
// vocabulary read or network call.
func (e *Extractor) Extract(ctx context.Context, input Input, provider string) (*Output, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	cfg, err := e.resolver.Resolve(provider)
	if err != nil {
		return nil, err
	}

	vocab, err := e.vocab.Vocabulary(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}

	raw, err := e.completer.Extract(ctx, cfg, BuildSystemPrompt(vocab), BuildUserMessage(input.Text))
	if err != nil {
		return nil, err
	}

	n := NewNormalizer(e.now)
	if e.validate {
		n = n.WithVocabulary(vocab)
	}
	return n.Normalize(raw)
}
