package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"cattery/internal/aifill"
	"cattery/internal/domain"
)

// FormExtractor runs one AI extraction. *aifill.Extractor implements it.
type FormExtractor interface {
	Extract(ctx context.Context, input aifill.Input, provider string) (*aifill.Output, error)
}

// FillInput is the DTO for a stateless form fill.
type FillInput struct {
	FormType domain.FormType `json:"form_type" binding:"required"`
	Text     string          `json:"text"`
	Images   []string        `json:"images"`
	Provider string          `json:"provider"`
}

// ProviderInfo describes one selectable AI provider.
type ProviderInfo struct {
	ID         aifill.Provider `json:"id"`
	Label      string          `json:"label"`
	Configured bool            `json:"configured"`
	Default    bool            `json:"default"`
	KeyURL     string          `json:"key_url"`
}

// FormFillService defines AI-assisted form filling.
type FormFillService interface {
	Fill(ctx context.Context, input FillInput) (*aifill.Output, error)
	Providers() []ProviderInfo
}

type formFillService struct {
	extractor FormExtractor
	resolver  *aifill.Resolver
}

// NewFormFillService creates a new FormFillService implementation.
func NewFormFillService(extractor FormExtractor, resolver *aifill.Resolver) FormFillService {
	return &formFillService{extractor: extractor, resolver: resolver}
}

func (s *formFillService) Fill(ctx context.Context, input FillInput) (*aifill.Output, error) {
	if input.FormType != domain.FormTypeCat {
		return nil, domain.ErrUnsupportedFormType
	}
	return runExtraction(ctx, s.extractor, aifill.Input{Text: input.Text, Images: input.Images}, input.Provider)
}

func (s *formFillService) Providers() []ProviderInfo {
	def := s.resolver.Default()
	out := make([]ProviderInfo, 0, len(aifill.Providers))
	for _, p := range aifill.Providers {
		out = append(out, ProviderInfo{
			ID:         p,
			Label:      p.Label(),
			Configured: s.resolver.Configured(p),
			Default:    p == def,
			KeyURL:     p.KeyURL(),
		})
	}
	return out
}

// runExtraction calls the extractor and logs the outcome without the free text.
func runExtraction(ctx context.Context, extractor FormExtractor, input aifill.Input, provider string) (*aifill.Output, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domain.ErrEmptyFillText
	}

	out, err := extractor.Extract(ctx, input, provider)
	if err != nil {
		if errors.Is(err, aifill.ErrEmptyText) {
			return nil, domain.ErrEmptyFillText
		}
		log.Printf("formFill.extract: provider=%q kind=%s: %v", provider, aifill.KindOf(err), err)
		return nil, err
	}
	if len(out.Warnings) > 0 {
		log.Printf("formFill.extract: provider=%q warnings=%q", provider, out.Warnings)
	}
	return out, nil
}
