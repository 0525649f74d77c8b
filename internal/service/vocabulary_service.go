package service

import (
	"context"
	"fmt"

	"cattery/internal/aifill"
	"cattery/internal/port"
)

// maxVocabularyStores bounds how many active stores are offered as choices.
const maxVocabularyStores = 500

type vocabularyService struct {
	breeds   port.CatBreedRepository
	statuses port.CatStatusRepository
	stores   port.StoreRepository
}

// NewVocabularyService creates an aifill.VocabularySource reading the
// breed, status and active store lists from the repositories on every call.
func NewVocabularyService(
	breeds port.CatBreedRepository,
	statuses port.CatStatusRepository,
	stores port.StoreRepository,
) aifill.VocabularySource {
	return &vocabularyService{breeds: breeds, statuses: statuses, stores: stores}
}

func (s *vocabularyService) Vocabulary(ctx context.Context) (*aifill.Vocabulary, error) {
	breeds, err := s.breeds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("vocabularyService.Vocabulary breeds: %w", err)
	}
	statuses, err := s.statuses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("vocabularyService.Vocabulary statuses: %w", err)
	}
	stores, _, err := s.stores.List(ctx, true, 0, maxVocabularyStores)
	if err != nil {
		return nil, fmt.Errorf("vocabularyService.Vocabulary stores: %w", err)
	}

	vocab := &aifill.Vocabulary{
		Breeds:   make([]aifill.Option, 0, len(breeds)),
		Statuses: make([]aifill.Option, 0, len(statuses)),
		Stores:   make([]aifill.Option, 0, len(stores)),
	}
	for _, b := range breeds {
		vocab.Breeds = append(vocab.Breeds, aifill.Option{Label: b.Label, Value: b.Value})
	}
	for _, st := range statuses {
		vocab.Statuses = append(vocab.Statuses, aifill.Option{Label: st.Label, Value: st.Value, Hint: st.Hint})
	}
	for _, st := range stores {
		vocab.Stores = append(vocab.Stores, aifill.Option{Label: st.Name, Value: st.Name})
	}
	return vocab, nil
}
