package aifill

import (
	"context"
	"strings"
)

// Option is one entry of an admin-configured closed list. Hint carries
// optional slash-separated keywords shown to the model next to the label.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

// Vocabulary holds the currently configured allowed values.
type Vocabulary struct {
	Breeds   []Option
	Stores   []Option
	Statuses []Option
}

// VocabularySource supplies the live vocabulary for each extraction call.
type VocabularySource interface {
	Vocabulary(ctx context.Context) (*Vocabulary, error)
}

// BreedValues returns the breed values in configured order.
func (v *Vocabulary) BreedValues() []string {
	if v == nil {
		return nil
	}
	return values(v.Breeds)
}

func values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

// lookup matches s against option values first, then labels, and returns
// the canonical value. An empty list accepts anything.
func lookup(opts []Option, s string) (string, bool) {
	if len(opts) == 0 {
		return s, true
	}
	s = strings.TrimSpace(s)
	for _, o := range opts {
		if o.Value == s {
			return o.Value, true
		}
	}
	for _, o := range opts {
		if o.Label == s {
			return o.Value, true
		}
	}
	return "", false
}

// CanonicalBreed maps s to a configured breed value.
func (v *Vocabulary) CanonicalBreed(s string) (string, bool) { return lookup(v.Breeds, s) }

// CanonicalStore maps s to a configured store value.
func (v *Vocabulary) CanonicalStore(s string) (string, bool) { return lookup(v.Stores, s) }

// CanonicalStatus maps s to a configured status value.
func (v *Vocabulary) CanonicalStatus(s string) (string, bool) { return lookup(v.Statuses, s) }
