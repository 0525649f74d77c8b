package aifill

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Output is the normalized extraction result. Every field is independently
// nullable; nil means the model could not determine it.
type Output struct {
	Name          *string  `json:"name"`
	Breed         *string  `json:"breed"`
	StoreName     *string  `json:"store_name"`
	Birthday      *string  `json:"birthday"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	CatcafeStatus *string  `json:"catcafe_status"`
	Visible       *bool    `json:"visible"`

	// Warnings flags low-confidence rewrites, such as a birthday that could
	// not be interpreted and was defaulted to today.
	Warnings []string `json:"warnings,omitempty"`
}

// Accepted key spellings per field, camelCase first.
var (
	keysName        = []string{"name"}
	keysBreed       = []string{"breed"}
	keysStoreName   = []string{"storeName", "store_name", "store"}
	keysBirthday    = []string{"birthday"}
	keysPrice       = []string{"price"}
	keysDescription = []string{"description"}
	keysStatus      = []string{"catcafeStatus", "catcafe_status", "status"}
	keysVisible     = []string{"visible"}
)

// Normalizer turns raw completion content into an Output.
type Normalizer struct {
	now   func() time.Time
	vocab *Vocabulary
}

// NewNormalizer creates a Normalizer that computes relative dates against now().
// A nil now uses time.Now.
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// WithVocabulary returns a copy of n that also checks breed, store and
// status against vocab. Out-of-vocabulary values are nulled.
func (n *Normalizer) WithVocabulary(vocab *Vocabulary) *Normalizer {
	return &Normalizer{now: n.now, vocab: vocab}
}

// Normalize parses raw, checks the shape of each field, rewrites the
// birthday to YYYY-MM-DD and applies vocabulary checks when configured.
func (n *Normalizer) Normalize(raw string) (*Output, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &obj); err != nil {
		return nil, &MalformedOutputError{Err: err}
	}
	if obj == nil {
		return nil, &MalformedOutputError{Detail: "expected a JSON object"}
	}

	out := &Output{}
	var err error

	if out.Name, err = stringField(obj, keysName); err != nil {
		return nil, err
	}
	if out.Breed, err = stringField(obj, keysBreed); err != nil {
		return nil, err
	}
	if out.StoreName, err = stringField(obj, keysStoreName); err != nil {
		return nil, err
	}
	if out.Birthday, err = stringField(obj, keysBirthday); err != nil {
		return nil, err
	}
	if out.Description, err = stringField(obj, keysDescription); err != nil {
		return nil, err
	}
	if out.CatcafeStatus, err = stringField(obj, keysStatus); err != nil {
		return nil, err
	}
	if out.Visible, err = boolField(obj, keysVisible); err != nil {
		return nil, err
	}
	if out.Price, err = n.priceField(obj, out); err != nil {
		return nil, err
	}

	if out.Birthday != nil && !isoDateRe.MatchString(*out.Birthday) {
		date, ok := resolveBirthday(*out.Birthday, n.now())
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("birthday: could not interpret %q, defaulted to today", *out.Birthday))
		}
		out.Birthday = &date
	}

	if n.vocab != nil {
		out.Breed = checkVocabulary(out, "breed", out.Breed, n.vocab.Breeds)
		out.StoreName = checkVocabulary(out, "store_name", out.StoreName, n.vocab.Stores)
		out.CatcafeStatus = checkVocabulary(out, "catcafe_status", out.CatcafeStatus, n.vocab.Statuses)
	}

	return out, nil
}

func checkVocabulary(out *Output, field string, val *string, opts []Option) *string {
	if val == nil {
		return nil
	}
	canonical, ok := lookup(opts, *val)
	if !ok {
		out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %q is not a configured value", field, *val))
		return nil
	}
	return &canonical
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

// rawField returns the value of the first key that is present and not
// JSON null.
func rawField(obj map[string]json.RawMessage, keys []string) (string, json.RawMessage) {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || strings.TrimSpace(string(v)) == "null" {
			continue
		}
		return k, v
	}
	return keys[0], nil
}

func stringField(obj map[string]json.RawMessage, keys []string) (*string, error) {
	key, raw := rawField(obj, keys)
	if raw == nil {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &MalformedOutputError{Detail: fmt.Sprintf("field %s: expected string or null", key), Err: err}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func boolField(obj map[string]json.RawMessage, keys []string) (*bool, error) {
	key, raw := rawField(obj, keys)
	if raw == nil {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, perr := strconv.ParseBool(strings.TrimSpace(s)); perr == nil {
			return &parsed, nil
		}
	}
	return nil, &MalformedOutputError{Detail: fmt.Sprintf("field %s: expected boolean or null", key)}
}

var priceNoise = strings.NewReplacer("元", "", "¥", "", "￥", "", ",", "", "，", "", " ", "")

// priceField accepts a JSON number or a numeric string. Non-positive,
// non-finite and non-numeric values become null with a warning.
func (n *Normalizer) priceField(obj map[string]json.RawMessage, out *Output) (*float64, error) {
	key, raw := rawField(obj, keysPrice)
	if raw == nil {
		return nil, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if serr := json.Unmarshal(raw, &s); serr != nil {
			return nil, &MalformedOutputError{Detail: fmt.Sprintf("field %s: expected number or null", key), Err: err}
		}
		parsed, perr := strconv.ParseFloat(priceNoise.Replace(strings.TrimSpace(s)), 64)
		if perr != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("price: %q is not a number", s))
			return nil, nil
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("price: %v is not a positive number", f))
		return nil, nil
	}
	return &f, nil
}
