package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"cattery/internal/domain"
	"cattery/internal/port"
)

// Well-known config keys.
const (
	ConfigKeyCatteryName    = "cattery.name"
	ConfigKeyCatteryContact = "cattery.contact"
	ConfigKeyDefaultVisible = "cats.default_visible"
	ConfigKeyPriceRange     = "cats.price_range"
)

// configSchemas holds the JSON Schema each well-known key's value must match.
// Keys not listed accept any JSON value.
var configSchemas = map[string]string{
	ConfigKeyCatteryName: `{"type": "string", "minLength": 1, "maxLength": 100}`,
	ConfigKeyCatteryContact: `{
		"type": "object",
		"properties": {
			"phone": {"type": "string"},
			"wechat": {"type": "string"},
			"address": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	ConfigKeyDefaultVisible: `{"type": "boolean"}`,
	ConfigKeyPriceRange: `{
		"type": "object",
		"properties": {
			"min": {"type": "number", "minimum": 0},
			"max": {"type": "number", "exclusiveMinimum": 0}
		},
		"required": ["min", "max"],
		"additionalProperties": false
	}`,
}

// SetConfigInput is the DTO for writing a config value.
type SetConfigInput struct {
	Value       json.RawMessage `json:"value" binding:"required" swaggertype:"object"`
	Description *string         `json:"description"`
}

// ConfigService defines key/value settings management.
type ConfigService interface {
	List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error)
	Get(ctx context.Context, key string) (*domain.ConfigEntry, error)
	Set(ctx context.Context, key string, input SetConfigInput) (*domain.ConfigEntry, error)
	// DefaultVisible returns cats.default_visible, or true when unset.
	DefaultVisible(ctx context.Context) bool
}

type configService struct {
	repo    port.ConfigRepository
	schemas map[string]*jsonschema.Schema
}

// NewConfigService compiles the well-known schemas and creates a ConfigService.
func NewConfigService(repo port.ConfigRepository) (ConfigService, error) {
	schemas := make(map[string]*jsonschema.Schema, len(configSchemas))
	for key, src := range configSchemas {
		compiler := jsonschema.NewCompiler()
		url := key + ".schema.json"
		if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
			return nil, fmt.Errorf("adding schema for %s: %w", key, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", key, err)
		}
		schemas[key] = schema
	}
	return &configService{repo: repo, schemas: schemas}, nil
}

func (s *configService) List(ctx context.Context, keyFilter string, offset, limit int) ([]domain.ConfigEntry, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(keyFilter), offset, limit)
}

func (s *configService) Get(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	return s.repo.GetByKey(ctx, key)
}

func (s *configService) Set(ctx context.Context, key string, input SetConfigInput) (*domain.ConfigEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", domain.ErrInvalidConfigValue)
	}
	if err := s.validate(key, input.Value); err != nil {
		return nil, err
	}

	entry := &domain.ConfigEntry{
		Key:         key,
		Value:       input.Value,
		Description: input.Description,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	log.Printf("configService.Set: updated %s", key)
	return entry, nil
}

func (s *configService) validate(key string, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfigValue, err)
	}

	schema, ok := s.schemas[key]
	if !ok {
		return nil
	}
	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			for len(verr.Causes) > 0 {
				verr = verr.Causes[0]
			}
			return fmt.Errorf("%w: %s %s", domain.ErrInvalidConfigValue, verr.InstanceLocation, verr.Message)
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfigValue, err)
	}
	return nil
}

func (s *configService) DefaultVisible(ctx context.Context) bool {
	entry, err := s.repo.GetByKey(ctx, ConfigKeyDefaultVisible)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("configService.DefaultVisible: %v", err)
		}
		return true
	}
	var visible bool
	if err := json.Unmarshal(entry.Value, &visible); err != nil {
		return true
	}
	return visible
}
