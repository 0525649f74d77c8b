package aifill

import "cattery/internal/config"

// ProviderConfig is the fully resolved configuration for one extraction call.
type ProviderConfig struct {
	Provider    Provider
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Resolver selects a provider and checks its credential. The default
// selector is captured at construction; Resolve reads no global state.
type Resolver struct {
	defaultProvider Provider
	settings        map[Provider]config.AIProviderConfig
}

// NewResolver builds a Resolver from the AI section of the application config.
func NewResolver(cfg *config.AIConfig) *Resolver {
	return &Resolver{
		defaultProvider: ParseProvider(cfg.Provider),
		settings: map[Provider]config.AIProviderConfig{
			ProviderZhipu:   cfg.Zhipu,
			ProviderBailian: cfg.Bailian,
		},
	}
}

// Default returns the provider used when no explicit selector is given.
func (r *Resolver) Default() Provider {
	return r.defaultProvider
}

// Resolve returns the configuration for explicit, or for the default
// provider when explicit is blank. Unknown selectors fall back to
// DefaultProvider. A missing API key yields a *ConfigurationError.
func (r *Resolver) Resolve(explicit string) (*ProviderConfig, error) {
	p := r.defaultProvider
	if explicit != "" {
		p = ParseProvider(explicit)
	}

	s := r.settings[p]
	if s.APIKey == "" {
		return nil, newMissingKeyError(p)
	}

	return &ProviderConfig{
		Provider:    p,
		APIKey:      s.APIKey,
		Endpoint:    s.Endpoint,
		Model:       s.Model,
		Temperature: s.Temperature,
		TopP:        s.TopP,
		MaxTokens:   s.MaxTokens,
	}, nil
}

// Configured reports whether p has a credential, without returning an error.
func (r *Resolver) Configured(p Provider) bool {
	_, err := r.Resolve(string(p))
	return err == nil
}
