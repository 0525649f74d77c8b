package aifill

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures for callers.
type Kind string

const (
	KindConfiguration   Kind = "configuration_error"
	KindProvider        Kind = "provider_error"
	KindMalformedOutput Kind = "malformed_output_error"
)

// ErrEmptyText is returned when there is no free text to extract from.
var ErrEmptyText = errors.New("aifill: input text is empty")

// ConfigurationError means the selected provider cannot be called as configured.
type ConfigurationError struct {
	Provider Provider
	Message  string
}

func (e *ConfigurationError) Error() string { return e.Message }

// Kind returns KindConfiguration.
func (e *ConfigurationError) Kind() Kind { return KindConfiguration }

func newMissingKeyError(p Provider) *ConfigurationError {
	return &ConfigurationError{
		Provider: p,
		Message: fmt.Sprintf("%s API key is not configured. Set %s in the environment or .env file. Get an API key at %s",
			p.Label(), p.EnvKey(), p.KeyURL()),
	}
}

// ProviderError means the provider call failed or returned nothing usable.
// StatusCode is zero when no HTTP response was received.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s request timed out: %v", e.Provider.Label(), e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API error: %d - %s", e.Provider.Label(), e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Provider.Label(), e.Err)
	default:
		return fmt.Sprintf("%s returned an empty response", e.Provider.Label())
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Kind returns KindProvider.
func (e *ProviderError) Kind() Kind { return KindProvider }

// MalformedOutputError means the completion content was not the expected JSON object.
type MalformedOutputError struct {
	Detail string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	if e.Detail == "" {
		return "AI returned malformed JSON, please retry"
	}
	return "AI returned malformed JSON, please retry: " + e.Detail
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// Kind returns KindMalformedOutput.
func (e *MalformedOutputError) Kind() Kind { return KindMalformedOutput }

// KindOf returns the pipeline error kind of err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}
