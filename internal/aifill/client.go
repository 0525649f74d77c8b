package aifill

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Completer issues one chat-completion call and returns the raw content.
type Completer interface {
	Extract(ctx context.Context, cfg *ProviderConfig, systemPrompt, userMessage string) (string, error)
}

// Client implements Completer over HTTP against any OpenAI-compatible
// chat-completions endpoint. It never retries.
type Client struct {
	http *http.Client
}

// NewClient creates a Client whose requests are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewClientWithHTTP creates a Client around an existing http.Client (for testing).
func NewClientWithHTTP(c *http.Client) *Client {
	return &Client{http: c}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	TopP           float64         `json:"top_p"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	ResultFormat   string          `json:"result_format,omitempty"`
}

// chatResponse models the subset of the completion response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func newChatRequest(cfg *ProviderConfig, systemPrompt, userMessage string) chatRequest {
	req := chatRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
	}
	cfg.Provider.variant().applyMode(&req)
	return req
}

// Extract posts the two-message conversation and returns choices[0].message.content.
func (c *Client) Extract(ctx context.Context, cfg *ProviderConfig, systemPrompt, userMessage string) (string, error) {
	bodyBytes, err := json.Marshal(newChatRequest(cfg, systemPrompt, userMessage))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: cfg.Provider, Timeout: isTimeout(err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: cfg.Provider, Timeout: isTimeout(err), Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ProviderError{Provider: cfg.Provider, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &ProviderError{Provider: cfg.Provider, Body: string(respBody), Err: fmt.Errorf("unmarshaling response: %w", err)}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: cfg.Provider, Body: string(respBody)}
	}

	return parsed.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
