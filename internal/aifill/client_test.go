package aifill_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cattery/internal/aifill"
)

func providerConfig(p aifill.Provider, endpoint string) *aifill.ProviderConfig {
	return &aifill.ProviderConfig{
		Provider:    p,
		APIKey:      "test-key",
		Endpoint:    endpoint,
		Model:       "test-model",
		Temperature: 0.3,
		TopP:        0.7,
		MaxTokens:   1024,
	}
}

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Extract_Zhipu_RequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		assert.InDelta(t, 0.3, body["temperature"], 1e-9)
		assert.InDelta(t, 0.7, body["top_p"], 1e-9)
		assert.Equal(t, float64(1024), body["max_tokens"])
		assert.Equal(t, map[string]interface{}{"type": "json_object"}, body["response_format"])
		_, hasResultFormat := body["result_format"]
		assert.False(t, hasResultFormat)

		messages := body["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "sys", messages[0].(map[string]interface{})["content"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
		assert.Equal(t, "usr", messages[1].(map[string]interface{})["content"])

		_ = json.NewEncoder(w).Encode(completionResponse(`{"name":"团子"}`))
	}))
	defer server.Close()

	c := aifill.NewClient(5 * time.Second)
	content, err := c.Extract(context.Background(), providerConfig(aifill.ProviderZhipu, server.URL), "sys", "usr")

	require.NoError(t, err)
	assert.Equal(t, `{"name":"团子"}`, content)
}

func TestClient_Extract_Bailian_ResultFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "message", body["result_format"])
		_, hasResponseFormat := body["response_format"]
		assert.False(t, hasResponseFormat)

		_ = json.NewEncoder(w).Encode(completionResponse(`{}`))
	}))
	defer server.Close()

	c := aifill.NewClient(5 * time.Second)
	content, err := c.Extract(context.Background(), providerConfig(aifill.ProviderBailian, server.URL), "sys", "usr")

	require.NoError(t, err)
	assert.Equal(t, `{}`, content)
}

func TestClient_Extract_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	c := aifill.NewClient(5 * time.Second)
	content, err := c.Extract(context.Background(), providerConfig(aifill.ProviderBailian, server.URL), "sys", "usr")

	assert.Empty(t, content)
	var pErr *aifill.ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, aifill.ProviderBailian, pErr.Provider)
	assert.Equal(t, http.StatusInternalServerError, pErr.StatusCode)
	assert.Equal(t, `{"error":"boom"}`, pErr.Body)
	assert.False(t, pErr.Timeout)
	assert.Equal(t, aifill.KindProvider, aifill.KindOf(err))
	assert.Contains(t, err.Error(), "Alibaba Bailian API error: 500")
}

func TestClient_Extract_EmptyContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "empty content", body: `{"choices":[{"message":{"content":""}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := aifill.NewClient(5 * time.Second)
			_, err := c.Extract(context.Background(), providerConfig(aifill.ProviderZhipu, server.URL), "sys", "usr")

			var pErr *aifill.ProviderError
			require.True(t, errors.As(err, &pErr))
			assert.Zero(t, pErr.StatusCode)
			assert.Contains(t, err.Error(), "empty response")
		})
	}
}

func TestClient_Extract_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := aifill.NewClient(50 * time.Millisecond)
	_, err := c.Extract(context.Background(), providerConfig(aifill.ProviderZhipu, server.URL), "sys", "usr")

	var pErr *aifill.ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.True(t, pErr.Timeout)
}

func TestClient_Extract_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	c := aifill.NewClient(5 * time.Second)
	_, err := c.Extract(ctx, providerConfig(aifill.ProviderZhipu, server.URL), "sys", "usr")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
