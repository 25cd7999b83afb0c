package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewGeminiClient("test-key")
	require.NoError(t, err)
	client.SetBaseURLForTesting(server.URL)

	return client
}

func TestNewGeminiClient_EmptyKey(t *testing.T) {
	_, err := NewGeminiClient("   ")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateContent_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"suggestions\":\"ok\"}"}]}}]}`))
	})

	text, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"suggestions":"ok"}`, text)
}

func TestGenerateContent_ModelNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"models/nope is not found","status":"NOT_FOUND"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "nope", "prompt")
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestGenerateContent_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"RESOURCE_EXHAUSTED: too many requests","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", "prompt")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", "prompt")
	assert.Error(t, err)
}
