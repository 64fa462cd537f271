package completion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhishek/learngrow/internal/completion"
	"github.com/abhishek/learngrow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *completion.OpenAIGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return completion.NewOpenAIGateway(completion.Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL + "/v1",
		Timeout: 5 * time.Second,
	})
}

func TestOpenAIGateway_Complete(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "What is 2+2?", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "4"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 1, "total_tokens": 13}
		}`))
	})

	result, err := gw.Complete(context.Background(), "What is 2+2?")
	require.NoError(t, err)
	assert.Equal(t, "4", result.Answer)
	assert.Equal(t, "gpt-4o-mini", result.Model)
	assert.Equal(t, 12, result.PromptTokens)
	assert.Equal(t, 1, result.CompletionTokens)
}

func TestOpenAIGateway_UpstreamError(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "rate_limit_error"}}`))
	})

	_, err := gw.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
}

func TestOpenAIGateway_EmptyChoices(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "model": "gpt-4o-mini", "choices": []}`))
	})

	_, err := gw.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
}

func TestOpenAIGateway_Timeout(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := gw.Complete(ctx, "hello")
	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
	assert.Less(t, time.Since(start), time.Second)
}
