package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-council-be/pkg/llm"
	"ai-council-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProviderRejectsMissingKey(t *testing.T) {
	_, err := NewOpenAIProvider("", "", "")
	assert.ErrorIs(t, err, upstream.ErrMissingCredential)

	_, err = NewOpenAIProvider("your-openai-api-key-here", "", "")
	assert.ErrorIs(t, err, upstream.ErrMissingCredential)
}

func TestChat(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4-0613",
			"choices": [{"message": {"role": "assistant", "content": "Hello!"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL, "")
	require.NoError(t, err)

	resp, err := p.Chat(context.Background(),
		[]llm.Message{{Role: llm.RoleSystem, Content: "sys"}, {Role: llm.RoleUser, Content: "hi"}},
		llm.WithModel("gpt-4"), llm.WithTemperature(0.2), llm.WithMaxTokens(2000),
	)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4", got.Model)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.Equal(t, 0.2, got.Temperature)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)

	assert.Equal(t, "Hello!", resp.Content)
	assert.Equal(t, 15, resp.TotalTokens)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestChatMapsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"invalid key", http.StatusUnauthorized, upstream.ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, upstream.ErrRateLimited},
		{"unavailable", http.StatusServiceUnavailable, upstream.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			p, err := NewOpenAIProvider("sk-test", srv.URL, "")
			require.NoError(t, err)

			_, err = p.Generate(context.Background(), "hi")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
