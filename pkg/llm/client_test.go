package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	resp     *Response
	err      error
	calls    int
	messages []Message
	options  *Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []Message, opts ...Option) (*Response, error) {
	f.calls++
	f.messages = history
	f.options = ApplyOptions(opts...)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	return f.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, opts...)
}

func (f *fakeProvider) Name() string { return "fake" }

func TestCompleteBuildsOrderedMessages(t *testing.T) {
	p := &fakeProvider{resp: &Response{Content: "hi", TotalTokens: 1000, FinishReason: "stop"}}
	c := NewCompletionClient(p, ClientConfig{})

	history := []Message{
		{Role: RoleUser, Content: "[You]: first"},
		{Role: RoleAssistant, Content: "[CodeMaster]: reply"},
	}
	res, err := c.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "sys",
		UserPrompt:   "now",
		History:      history,
		Model:        "gpt-4-turbo",
		Temperature:  0.3,
	})
	require.NoError(t, err)

	require.Len(t, p.messages, 4)
	assert.Equal(t, Message{Role: RoleSystem, Content: "sys"}, p.messages[0])
	assert.Equal(t, history[0], p.messages[1])
	assert.Equal(t, history[1], p.messages[2])
	assert.Equal(t, Message{Role: RoleUser, Content: "now"}, p.messages[3])

	assert.Equal(t, "gpt-4-turbo-preview", p.options.Model)
	assert.Equal(t, DefaultMaxTokens, p.options.MaxTokens)
	assert.Equal(t, 0.3, p.options.Temperature)

	assert.Equal(t, "hi", res.Content)
	assert.Equal(t, "gpt-4-turbo-preview", res.Model)
	assert.Equal(t, 1000, res.TokensUsed)
	assert.InDelta(t, 0.02, res.EstimatedCost, 1e-9)
	assert.Equal(t, "stop", res.FinishReason)
}

func TestCompleteDefaults(t *testing.T) {
	p := &fakeProvider{resp: &Response{Content: "  ", PromptTokens: 10, CompletionTokens: 5}}
	c := NewCompletionClient(p, ClientConfig{PinnedModel: "llama3", Unmetered: true})

	res, err := c.Complete(context.Background(), CompletionRequest{Model: "claude-3-opus"})
	require.NoError(t, err)

	assert.Equal(t, "No response generated.", res.Content)
	assert.Equal(t, "unknown", res.FinishReason)
	assert.Equal(t, "llama3", res.Model)
	assert.Equal(t, 15, res.TokensUsed)
	assert.Zero(t, res.EstimatedCost)
}

func TestCompletePropagatesErrorWithoutRetry(t *testing.T) {
	boom := errors.New("boom")
	p := &fakeProvider{err: boom}
	c := NewCompletionClient(p, ClientConfig{})

	_, err := c.Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.calls)
}
