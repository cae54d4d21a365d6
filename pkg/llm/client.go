package llm

import (
	"context"
	"strings"
)

const (
	DefaultMaxTokens    = 2000
	emptyContent        = "No response generated."
	unknownFinishReason = "unknown"
)

type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	History      []Message
	Model        string
	Temperature  float64
}

type CompletionResult struct {
	Content       string
	Model         string
	TokensUsed    int
	EstimatedCost float64
	FinishReason  string
}

// Completer is the narrow contract the orchestrator and services depend on.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}

type ClientConfig struct {
	MaxTokens int
	// PinnedModel bypasses catalog model resolution, e.g. for a local Ollama model.
	PinnedModel string
	// Unmetered marks providers that do not bill per token.
	Unmetered bool
}

type CompletionClient struct {
	provider LLMProvider
	cfg      ClientConfig
}

var _ Completer = &CompletionClient{}

func NewCompletionClient(provider LLMProvider, cfg ClientConfig) *CompletionClient {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &CompletionClient{provider: provider, cfg: cfg}
}

// BuildMessages orders the prompt as system, history oldest first, then the user turn.
func BuildMessages(systemPrompt, userPrompt string, history []Message) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: userPrompt})
	return messages
}

// Complete issues exactly one provider call. Errors are returned as-is and never retried.
func (c *CompletionClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	model := c.cfg.PinnedModel
	if model == "" {
		model = ResolveModel(req.Model)
	}

	resp, err := c.provider.Chat(ctx,
		BuildMessages(req.SystemPrompt, req.UserPrompt, req.History),
		WithModel(model),
		WithTemperature(req.Temperature),
		WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil {
		return nil, err
	}

	content := resp.Content
	if strings.TrimSpace(content) == "" {
		content = emptyContent
	}
	finish := resp.FinishReason
	if finish == "" {
		finish = unknownFinishReason
	}
	tokens := resp.TotalTokens
	if tokens == 0 {
		tokens = resp.PromptTokens + resp.CompletionTokens
	}

	cost := 0.0
	if !c.cfg.Unmetered {
		cost = EstimateCost(model, tokens)
	}

	return &CompletionResult{
		Content:       content,
		Model:         model,
		TokensUsed:    tokens,
		EstimatedCost: cost,
		FinishReason:  finish,
	}, nil
}
