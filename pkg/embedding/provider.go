package embedding

import (
	"context"
	"fmt"
)

// EmbeddingProvider defines the interface for generating text embeddings.
// Every call hits the provider; results are not cached.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
	// Dimensions is the fixed vector length this provider produces.
	Dimensions() int
	Name() string
}

// NewProvider selects an embedding backend by name.
func NewProvider(kind, baseURL, model, apiKey string) (EmbeddingProvider, error) {
	switch kind {
	case "openai":
		return NewOpenAIProvider(apiKey, baseURL, model)
	case "ollama":
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", kind)
	}
}
