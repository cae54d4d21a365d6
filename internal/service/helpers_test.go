package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/pkg/testutil"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

var nopLog = logger.NewNopLogger()

func newFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(testutil.NewSQLite(t))
}

func seedUser(t *testing.T, f unitofwork.RepositoryFactory, email string, tier entity.SubscriptionTier) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, PasswordHash: "x", SubscriptionTier: tier}
	require.NoError(t, f.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), u))
	return u
}

var errCompletion = errors.New("completion failed")

// fakeCompleter answers with a deterministic reply and can fail on the n-th call (1-based).
type fakeCompleter struct {
	mu       sync.Mutex
	calls    int
	failOn   int
	err      error
	requests []llm.CompletionRequest
	onCall   func(call int)
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.onCall != nil {
		f.onCall(call)
	}
	if f.failOn > 0 && call == f.failOn {
		if f.err != nil {
			return nil, f.err
		}
		return nil, errCompletion
	}
	return &llm.CompletionResult{
		Content:       fmt.Sprintf("reply %d", call),
		Model:         req.Model,
		TokensUsed:    10,
		EstimatedCost: 0.01,
		FinishReason:  "stop",
	}, nil
}

// fakeEmbedder maps text to a bag-of-words vector over a fixed vocabulary.
type fakeEmbedder struct {
	vocab []string
	dims  int
	err   error
}

func newFakeEmbedder() *fakeEmbedder {
	vocab := []string{"hiking", "mountain", "coffee", "code", "golang", "music", "love", "trail"}
	return &fakeEmbedder{vocab: vocab, dims: len(vocab)}
}

func (e *fakeEmbedder) Generate(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	vec := make([]float32, len(e.vocab))
	lower := strings.ToLower(text)
	for i, w := range e.vocab {
		if strings.Contains(lower, w) {
			vec[i] = 1
		}
	}
	return vec, nil
}

func (e *fakeEmbedder) Dimensions() int { return e.dims }
func (e *fakeEmbedder) Name() string    { return "fake" }
