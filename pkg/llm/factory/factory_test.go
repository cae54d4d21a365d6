package factory

import (
	"testing"

	"ai-council-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider("ollama", "llama3", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	p, err = NewLLMProvider("openai", "", "", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	_, err = NewLLMProvider("openai", "", "", "")
	assert.ErrorIs(t, err, upstream.ErrMissingCredential)

	_, err = NewLLMProvider("bard", "", "", "")
	assert.Error(t, err)
}
