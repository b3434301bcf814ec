package factory

import (
	"testing"

	"flowa-be/pkg/llm/stub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentProviderRejectsUnknownModel(t *testing.T) {
	_, err := NewContentProvider("cohere")
	assert.EqualError(t, err, "unsupported content provider: cohere")
}

func TestRegistryFallsBackToDefault(t *testing.T) {
	r, err := NewRegistry("anthropic", "openai", "anthropic")
	require.NoError(t, err)

	assert.Equal(t, "openai", r.Get("openai").(*stub.Provider).Model())
	assert.Equal(t, "anthropic", r.Get("deepseek").(*stub.Provider).Model())
}

func TestRegistryRequiresRegisteredDefault(t *testing.T) {
	_, err := NewRegistry("google", "openai")
	assert.Error(t, err)
}
