package factory

import (
	"fmt"

	"flowa-be/pkg/llm"
	"flowa-be/pkg/llm/stub"
)

// Registry resolves a ContentProvider per AI model name.
type Registry struct {
	providers map[string]llm.ContentProvider
	fallback  string
}

// NewContentProvider builds the provider for one model. Every supported
// model is served by the in-process stub until a real backend is wired.
func NewContentProvider(model string) (llm.ContentProvider, error) {
	switch model {
	case "openai", "anthropic", "google", "deepseek":
		return stub.NewProvider(model), nil
	default:
		return nil, fmt.Errorf("unsupported content provider: %s", model)
	}
}

// NewRegistry builds providers for the given models. The default model must be one of them.
func NewRegistry(defaultModel string, models ...string) (*Registry, error) {
	r := &Registry{providers: make(map[string]llm.ContentProvider), fallback: defaultModel}
	for _, m := range models {
		p, err := NewContentProvider(m)
		if err != nil {
			return nil, err
		}
		r.providers[m] = p
	}
	if _, ok := r.providers[defaultModel]; !ok {
		return nil, fmt.Errorf("default model %s is not registered", defaultModel)
	}
	return r, nil
}

// Get returns the provider for model, or the default provider when the model is unknown.
func (r *Registry) Get(model string) llm.ContentProvider {
	if p, ok := r.providers[model]; ok {
		return p
	}
	return r.providers[r.fallback]
}
