package llm

import (
	"fmt"
	"strings"
)

// NewGenerator constructs the provider named by the model string's prefix.
// API keys come from the environment; a missing key fails fast here rather
// than midway through a pipeline run.
func NewGenerator(opts Options) (ContentGenerator, error) {
	provider, model, found := strings.Cut(opts.Model, ":")
	if !found || model == "" {
		return nil, fmt.Errorf("model %q must be of the form provider:model", opts.Model)
	}

	switch strings.ToLower(provider) {
	case "openai":
		return newOpenAIGenerator("openai", "", "OPENAI_API_KEY", model, opts)
	case "openrouter":
		return newOpenAIGenerator("openrouter", "https://openrouter.ai/api/v1", "OPENROUTER_API_KEY", model, opts)
	case "groq":
		return newOpenAIGenerator("groq", "https://api.groq.com/openai/v1", "GROQ_API_KEY", model, opts)
	case "anthropic":
		return newAnthropicGenerator(model, opts)
	case "ollama":
		return newOllamaGenerator(model, opts)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
