// Package llm provides the content-generation collaborator the pipeline
// stages depend on. The rest of the system only ever sees ContentGenerator;
// which provider sits behind it is a construction-time decision.
package llm

import (
	"context"
	"fmt"
)

// ContentGenerator is the single external capability the pipeline consumes:
// send a prompt, get text back. Implementations block until the provider
// responds or ctx is done.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options selects and tunes a provider. Model strings carry a provider
// prefix, e.g. "openai:gpt-4o", "openrouter:deepseek/deepseek-chat",
// "groq:llama-3.3-70b-versatile", "anthropic:claude-sonnet-4-5",
// "ollama:qwen2.5-coder:14b".
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// OllamaURL points the ollama provider at a specific server. Empty falls
	// back to the OLLAMA_HOST environment default.
	OllamaURL string
}

// TransportError wraps a provider failure. A stage that receives one has no
// RawResponse to decode and must not proceed.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
