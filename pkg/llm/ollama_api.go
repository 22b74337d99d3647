package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alantheprice/ideaforge/pkg/utils"
	ollama "github.com/ollama/ollama/api"
)

type ollamaGenerator struct {
	client *ollama.Client
	model  string
	opts   Options
}

func newOllamaGenerator(model string, opts Options) (*ollamaGenerator, error) {
	client, err := newOllamaClient(opts)
	if err != nil {
		return nil, err
	}
	return &ollamaGenerator{client: client, model: model, opts: opts}, nil
}

// ollamaBaseURL parses the configured server URL; nil means no override.
func ollamaBaseURL(opts Options) (*url.URL, error) {
	if opts.OllamaURL == "" {
		return nil, nil
	}
	base, err := url.Parse(opts.OllamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama server URL %q: %w", opts.OllamaURL, err)
	}
	return base, nil
}

// newOllamaClient honors the configured server URL and falls back to the
// OLLAMA_HOST environment when none is set.
func newOllamaClient(opts Options) (*ollama.Client, error) {
	base, err := ollamaBaseURL(opts)
	if err != nil {
		return nil, err
	}
	if base == nil {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, &TransportError{Provider: "ollama", Err: err}
		}
		return client, nil
	}
	return ollama.NewClient(base, http.DefaultClient), nil
}

func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	// Size num_ctx to the prompt with some buffer, never below a sane floor.
	numCtx := utils.EstimateTokens(prompt) + 1000
	if numCtx < 4096 {
		numCtx = 4096
	}

	req := &ollama.ChatRequest{
		Model: g.model,
		Messages: []ollama.Message{
			{Role: "user", Content: prompt},
		},
		Options: map[string]interface{}{
			"temperature": g.opts.Temperature,
			"top_p":       1.0,
			"num_ctx":     numCtx,
		},
	}

	var response strings.Builder
	respFunc := func(res ollama.ChatResponse) error {
		response.WriteString(res.Message.Content)
		return nil
	}
	if err := g.client.Chat(ctx, req, respFunc); err != nil {
		return "", &TransportError{Provider: "ollama", Err: err}
	}
	return response.String(), nil
}
