package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIGenerator talks to any OpenAI-compatible chat completion endpoint.
// OpenRouter and Groq expose the same wire format, so they share this
// implementation with only the base URL and API key differing.
type openAIGenerator struct {
	provider string
	client   openai.Client
	model    string
	opts     Options
}

func newOpenAIGenerator(provider, baseURL, keyEnv, model string, opts Options) (*openAIGenerator, error) {
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", keyEnv)
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return &openAIGenerator{
		provider: provider,
		client:   openai.NewClient(reqOpts...),
		model:    model,
		opts:     opts,
	}, nil
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.opts.Temperature),
	}
	if g.opts.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(g.opts.MaxTokens))
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &TransportError{Provider: g.provider, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &TransportError{Provider: g.provider, Err: fmt.Errorf("response contained no choices")}
	}
	return completion.Choices[0].Message.Content, nil
}
