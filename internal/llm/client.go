package llm

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no model name is configured.
	DefaultModel = openai.GPT4oMini
	// DefaultTemperature is the sampling temperature used for scoldings.
	DefaultTemperature float32 = 0.9
	// DefaultMaxTokens caps the length of a generated scolding.
	DefaultMaxTokens = 300
)

// Client defines the interface for interacting with different LLM providers.
type Client interface {
	// Complete sends one system message and one user message and returns the
	// text of the first generated choice.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Options holds the fixed sampling parameters for every completion.
// A nil Temperature selects DefaultTemperature; an explicit 0 is honoured.
type Options struct {
	ModelName   string
	Temperature *float32
	MaxTokens   int
}

// OpenAIClient implements the llm.Client interface for the OpenAI chat completion API.
type OpenAIClient struct {
	client      *openai.Client
	opts        Options
	temperature float32
}

// Temperature returns a pointer to t, for use in Options.
func Temperature(t float32) *float32 {
	return &t
}

// NewOpenAIClient creates a new OpenAI client wrapper.
// It requires a configured go-openai client; an empty model name, nil
// temperature or non-positive token cap fall back to the defaults.
func NewOpenAIClient(client *openai.Client, opts Options) (*OpenAIClient, error) {
	if client == nil {
		return nil, ErrLLMClientNil
	}
	if opts.ModelName == "" {
		log.Warn().Msgf("modelName is empty for OpenAIClient, defaulting to %s", DefaultModel)
		opts.ModelName = DefaultModel
	}
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	if temperature < 0 {
		return nil, fmt.Errorf("%w: temperature %v", ErrLLMInvalidOptions, temperature)
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &OpenAIClient{
		client:      client,
		opts:        opts,
		temperature: temperature,
	}, nil
}

// wireTemperature maps 0 to the smallest positive float32. go-openai drops a
// zero temperature from the request body, which the API reads as 1.0.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

// NewOpenAIClientWithKey builds the go-openai client from an API key and an
// optional base URL, then wraps it. The key is sent as a bearer token.
func NewOpenAIClientWithKey(apiKey, baseURL string, opts Options) (*OpenAIClient, error) {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
		log.Debug().Str("base_url", baseURL).Msg("Using custom OpenAI BaseURL")
	}
	return NewOpenAIClient(openai.NewClientWithConfig(cfg), opts)
}

// Complete implements the llm.Client interface for OpenAI.
func (o *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if o.client == nil {
		return "", ErrLLMClientNil
	}
	if systemPrompt == "" || userPrompt == "" {
		return "", ErrLLMPromptEmpty
	}

	req := openai.ChatCompletionRequest{
		Model: o.opts.ModelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: wireTemperature(o.temperature),
		MaxTokens:   o.opts.MaxTokens,
	}

	log.Debug().Str("model", req.Model).Float32("temperature", req.Temperature).Int("max_tokens", req.MaxTokens).Msg("Sending request to OpenAI API")
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("OpenAI API call failed")
		return "", fmt.Errorf("%w: %w", ErrLLMCompletion, err)
	}

	if len(resp.Choices) == 0 {
		log.Error().Msg("Received an empty response (no choices) from OpenAI")
		return "", ErrLLMEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		log.Error().Str("finish_reason", string(resp.Choices[0].FinishReason)).Msg("First choice from OpenAI has no content")
		return "", ErrLLMEmptyResponse
	}

	log.Debug().Str("content", content).Int("total_tokens", resp.Usage.TotalTokens).Msg("Received completion from OpenAI API")
	return content, nil
}
