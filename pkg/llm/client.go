// Package llm streams chat completions from an OpenAI-compatible endpoint
// such as DeepSeek.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned before any network call when no key is configured
var ErrMissingAPIKey = errors.New("llm: API key not configured")

// Config holds the endpoint settings
type Config struct {
	APIKey  string
	BaseURL string // e.g. https://api.deepseek.com/v1
	Model   string
	// HTTPClient overrides the default client (tests, proxies)
	HTTPClient *http.Client
}

// Message is one chat turn
type Message struct {
	Role    string
	Content string
}

// Params tunes a single request. Zero values fall back to the client defaults.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

type Client struct {
	api    *openai.Client
	model  string
	hasKey bool
}

func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}

	return &Client{
		api:    openai.NewClientWithConfig(oc),
		model:  cfg.Model,
		hasKey: cfg.APIKey != "",
	}
}

// StreamChat opens a streaming completion. The caller must Close the stream.
func (c *Client) StreamChat(ctx context.Context, messages []Message, p Params) (*Stream, error) {
	if !c.hasKey {
		return nil, ErrMissingAPIKey
	}

	model := p.Model
	if model == "" {
		model = c.model
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
		Stream:      true,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm: open stream: %w", err)
	}
	return &Stream{stream: stream}, nil
}
