package deepseek

import (
	"context"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/llm"
)

type completer struct {
	client *llm.Client
}

// NewCompleter exposes the DeepSeek client as a domain.ChatCompleter
func NewCompleter(client *llm.Client) domain.ChatCompleter {
	return &completer{client: client}
}

func (c *completer) StreamChat(ctx context.Context, messages []domain.ChatMessage, opts domain.ChatOptions) (domain.ChatStream, error) {
	msgs := make([]llm.Message, len(messages))
	for i, m := range messages {
		msgs[i] = llm.Message{Role: m.Role, Content: m.Content}
	}

	stream, err := c.client.StreamChat(ctx, msgs, llm.Params{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return stream, nil
}
