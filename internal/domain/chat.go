package domain

import "context"

// Chat roles understood by the completion API
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one turn of the conversation
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

// ChatData carries the page context the widget attaches to every request
type ChatData struct {
	Context string `json:"context"`
}

// ChatRequest is the body posted by the chat widget
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Data     *ChatData     `json:"data,omitempty"`
}

// ChatOptions tunes a completion call
type ChatOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// ChatStream yields content deltas until io.EOF
type ChatStream interface {
	Recv() (string, error)
	Close() error
}

// ChatCompleter opens streaming completions against a hosted model
type ChatCompleter interface {
	StreamChat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (ChatStream, error)
}

type ChatUsecase interface {
	// OpenStream builds the advisor prompt around the request and opens the upstream stream
	OpenStream(ctx context.Context, req *ChatRequest) (ChatStream, error)
}
