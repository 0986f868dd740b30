package llm

import (
	"errors"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Stream yields text deltas of a completion
type Stream struct {
	stream *openai.ChatCompletionStream
}

// Recv returns the next non-empty content delta, or io.EOF when the completion is done.
func (s *Stream) Recv() (string, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		for _, choice := range resp.Choices {
			sb.WriteString(choice.Delta.Content)
		}
		// Role-only and keep-alive chunks carry no text
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}
}

// Close releases the underlying HTTP response
func (s *Stream) Close() error {
	s.stream.Close()
	return nil
}
