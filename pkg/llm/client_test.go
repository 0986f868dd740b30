package llm_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-planner-backend/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Stream      bool    `json:"stream"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chunk(content string) string {
	return fmt.Sprintf(`data: {"id":"c1","object":"chat.completion.chunk","created":1,"model":"deepseek-chat","choices":[{"index":0,"delta":{"content":%q},"finish_reason":null}]}`+"\n\n", content)
}

func TestStreamChat(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"id":"c1","object":"chat.completion.chunk","created":1,"model":"deepseek-chat","choices":[{"index":0,"delta":{"role":"assistant"},"finish_reason":null}]}`+"\n\n")
		fmt.Fprint(w, chunk("你好"))
		fmt.Fprint(w, chunk("，同学"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := llm.NewClient(llm.Config{APIKey: "sk-test", BaseURL: srv.URL, Model: "deepseek-chat"})
	stream, err := client.StreamChat(context.Background(), []llm.Message{
		{Role: "system", Content: "be nice"},
		{Role: "user", Content: "hi"},
	}, llm.Params{Temperature: 0.7, MaxTokens: 2000})
	require.NoError(t, err)
	defer stream.Close()

	var text string
	for {
		delta, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		text += delta
	}

	assert.Equal(t, "你好，同学", text)
	assert.Equal(t, "deepseek-chat", got.Model)
	assert.True(t, got.Stream)
	assert.InDelta(t, 0.7, got.Temperature, 1e-6)
	assert.Equal(t, 2000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
}

func TestStreamChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Authentication Fails","type":"authentication_error"}}`)
	}))
	defer srv.Close()

	client := llm.NewClient(llm.Config{APIKey: "sk-bad", BaseURL: srv.URL, Model: "deepseek-chat"})
	_, err := client.StreamChat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, llm.Params{})
	assert.Error(t, err)
}

func TestStreamChatMissingKey(t *testing.T) {
	client := llm.NewClient(llm.Config{BaseURL: "http://127.0.0.1:1"})
	_, err := client.StreamChat(context.Background(), nil, llm.Params{})
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}
