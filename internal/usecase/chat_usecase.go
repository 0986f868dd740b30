package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/logger"
)

// UnknownChatContext stands in when the widget sends no page context
const UnknownChatContext = "User context unknown."

// ChatFailureMessage is the only detail a client sees when the upstream call fails
const ChatFailureMessage = "Failed to process chat request"

const advisorPrompt = `You are the "BNBU Strategic Advisor AI" (BNBU 战略顾问 AI) inside a high-end study abroad planning application.
Your role is to provide professional, encouraging, and strategic advice to students at BNBU (a liberal arts college).
Keep responses concise, professional, and supportive.
Since you don't have access to real-time database data yet, if asked about specific entry requirements, provide general strategic advice rather than specific numbers, and remind them to check official sources.
Always answer in the language the user asks in (primarily Simplified Chinese).

CURRENT CONTEXT: %s
Use this context to tailor your advice, but do not explicitly mention "I see you are on page X" unless necessary. Just act like you know.`

type chatUsecase struct {
	completer domain.ChatCompleter
	opts      domain.ChatOptions
}

func NewChatUsecase(completer domain.ChatCompleter, opts domain.ChatOptions) domain.ChatUsecase {
	return &chatUsecase{
		completer: completer,
		opts:      opts,
	}
}

func (u *chatUsecase) OpenStream(ctx context.Context, req *domain.ChatRequest) (domain.ChatStream, error) {
	if len(req.Messages) == 0 {
		return nil, apperror.New(http.StatusInternalServerError, ChatFailureMessage, nil)
	}

	contextInfo := ""
	if req.Data != nil {
		contextInfo = strings.TrimSpace(req.Data.Context)
	}

	stream, err := u.completer.StreamChat(ctx, BuildChatMessages(contextInfo, req.Messages), u.opts)
	if err != nil {
		logger.Log.Error("Chat API Error", "error", err)
		return nil, apperror.New(http.StatusInternalServerError, ChatFailureMessage, err)
	}
	return stream, nil
}

// SystemPrompt renders the advisor persona around the page context
func SystemPrompt(contextInfo string) string {
	if contextInfo == "" {
		contextInfo = UnknownChatContext
	}
	return fmt.Sprintf(advisorPrompt, contextInfo)
}

// BuildChatMessages prepends the system prompt to the conversation
func BuildChatMessages(contextInfo string, history []domain.ChatMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(history)+1)
	out = append(out, domain.ChatMessage{Role: domain.RoleSystem, Content: SystemPrompt(contextInfo)})
	return append(out, history...)
}
