package v1

import (
	"errors"
	"io"
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// chatFailureBody is the fixed body the chat widget expects on failure
var chatFailureBody = gin.H{"error": "Failed to process chat request"}

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(r *gin.RouterGroup, chatUC domain.ChatUsecase, limiter gin.HandlerFunc) {
	handler := &ChatHandler{chatUC: chatUC}
	r.POST("/chat", limiter, handler.Chat)
}

// Chat godoc
// @Summary      Strategic Advisor Chat
// @Description  Streams the advisor's reply as plain text chunks. Failures return {"error":"Failed to process chat request"}.
// @Tags         chat
// @Accept       json
// @Produce      plain
// @Param        request  body      domain.ChatRequest  true  "Conversation and page context"
// @Success      200      {string}  string  "streamed reply"
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  map[string]string
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Error("Chat API Error", "error", err)
		c.JSON(http.StatusInternalServerError, chatFailureBody)
		return
	}

	stream, err := h.chatUC.OpenStream(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, chatFailureBody)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// Headers are gone; the client sees a truncated reply
			logger.Log.Error("Chat stream interrupted", "error", err, "request_id", response.RequestID(c))
			return
		}
		if _, err := io.WriteString(c.Writer, delta); err != nil {
			return
		}
		c.Writer.Flush()

		if ctx.Err() != nil {
			return
		}
	}
}
