package response

import (
	"study-planner-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every endpoint except the chat stream
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// RequestID returns the id set by the request id middleware, or ""
func RequestID(c *gin.Context) string {
	return c.GetString(domain.GinKeyRequestID)
}

// Success sends a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: RequestID(c),
	})
}

// Error sends a failure envelope. err is optional detail safe to show the client.
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: RequestID(c),
	})
}
