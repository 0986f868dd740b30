package middleware

import (
	"context"
	"strings"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// SessionCookie is where the frontend may keep the session token
const SessionCookie = "session_token"

// SessionParser verifies a session token
type SessionParser interface {
	Parse(token string) (*auth.SessionClaims, error)
}

// OptionalSession attaches the display name from a valid session token.
// Requests without a token, or with a bad one, continue anonymously.
func OptionalSession(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parser.Parse(tokenString)
		if err != nil {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserName, claims.Name)
		ctx = context.WithValue(ctx, domain.KeySessionID, claims.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(domain.KeyUserName), claims.Name)

		c.Next()
	}
}
