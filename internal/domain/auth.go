package domain

import (
	"context"
	"time"
)

// Display names used when the user has not told us who they are
const (
	DefaultLoginName  = "BNBUer"
	AnonymousGreeting = "同学"
)

// LoginRequest accepts anything; the access key is never checked
type LoginRequest struct {
	Username  string `json:"username"`
	AccessKey string `json:"access_key"`
}

// Session is the demo session handed back after login
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CurrentUser is who the request claims to be
type CurrentUser struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

type AuthUsecase interface {
	Login(ctx context.Context, req *LoginRequest) (*Session, error)
	CurrentUser(ctx context.Context) *CurrentUser
}
