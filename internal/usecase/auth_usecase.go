package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/latency"
)

// LoginDelay is how long the demo login pretends to verify credentials
const LoginDelay = 1500 * time.Millisecond

const maxLoginNameRunes = 64

// SessionIssuer signs session tokens for a display name
type SessionIssuer interface {
	Issue(name string) (string, time.Time, error)
}

type authUsecase struct {
	issuer SessionIssuer
	delay  time.Duration
}

func NewAuthUsecase(issuer SessionIssuer, delay time.Duration) domain.AuthUsecase {
	return &authUsecase{issuer: issuer, delay: delay}
}

// Login accepts any credentials. The access key is ignored.
func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.Session, error) {
	if err := latency.Wait(ctx, u.delay); err != nil {
		return nil, err
	}

	name := DisplayName(req.Username)
	token, expiresAt, err := u.issuer.Issue(name)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to start session", err)
	}

	return &domain.Session{
		Token:     token,
		Username:  name,
		ExpiresAt: expiresAt,
	}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) *domain.CurrentUser {
	name, ok := ctx.Value(domain.KeyUserName).(string)
	if !ok || name == "" {
		return &domain.CurrentUser{Username: domain.AnonymousGreeting}
	}
	return &domain.CurrentUser{Username: name, Authenticated: true}
}

// DisplayName trims the entered name, falls back to the default and caps its length
func DisplayName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return domain.DefaultLoginName
	}
	if r := []rune(name); len(r) > maxLoginNameRunes {
		name = string(r[:maxLoginNameRunes])
	}
	return name
}
