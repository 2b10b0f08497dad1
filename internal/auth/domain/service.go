package domain

import (
	"context"
	"errors"
	"time"

	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-in.
type Session struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      identitydomain.User `json:"user"`
}

// Service authenticates users and resolves bearer tokens into actors.
type Service interface {
	SignIn(ctx context.Context, req SignInRequest) (*Session, error)
	Resolve(ctx context.Context, token string) (identitydomain.Actor, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountFrozen      = errors.New("account_frozen")
	ErrInvalidToken       = errors.New("invalid_token")
)
