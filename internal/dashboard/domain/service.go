package domain

import (
	"context"
	"errors"

	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

// Service exposes aggregated operational data for the admin landing view.
type Service interface {
	Summarize(ctx context.Context, actor identitydomain.Actor) (Summary, error)
}

var (
	ErrForbidden = errors.New("forbidden")
)
