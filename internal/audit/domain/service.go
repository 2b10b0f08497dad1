package domain

import (
	"context"
	"errors"

	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

// Service appends and reads the activity trail. Record is append-only;
// callers treat failures as non-fatal to the triggering mutation.
type Service interface {
	Record(ctx context.Context, actor identitydomain.Actor, action string) (*ActivityLog, error)
	List(ctx context.Context, limit int) ([]ActivityLog, error)
}

var (
	ErrInvalidActor  = errors.New("invalid_actor")
	ErrInvalidAction = errors.New("invalid_action")
)
