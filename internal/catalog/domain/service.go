package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

type CreateRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type UpdateRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// Service manages the package catalog. Delete refuses to remove a package
// that is still referenced by any customer.
type Service interface {
	Create(ctx context.Context, actor identitydomain.Actor, req CreateRequest) (*Package, error)
	Update(ctx context.Context, actor identitydomain.Actor, req UpdateRequest) (*Package, error)
	Delete(ctx context.Context, actor identitydomain.Actor, id snowflake.ID) error
	GetByID(ctx context.Context, id snowflake.ID) (*Package, error)
	List(ctx context.Context) ([]Package, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrPackageInUse = errors.New("package_in_use")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not_found")
)
