package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

type UpdateUserRequest struct {
	ID       string  `json:"id"`
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Role     *Role   `json:"role"`
}

// Service manages operator and subscriber accounts. Every mutation is
// checked against the acting user's role: admins may only manage sales
// accounts, editing or freezing another admin requires the super admin.
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, actor Actor, req UpdateUserRequest) (*User, error)
	ToggleStatus(ctx context.Context, actor Actor, id snowflake.ID) (*User, error)
	GetByID(ctx context.Context, id snowflake.ID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, actor Actor) ([]User, error)
	ChangePassword(ctx context.Context, actor Actor, current, next string) error
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidUsername = errors.New("invalid_username")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidRole     = errors.New("invalid_role")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrUsernameTaken   = errors.New("username_taken")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not_found")
)
