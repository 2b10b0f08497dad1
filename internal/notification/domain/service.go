package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

type CreateTemplateRequest struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

type UpdateTemplateRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Template *string `json:"template"`
}

// Service manages WhatsApp templates and renders them for a customer.
type Service interface {
	Create(ctx context.Context, actor identitydomain.Actor, req CreateTemplateRequest) (*WhatsAppTemplate, error)
	Update(ctx context.Context, actor identitydomain.Actor, req UpdateTemplateRequest) (*WhatsAppTemplate, error)
	Delete(ctx context.Context, actor identitydomain.Actor, id snowflake.ID) error
	GetByID(ctx context.Context, id snowflake.ID) (*WhatsAppTemplate, error)
	List(ctx context.Context) ([]WhatsAppTemplate, error)
	// Preview renders a template body against a customer for display before
	// the operator hands the text to WhatsApp.
	Preview(ctx context.Context, templateID, customerID snowflake.ID) (string, error)
	// Draft asks the configured text generator for a candidate template.
	Draft(ctx context.Context, actor identitydomain.Actor, instruction string) (string, error)
}

// Drafter produces a candidate template from a free-text instruction. The
// implementation is an external generative-text collaborator.
type Drafter interface {
	Draft(ctx context.Context, instruction string) (string, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidTemplate    = errors.New("invalid_template")
	ErrInvalidInstruction = errors.New("invalid_instruction")
	ErrDrafterUnavailable = errors.New("drafter_unavailable")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
)
