package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/clock"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, actor identitydomain.Actor, action string) (*domain.ActivityLog, error) {
	if actor.ID == 0 {
		return nil, domain.ErrInvalidActor
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, domain.ErrInvalidAction
	}

	entry := &domain.ActivityLog{
		ID:        s.genID.Generate(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Action:    action,
		Timestamp: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	return s.repo.List(ctx, s.db, limit)
}
