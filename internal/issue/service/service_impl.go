package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/clock"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"github.com/networkasro-maker/asro/internal/issue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	AuditSvc     auditdomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
	auditSvc     auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("issue.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		auditSvc:     p.AuditSvc,
	}
}

func (s *Service) Create(ctx context.Context, actor identitydomain.Actor, req domain.CreateReportRequest) (*domain.IssueReport, error) {
	customerID, err := domain.ParseID(req.CustomerID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	light := domain.ModemLightStatus(strings.TrimSpace(req.ModemLightStatus))
	if !light.Valid() {
		return nil, domain.ErrInvalidLightStatus
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, domain.ErrInvalidDescription
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	// Subscribers can only report on their own connection.
	if actor.Role == identitydomain.RoleCustomer {
		if customer.UserID == nil || *customer.UserID != actor.ID {
			return nil, domain.ErrForbidden
		}
	}

	report := &domain.IssueReport{
		ID:               s.genID.Generate(),
		CustomerID:       customerID,
		ModemLightStatus: light,
		Description:      strings.TrimSpace(req.Description),
		ReportedAt:       s.clock.Now(),
	}
	if attachment := strings.TrimSpace(req.Attachment); attachment != "" {
		report.Attachment = &attachment
	}

	if err := s.repo.Insert(ctx, s.db, report); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Melaporkan gangguan untuk pelanggan %s (ID: %s)", customer.Name, customer.ID))
	return report, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]domain.IssueReport, error) {
	return s.repo.ListByCustomer(ctx, s.db, customerID)
}

// List returns the reports the actor may see: subscribers get the history of
// their own connection, privileged roles the whole queue.
func (s *Service) List(ctx context.Context, actor identitydomain.Actor) ([]domain.IssueReport, error) {
	if actor.Role == identitydomain.RoleCustomer {
		customer, err := s.customerRepo.FindByUserID(ctx, s.db, actor.ID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return s.repo.ListByCustomer(ctx, s.db, customer.ID)
	}
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, s.db)
}

func (s *Service) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
