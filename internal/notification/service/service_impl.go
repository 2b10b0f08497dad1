package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"github.com/networkasro-maker/asro/internal/notification/domain"
	"github.com/networkasro-maker/asro/internal/notification/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	PackageRepo  catalogdomain.Repository
	AuditSvc     auditdomain.Service
	Drafter      domain.Drafter `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	customerRepo customerdomain.Repository
	packageRepo  catalogdomain.Repository
	auditSvc     auditdomain.Service
	drafter      domain.Drafter
}

func NewService(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("notification.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		packageRepo:  p.PackageRepo,
		auditSvc:     p.AuditSvc,
		drafter:      p.Drafter,
	}
}

func (s *Service) Create(ctx context.Context, actor identitydomain.Actor, req domain.CreateTemplateRequest) (*domain.WhatsAppTemplate, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if strings.TrimSpace(req.Template) == "" {
		return nil, domain.ErrInvalidTemplate
	}

	tmpl := &domain.WhatsAppTemplate{
		ID:       s.genID.Generate(),
		Name:     name,
		Template: req.Template,
	}
	if err := s.repo.Insert(ctx, s.db, tmpl); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Menambahkan templat WA baru: %s", tmpl.Name))
	return tmpl, nil
}

func (s *Service) Update(ctx context.Context, actor identitydomain.Actor, req domain.UpdateTemplateRequest) (*domain.WhatsAppTemplate, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	id, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	tmpl, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, domain.ErrInvalidName
		}
		tmpl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Template != nil {
		if strings.TrimSpace(*req.Template) == "" {
			return nil, domain.ErrInvalidTemplate
		}
		tmpl.Template = *req.Template
	}

	if err := s.repo.Update(ctx, s.db, tmpl); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Memperbarui templat WA: %s", tmpl.Name))
	return tmpl, nil
}

func (s *Service) Delete(ctx context.Context, actor identitydomain.Actor, id snowflake.ID) error {
	if !actor.Role.Privileged() {
		return domain.ErrForbidden
	}

	tmpl, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if tmpl == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Menghapus templat WA: %s", tmpl.Name))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*domain.WhatsAppTemplate, error) {
	tmpl, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, domain.ErrNotFound
	}
	return tmpl, nil
}

func (s *Service) List(ctx context.Context) ([]domain.WhatsAppTemplate, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Preview(ctx context.Context, templateID, customerID snowflake.ID) (string, error) {
	tmpl, err := s.repo.FindByID(ctx, s.db, templateID)
	if err != nil {
		return "", err
	}
	if tmpl == nil {
		return "", domain.ErrNotFound
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		return "", domain.ErrNotFound
	}

	pkg, err := s.packageRepo.FindByID(ctx, s.db, customer.PackageID)
	if err != nil {
		return "", err
	}
	if pkg == nil {
		return "", domain.ErrNotFound
	}

	return render.Render(tmpl.Template, *customer, *pkg), nil
}

func (s *Service) Draft(ctx context.Context, actor identitydomain.Actor, instruction string) (string, error) {
	if !actor.Role.Privileged() {
		return "", domain.ErrForbidden
	}
	if strings.TrimSpace(instruction) == "" {
		return "", domain.ErrInvalidInstruction
	}
	if s.drafter == nil {
		return "", domain.ErrDrafterUnavailable
	}

	text, err := s.drafter.Draft(ctx, instruction)
	if err != nil {
		return "", err
	}

	s.recordActivity(ctx, actor, "Membuat draf pesan WA dengan bantuan AI")
	return text, nil
}

func (s *Service) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
