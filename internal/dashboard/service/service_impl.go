package service

import (
	"context"

	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	"github.com/networkasro-maker/asro/internal/dashboard/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const recentActivityLimit = 15

type Params struct {
	fx.In

	Log         *zap.Logger
	CustomerSvc customerdomain.Service
	CatalogSvc  catalogdomain.Service
	AuditSvc    auditdomain.Service
}

type Service struct {
	log         *zap.Logger
	customerSvc customerdomain.Service
	catalogSvc  catalogdomain.Service
	auditSvc    auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("dashboard.service"),
		customerSvc: p.CustomerSvc,
		catalogSvc:  p.CatalogSvc,
		auditSvc:    p.AuditSvc,
	}
}

// Summarize aggregates the actor's visible customers. Sales see stats for
// their own subscribers only; the activity trail is restricted to
// privileged roles.
func (s *Service) Summarize(ctx context.Context, actor identitydomain.Actor) (domain.Summary, error) {
	if actor.Role == identitydomain.RoleCustomer {
		return domain.Summary{}, domain.ErrForbidden
	}

	customers, err := s.customerSvc.List(ctx, actor, customerdomain.FilterAll)
	if err != nil {
		return domain.Summary{}, err
	}

	packages, err := s.catalogSvc.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	prices := make(map[string]int64, len(packages))
	for _, p := range packages {
		prices[p.ID.String()] = p.Price
	}

	summary := domain.Summary{RecentActivity: []domain.Activity{}}
	for _, c := range customers {
		summary.Stats.Total++
		if c.Status == customerdomain.StatusIsolated {
			summary.Stats.Isolated++
			continue
		}
		switch c.PaymentStatus {
		case customerdomain.PaymentPaid:
			summary.Stats.Paid++
			summary.MonthlyRevenue += prices[c.PackageID.String()]
		case customerdomain.PaymentVerifying:
			summary.Stats.Verifying++
		default:
			summary.Stats.Unpaid++
		}
	}

	if actor.Role.Privileged() {
		logs, err := s.auditSvc.List(ctx, recentActivityLimit)
		if err != nil {
			s.log.Warn("activity trail unavailable", zap.Error(err))
		}
		for _, l := range logs {
			summary.RecentActivity = append(summary.RecentActivity, domain.Activity{
				Actor:      l.UserName,
				Message:    l.Action,
				OccurredAt: l.Timestamp,
			})
		}
	}

	return summary, nil
}
