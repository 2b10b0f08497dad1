package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	"github.com/networkasro-maker/asro/internal/customer/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
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
	PackageRepo  catalogdomain.Repository
	IdentityRepo identitydomain.Repository
	AuditSvc     auditdomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	packageRepo  catalogdomain.Repository
	identityRepo identitydomain.Repository
	auditSvc     auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("customer.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		packageRepo:  p.PackageRepo,
		identityRepo: p.IdentityRepo,
		auditSvc:     p.AuditSvc,
	}
}

func (s *Service) Create(ctx context.Context, actor identitydomain.Actor, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	if actor.Role != identitydomain.RoleSuperAdmin &&
		actor.Role != identitydomain.RoleAdmin &&
		actor.Role != identitydomain.RoleSales {
		return nil, domain.ErrUnauthorized
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, domain.ErrInvalidAddress
	}
	if req.DueDate.IsZero() {
		return nil, domain.ErrInvalidDueDate
	}

	packageID, err := domain.ParseID(req.PackageID)
	if err != nil {
		return nil, domain.ErrInvalidPackage
	}
	salesID, err := domain.ParseID(req.SalesID)
	if err != nil {
		return nil, domain.ErrInvalidSales
	}

	pkg, err := s.packageRepo.FindByID(ctx, s.db, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrInvalidPackage
	}

	sales, err := s.identityRepo.FindByID(ctx, s.db, salesID)
	if err != nil {
		return nil, err
	}
	if sales == nil || sales.Role != identitydomain.RoleSales {
		return nil, domain.ErrInvalidSales
	}

	customer := &domain.Customer{
		ID:            s.genID.Generate(),
		Name:          name,
		Address:       strings.TrimSpace(req.Address),
		DueDate:       req.DueDate,
		PackageID:     packageID,
		SalesID:       salesID,
		Status:        domain.StatusActive,
		PaymentStatus: domain.PaymentUnpaid,
		Version:       1,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		customer.Phone = &phone
	}
	if raw := strings.TrimSpace(req.UserID); raw != "" {
		userID, err := domain.ParseID(raw)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		customer.UserID = &userID
	}

	if err := s.repo.Insert(ctx, s.db, customer); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Menambahkan pelanggan baru: %s (ID: %s)", customer.Name, customer.ID))
	return customer, nil
}

// Apply runs one lifecycle transition end to end: decide, write under the
// customer's version, then append one activity entry. A denied decision or
// failed write leaves no trace; a failed log append never rolls back the
// already-committed update.
func (s *Service) Apply(ctx context.Context, actor identitydomain.Actor, id snowflake.ID, action domain.Action) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	// Sales only act on their own portfolio, matching the list scoping.
	if actor.Role == identitydomain.RoleSales && customer.SalesID != actor.ID {
		return nil, domain.ErrUnauthorized
	}

	outcome, err := domain.Decide(actor.Role, *customer, action)
	if err != nil {
		return nil, err
	}

	patch := map[string]any{
		"payment_status": outcome.PaymentStatus,
		"status":         outcome.Status,
	}
	if err := s.repo.UpdateVersioned(ctx, s.db, customer.ID, customer.Version, patch); err != nil {
		return nil, err
	}

	wasIsolated := customer.Status == domain.StatusIsolated
	customer.PaymentStatus = outcome.PaymentStatus
	customer.Status = outcome.Status
	customer.Version++

	s.recordActivity(ctx, actor, actionText(action, *customer, wasIsolated))
	return customer, nil
}

func actionText(action domain.Action, c domain.Customer, wasIsolated bool) string {
	switch action {
	case domain.ActionConfirmPayment:
		return fmt.Sprintf("Konfirmasi pembayaran untuk pelanggan %s (ID: %s)", c.Name, c.ID)
	case domain.ActionMarkAsVerifying:
		return fmt.Sprintf("Menandai pembayaran menunggu verifikasi untuk %s (ID: %s)", c.Name, c.ID)
	case domain.ActionCancelVerification:
		return fmt.Sprintf("Membatalkan permintaan verifikasi untuk %s (ID: %s)", c.Name, c.ID)
	case domain.ActionToggleIsolate:
		if wasIsolated {
			return fmt.Sprintf("Mengaktifkan kembali pelanggan %s (ID: %s)", c.Name, c.ID)
		}
		return fmt.Sprintf("Mengisolir pelanggan %s (ID: %s)", c.Name, c.ID)
	default:
		return fmt.Sprintf("%s pada pelanggan %s (ID: %s)", action, c.Name, c.ID)
	}
}

func (s *Service) Update(ctx context.Context, actor identitydomain.Actor, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrUnauthorized
	}
	id, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	patch := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, domain.ErrInvalidName
		}
		patch["name"] = strings.TrimSpace(*req.Name)
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			return nil, domain.ErrInvalidAddress
		}
		patch["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		patch["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			return nil, domain.ErrInvalidDueDate
		}
		patch["due_date"] = *req.DueDate
	}
	if req.PackageID != nil {
		packageID, err := domain.ParseID(*req.PackageID)
		if err != nil {
			return nil, domain.ErrInvalidPackage
		}
		pkg, err := s.packageRepo.FindByID(ctx, s.db, packageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, domain.ErrInvalidPackage
		}
		patch["package_id"] = packageID
	}
	if req.SalesID != nil {
		salesID, err := domain.ParseID(*req.SalesID)
		if err != nil {
			return nil, domain.ErrInvalidSales
		}
		sales, err := s.identityRepo.FindByID(ctx, s.db, salesID)
		if err != nil {
			return nil, err
		}
		if sales == nil || sales.Role != identitydomain.RoleSales {
			return nil, domain.ErrInvalidSales
		}
		patch["sales_id"] = salesID
	}
	if len(patch) == 0 {
		return customer, nil
	}

	if err := s.repo.UpdateVersioned(ctx, s.db, customer.ID, customer.Version, patch); err != nil {
		return nil, err
	}
	customer.Version++

	s.recordActivity(ctx, actor, fmt.Sprintf("Memperbarui data pelanggan %s (ID: %s)", customer.Name, customer.ID))

	fresh, err := s.repo.FindByID(ctx, s.db, customer.ID)
	if err != nil || fresh == nil {
		return customer, nil
	}
	return fresh, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID snowflake.ID) (*domain.Customer, error) {
	customer, err := s.repo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context, actor identitydomain.Actor, key domain.FilterKey) ([]domain.Customer, error) {
	if key == "" {
		key = domain.FilterAll
	}
	if !domain.ValidFilterKey(key) {
		return nil, domain.ErrInvalidFilter
	}

	all, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return domain.FilterCustomers(all, actor.Role, actor.ID, key), nil
}

func (s *Service) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
