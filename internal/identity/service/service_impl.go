package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/auth/password"
	"github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	AuditSvc auditdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	auditSvc auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("identity.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		auditSvc: p.AuditSvc,
	}
}

// canManage applies the role hierarchy: the super admin manages admins and
// sales, admins manage sales only. Nobody manages the super admin.
func canManage(actor domain.Actor, target domain.Role) bool {
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return target == domain.RoleAdmin || target == domain.RoleSales || target == domain.RoleCustomer
	case domain.RoleAdmin:
		return target == domain.RoleSales || target == domain.RoleCustomer
	default:
		return false
	}
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, req domain.CreateUserRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || !strings.Contains(username, "@") {
		return nil, domain.ErrInvalidUsername
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrInvalidName
	}
	if !req.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if len(req.Password) < 6 {
		return nil, domain.ErrInvalidPassword
	}
	if !canManage(actor, req.Role) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           s.genID.Generate(),
		Username:     username,
		PasswordHash: hash,
		Role:         req.Role,
		Name:         strings.TrimSpace(req.Name),
		Status:       domain.AccountActive,
	}
	if err := s.repo.Insert(ctx, s.db, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Menambahkan pengguna baru: %s", user.Name))
	return user, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, req domain.UpdateUserRequest) (*domain.User, error) {
	id, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !canManage(actor, user.Role) {
		return nil, domain.ErrForbidden
	}

	if req.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*req.Username))
		if username == "" || !strings.Contains(username, "@") {
			return nil, domain.ErrInvalidUsername
		}
		if username != user.Username {
			existing, err := s.repo.FindByUsername(ctx, s.db, username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, domain.ErrInvalidName
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		// Promoting to admin requires the super admin.
		if !canManage(actor, *req.Role) {
			return nil, domain.ErrForbidden
		}
		user.Role = *req.Role
	}

	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Memperbarui pengguna: %s", user.Name))
	return user, nil
}

func (s *Service) ToggleStatus(ctx context.Context, actor domain.Actor, id snowflake.ID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !canManage(actor, user.Role) {
		return nil, domain.ErrForbidden
	}

	if user.Status == domain.AccountActive {
		user.Status = domain.AccountFrozen
	} else {
		user.Status = domain.AccountActive
	}
	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return nil, err
	}

	verb := "Mengaktifkan"
	if user.Status == domain.AccountFrozen {
		verb = "Membekukan"
	}
	s.recordActivity(ctx, actor, fmt.Sprintf("%s pengguna: %s", verb, user.Name))
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List returns the accounts the actor may manage: admins and sales for the
// super admin, sales only for admins.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return s.repo.List(ctx, s.db, []domain.Role{domain.RoleAdmin, domain.RoleSales})
	case domain.RoleAdmin:
		return s.repo.List(ctx, s.db, []domain.Role{domain.RoleSales})
	default:
		return nil, domain.ErrForbidden
	}
}

func (s *Service) ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error {
	if len(next) < 6 {
		return domain.ErrInvalidPassword
	}
	user, err := s.repo.FindByID(ctx, s.db, actor.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !password.Verify(current, user.PasswordHash) {
		return domain.ErrInvalidPassword
	}

	hash, err := password.Hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return err
	}

	s.recordActivity(ctx, actor, "Mengubah kata sandi akun")
	return nil
}

// recordActivity appends to the activity trail best-effort. A failed append
// never fails the mutation that triggered it.
func (s *Service) recordActivity(ctx context.Context, actor domain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
