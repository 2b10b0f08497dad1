package service

import (
	"context"
	"strings"
	"time"

	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/cache"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"github.com/networkasro-maker/asro/internal/ispprofile/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const profileCacheKey = "isp_profile"
const profileCacheTTL = time.Minute

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	AuditSvc auditdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	auditSvc auditdomain.Service
	cache    *cache.TTLCache[string, domain.IspProfile]
}

func NewService(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("ispprofile.service"),
		repo:     p.Repo,
		auditSvc: p.AuditSvc,
		cache:    cache.NewTTLCache[string, domain.IspProfile](),
	}
}

func (s *Service) Get(ctx context.Context) (*domain.IspProfile, error) {
	if cached, ok := s.cache.Get(profileCacheKey); ok {
		return &cached, nil
	}

	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	s.cache.Set(profileCacheKey, *profile, profileCacheTTL)
	return profile, nil
}

// Update mutates the singleton operator profile.
func (s *Service) Update(ctx context.Context, actor identitydomain.Actor, req domain.UpdateProfileRequest) (*domain.IspProfile, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}

	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, domain.ErrInvalidName
		}
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.LogoURL != nil {
		profile.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if req.Address != nil {
		profile.Address = strings.TrimSpace(*req.Address)
	}
	if req.Contact != nil {
		profile.Contact = strings.TrimSpace(*req.Contact)
	}
	if req.BankAccounts != nil {
		profile.BankAccounts = req.BankAccounts
	}

	if err := s.repo.Update(ctx, s.db, profile); err != nil {
		return nil, err
	}
	s.cache.Delete(profileCacheKey)

	s.recordActivity(ctx, actor, "Memperbarui profil ISP")
	return profile, nil
}

func (s *Service) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
