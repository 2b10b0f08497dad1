package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/cache"
	"github.com/networkasro-maker/asro/internal/catalog/domain"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listCacheKey = "packages"
const listCacheTTL = 30 * time.Second

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	AuditSvc     auditdomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	customerRepo customerdomain.Repository
	auditSvc     auditdomain.Service
	listCache    *cache.TTLCache[string, []domain.Package]
}

func NewService(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("catalog.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		auditSvc:     p.AuditSvc,
		listCache:    cache.NewTTLCache[string, []domain.Package](),
	}
}

func (s *Service) Create(ctx context.Context, actor identitydomain.Actor, req domain.CreateRequest) (*domain.Package, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	pkg := &domain.Package{
		ID:    s.genID.Generate(),
		Name:  name,
		Price: req.Price,
	}
	if err := s.repo.Insert(ctx, s.db, pkg); err != nil {
		return nil, err
	}
	s.listCache.Flush()

	s.recordActivity(ctx, actor, fmt.Sprintf("Menambahkan paket baru: %s", pkg.Name))
	return pkg, nil
}

func (s *Service) Update(ctx context.Context, actor identitydomain.Actor, req domain.UpdateRequest) (*domain.Package, error) {
	if !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	id, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	pkg, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, domain.ErrInvalidName
		}
		pkg.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		pkg.Price = *req.Price
	}

	if err := s.repo.Update(ctx, s.db, pkg); err != nil {
		return nil, err
	}
	s.listCache.Flush()

	s.recordActivity(ctx, actor, fmt.Sprintf("Memperbarui paket: %s", pkg.Name))
	return pkg, nil
}

// Delete refuses to remove a package while any customer still references it.
func (s *Service) Delete(ctx context.Context, actor identitydomain.Actor, id snowflake.ID) error {
	if !actor.Role.Privileged() {
		return domain.ErrForbidden
	}

	pkg, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return domain.ErrNotFound
	}

	refs, err := s.customerRepo.CountByPackage(ctx, s.db, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrPackageInUse
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.listCache.Flush()

	s.recordActivity(ctx, actor, fmt.Sprintf("Menghapus paket: %s", pkg.Name))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*domain.Package, error) {
	pkg, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return pkg, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Package, error) {
	if cached, ok := s.listCache.Get(listCacheKey); ok {
		return cached, nil
	}
	packages, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	s.listCache.Set(listCacheKey, packages, listCacheTTL)
	return packages, nil
}

func (s *Service) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}
