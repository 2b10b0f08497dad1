package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/cache"
	"github.com/networkasro-maker/asro/internal/catalog/domain"
	"github.com/networkasro-maker/asro/internal/catalog/repository"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	customerrepository "github.com/networkasro-maker/asro/internal/customer/repository"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopAudit struct{}

func (noopAudit) Record(_ context.Context, _ identitydomain.Actor, action string) (*auditdomain.ActivityLog, error) {
	return &auditdomain.ActivityLog{Action: action}, nil
}

func (noopAudit) List(context.Context, int) ([]auditdomain.ActivityLog, error) { return nil, nil }

func setupCatalogTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Package{}, &customerdomain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	svc := &Service{
		db:           db,
		log:          zap.NewNop(),
		genID:        node,
		repo:         repository.Provide(),
		customerRepo: customerrepository.Provide(),
		auditSvc:     noopAudit{},
		listCache:    cache.NewTTLCache[string, []domain.Package](),
	}
	return svc, db
}

var adminActor = identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}

func TestCreatePackageValidation(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminActor, domain.CreateRequest{Name: "  ", Price: 150000}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("blank name: err = %v", err)
	}
	if _, err := svc.Create(ctx, adminActor, domain.CreateRequest{Name: "Paket", Price: 0}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("zero price: err = %v", err)
	}

	sales := identitydomain.Actor{ID: 2, Role: identitydomain.RoleSales}
	if _, err := svc.Create(ctx, sales, domain.CreateRequest{Name: "Paket", Price: 150000}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("sales create: err = %v", err)
	}
}

func TestDeletePackageInUse(t *testing.T) {
	svc, db := setupCatalogTest(t)
	ctx := context.Background()

	pkg, err := svc.Create(ctx, adminActor, domain.CreateRequest{Name: "Paket Home 10 Mbps", Price: 150000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	customer := customerdomain.Customer{
		ID:            9001,
		Name:          "Budi",
		Address:       "Jl. Mawar",
		DueDate:       time.Now(),
		PackageID:     pkg.ID,
		SalesID:       1,
		Status:        customerdomain.StatusActive,
		PaymentStatus: customerdomain.PaymentUnpaid,
		Version:       1,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	if err := svc.Delete(ctx, adminActor, pkg.ID); !errors.Is(err, domain.ErrPackageInUse) {
		t.Fatalf("err = %v, want ErrPackageInUse", err)
	}

	// Once the reference is gone the package can be removed.
	if err := db.Delete(&customer).Error; err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if err := svc.Delete(ctx, adminActor, pkg.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, pkg.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCacheInvalidatedOnWrite(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, adminActor, domain.CreateRequest{Name: "Paket Home 10 Mbps", Price: 150000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("len = %d, want 1", len(listed))
	}

	newPrice := int64(175000)
	if _, err := svc.Update(ctx, adminActor, domain.UpdateRequest{ID: first.ID.String(), Price: &newPrice}); err != nil {
		t.Fatalf("update: %v", err)
	}

	listed, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listed[0].Price != newPrice {
		t.Fatalf("stale list after update: price = %d", listed[0].Price)
	}
}
