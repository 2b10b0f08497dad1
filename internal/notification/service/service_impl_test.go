package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	catalogrepository "github.com/networkasro-maker/asro/internal/catalog/repository"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	customerrepository "github.com/networkasro-maker/asro/internal/customer/repository"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"github.com/networkasro-maker/asro/internal/notification/domain"
	"github.com/networkasro-maker/asro/internal/notification/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopAudit struct{}

func (noopAudit) Record(_ context.Context, _ identitydomain.Actor, action string) (*auditdomain.ActivityLog, error) {
	return &auditdomain.ActivityLog{Action: action}, nil
}

func (noopAudit) List(context.Context, int) ([]auditdomain.ActivityLog, error) { return nil, nil }

type stubDrafter struct {
	text string
}

func (s stubDrafter) Draft(context.Context, string) (string, error) { return s.text, nil }

func setupNotificationTest(t *testing.T, drafter domain.Drafter) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.WhatsAppTemplate{}, &customerdomain.Customer{}, &catalogdomain.Package{}); err != nil {
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
		packageRepo:  catalogrepository.Provide(),
		auditSvc:     noopAudit{},
		drafter:      drafter,
	}
	return svc, db
}

var adminActor = identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}

func TestPreviewSubstitutesCustomerFields(t *testing.T) {
	svc, db := setupNotificationTest(t, nil)
	ctx := context.Background()

	pkg := catalogdomain.Package{ID: 100, Name: "Paket Home 10 Mbps", Price: 150000}
	if err := db.Create(&pkg).Error; err != nil {
		t.Fatalf("seed package: %v", err)
	}
	customer := customerdomain.Customer{
		ID:            200,
		Name:          "Budi Santoso",
		Address:       "Jl. Mawar No. 5",
		DueDate:       time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		PackageID:     pkg.ID,
		SalesID:       1,
		Status:        customerdomain.StatusActive,
		PaymentStatus: customerdomain.PaymentUnpaid,
		Version:       1,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	tmpl, err := svc.Create(ctx, adminActor, domain.CreateTemplateRequest{
		Name:     "Tagihan Bulanan",
		Template: "Halo {nama}, tagihan {paket} sebesar {tagihan} jatuh tempo {jatuh_tempo}.",
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	got, err := svc.Preview(ctx, tmpl.ID, customer.ID)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	want := "Halo Budi Santoso, tagihan Paket Home 10 Mbps sebesar Rp 150.000 jatuh tempo 15/9/2026."
	if got != want {
		t.Fatalf("preview = %q, want %q", got, want)
	}
}

func TestPreviewUnknownTemplate(t *testing.T) {
	svc, _ := setupNotificationTest(t, nil)

	if _, err := svc.Preview(context.Background(), 999, 200); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDraftRequiresPrivilegedRole(t *testing.T) {
	svc, _ := setupNotificationTest(t, stubDrafter{text: "Halo {nama}"})
	ctx := context.Background()

	sales := identitydomain.Actor{ID: 2, Role: identitydomain.RoleSales}
	if _, err := svc.Draft(ctx, sales, "ingatkan tagihan"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("sales draft: err = %v", err)
	}

	text, err := svc.Draft(ctx, adminActor, "ingatkan tagihan")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if text != "Halo {nama}" {
		t.Fatalf("draft = %q", text)
	}
}

func TestDraftWithoutGeneratorConfigured(t *testing.T) {
	svc, _ := setupNotificationTest(t, nil)

	if _, err := svc.Draft(context.Background(), adminActor, "ingatkan tagihan"); !errors.Is(err, domain.ErrDrafterUnavailable) {
		t.Fatalf("err = %v, want ErrDrafterUnavailable", err)
	}
}
