package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	"github.com/networkasro-maker/asro/internal/clock"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	customerrepository "github.com/networkasro-maker/asro/internal/customer/repository"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"github.com/networkasro-maker/asro/internal/issue/domain"
	"github.com/networkasro-maker/asro/internal/issue/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopAudit struct{}

func (noopAudit) Record(_ context.Context, _ identitydomain.Actor, action string) (*auditdomain.ActivityLog, error) {
	return &auditdomain.ActivityLog{Action: action}, nil
}

func (noopAudit) List(context.Context, int) ([]auditdomain.ActivityLog, error) { return nil, nil }

func setupIssueTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.IssueReport{}, &customerdomain.Customer{}); err != nil {
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
		clock:        clock.Fixed(time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)),
		repo:         repository.Provide(),
		customerRepo: customerrepository.Provide(),
		auditSvc:     noopAudit{},
	}
	return svc, db
}

func seedCustomerWithUser(t *testing.T, db *gorm.DB, id, userID snowflake.ID) customerdomain.Customer {
	t.Helper()
	c := customerdomain.Customer{
		ID:            id,
		Name:          "Budi Santoso",
		Address:       "Jl. Mawar No. 5",
		DueDate:       time.Now(),
		PackageID:     1,
		SalesID:       1,
		Status:        customerdomain.StatusActive,
		PaymentStatus: customerdomain.PaymentUnpaid,
		UserID:        &userID,
		Version:       1,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func TestCreateReportByOwningSubscriber(t *testing.T) {
	svc, db := setupIssueTest(t)
	customer := seedCustomerWithUser(t, db, 100, 500)

	subscriber := identitydomain.Actor{ID: 500, Name: "Budi Santoso", Role: identitydomain.RoleCustomer}
	report, err := svc.Create(context.Background(), subscriber, domain.CreateReportRequest{
		CustomerID:       customer.ID.String(),
		ModemLightStatus: string(domain.ModemLightRed),
		Description:      "Internet mati sejak pagi",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if report.CustomerID != customer.ID {
		t.Fatalf("report customer = %v", report.CustomerID)
	}
	if report.ModemLightStatus != domain.ModemLightRed {
		t.Fatalf("light status = %q", report.ModemLightStatus)
	}
}

func TestCreateReportForOtherCustomerForbidden(t *testing.T) {
	svc, db := setupIssueTest(t)
	customer := seedCustomerWithUser(t, db, 100, 500)

	other := identitydomain.Actor{ID: 501, Name: "Siti", Role: identitydomain.RoleCustomer}
	_, err := svc.Create(context.Background(), other, domain.CreateReportRequest{
		CustomerID:       customer.ID.String(),
		ModemLightStatus: string(domain.ModemLightOff),
		Description:      "Internet mati",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateReportValidation(t *testing.T) {
	svc, db := setupIssueTest(t)
	customer := seedCustomerWithUser(t, db, 100, 500)
	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	ctx := context.Background()

	if _, err := svc.Create(ctx, admin, domain.CreateReportRequest{
		CustomerID:       customer.ID.String(),
		ModemLightStatus: "Lampu Biru",
		Description:      "x",
	}); !errors.Is(err, domain.ErrInvalidLightStatus) {
		t.Fatalf("unknown light: err = %v", err)
	}

	if _, err := svc.Create(ctx, admin, domain.CreateReportRequest{
		CustomerID:       customer.ID.String(),
		ModemLightStatus: string(domain.ModemLightGreen),
		Description:      "   ",
	}); !errors.Is(err, domain.ErrInvalidDescription) {
		t.Fatalf("blank description: err = %v", err)
	}
}

func TestListRequiresPrivilegedRole(t *testing.T) {
	svc, db := setupIssueTest(t)
	customer := seedCustomerWithUser(t, db, 100, 500)
	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	ctx := context.Background()

	if _, err := svc.Create(ctx, admin, domain.CreateReportRequest{
		CustomerID:       customer.ID.String(),
		ModemLightStatus: string(domain.ModemLightGreen),
		Description:      "Koneksi lambat",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	reports, err := svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("len = %d, want 1", len(reports))
	}

	sales := identitydomain.Actor{ID: 2, Role: identitydomain.RoleSales}
	if _, err := svc.List(ctx, sales); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestListScopesSubscriberToOwnReports(t *testing.T) {
	svc, db := setupIssueTest(t)
	mine := seedCustomerWithUser(t, db, 100, 500)
	theirs := seedCustomerWithUser(t, db, 101, 501)
	ctx := context.Background()

	for _, c := range []customerdomain.Customer{mine, theirs} {
		owner := identitydomain.Actor{ID: *c.UserID, Role: identitydomain.RoleCustomer}
		if _, err := svc.Create(ctx, owner, domain.CreateReportRequest{
			CustomerID:       c.ID.String(),
			ModemLightStatus: string(domain.ModemLightRed),
			Description:      "Internet mati total",
		}); err != nil {
			t.Fatalf("create for %v: %v", c.ID, err)
		}
	}

	subscriber := identitydomain.Actor{ID: 500, Role: identitydomain.RoleCustomer}
	reports, err := svc.List(ctx, subscriber)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 1 || reports[0].CustomerID != mine.ID {
		t.Fatalf("expected only the subscriber's own report, got %v", reports)
	}

	unlinked := identitydomain.Actor{ID: 999, Role: identitydomain.RoleCustomer}
	if _, err := svc.List(ctx, unlinked); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
