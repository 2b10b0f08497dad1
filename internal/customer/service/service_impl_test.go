package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	catalogrepository "github.com/networkasro-maker/asro/internal/catalog/repository"
	"github.com/networkasro-maker/asro/internal/customer/domain"
	"github.com/networkasro-maker/asro/internal/customer/repository"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	identityrepository "github.com/networkasro-maker/asro/internal/identity/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingAudit struct {
	entries []auditdomain.ActivityLog
}

func (r *recordingAudit) Record(_ context.Context, actor identitydomain.Actor, action string) (*auditdomain.ActivityLog, error) {
	entry := auditdomain.ActivityLog{
		UserID:   actor.ID,
		UserName: actor.Name,
		UserRole: actor.Role,
		Action:   action,
	}
	r.entries = append(r.entries, entry)
	return &entry, nil
}

func (r *recordingAudit) List(context.Context, int) ([]auditdomain.ActivityLog, error) {
	return r.entries, nil
}

type failingUpdateRepo struct {
	domain.Repository
}

func (failingUpdateRepo) UpdateVersioned(context.Context, *gorm.DB, snowflake.ID, int64, map[string]any) error {
	return errors.New("write_failed")
}

func setupLifecycleTest(t *testing.T) (*Service, *recordingAudit, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&identitydomain.User{}, &catalogdomain.Package{}, &domain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	audit := &recordingAudit{}
	svc := &Service{
		db:           db,
		log:          zap.NewNop(),
		genID:        node,
		repo:         repository.Provide(),
		packageRepo:  catalogrepository.Provide(),
		identityRepo: identityrepository.Provide(),
		auditSvc:     audit,
	}
	return svc, audit, db
}

func seedPackageAndSales(t *testing.T, db *gorm.DB) (catalogdomain.Package, identitydomain.User) {
	t.Helper()
	pkg := catalogdomain.Package{ID: 1001, Name: "Home 10 Mbps", Price: 150000}
	if err := db.Create(&pkg).Error; err != nil {
		t.Fatalf("seed package: %v", err)
	}
	sales := identitydomain.User{
		ID:           2001,
		Username:     "sales@asro.net",
		PasswordHash: "x",
		Role:         identitydomain.RoleSales,
		Name:         "Budi Sales",
		Status:       identitydomain.AccountActive,
	}
	if err := db.Create(&sales).Error; err != nil {
		t.Fatalf("seed sales: %v", err)
	}
	return pkg, sales
}

func createCustomer(t *testing.T, svc *Service, actor identitydomain.Actor) *domain.Customer {
	t.Helper()
	created, err := svc.Create(context.Background(), actor, domain.CreateCustomerRequest{
		Name:      "Siti Aminah",
		Address:   "Jl. Merdeka 1, Bumiayu",
		Phone:     "081234567890",
		DueDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		PackageID: "1001",
		SalesID:   "2001",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return created
}

func TestCreateCustomerDefaultsAndLog(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)

	if created.Status != domain.StatusActive || created.PaymentStatus != domain.PaymentUnpaid {
		t.Fatalf("expected Aktif/Belum Bayar, got %s/%s", created.Status, created.PaymentStatus)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(audit.entries))
	}
	if !strings.HasPrefix(audit.entries[0].Action, "Menambahkan pelanggan baru: Siti Aminah") {
		t.Fatalf("unexpected action text %q", audit.entries[0].Action)
	}
}

func TestCreateCustomerEmptyNameFailsWithoutSideEffects(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	_, err := svc.Create(context.Background(), admin, domain.CreateCustomerRequest{
		Name:      "  ",
		Address:   "Jl. Merdeka 1",
		DueDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		PackageID: "1001",
		SalesID:   "2001",
	})
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}

	var count int64
	if err := db.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no customer inserted, got %d", count)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no activity entries, got %d", len(audit.entries))
	}
}

func TestCreateCustomerUnknownPackage(t *testing.T) {
	svc, _, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	_, err := svc.Create(context.Background(), admin, domain.CreateCustomerRequest{
		Name:      "Siti",
		Address:   "Jl. Merdeka 1",
		DueDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		PackageID: "9999",
		SalesID:   "2001",
	})
	if !errors.Is(err, domain.ErrInvalidPackage) {
		t.Fatalf("expected invalid package, got %v", err)
	}
}

func TestVerificationThenConfirmScenario(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	_, salesUser := seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	sales := identitydomain.ActorFromUser(salesUser)
	created := createCustomer(t, svc, admin)
	audit.entries = nil

	// Sales claims payment.
	updated, err := svc.Apply(context.Background(), sales, created.ID, domain.ActionMarkAsVerifying)
	if err != nil {
		t.Fatalf("mark as verifying: %v", err)
	}
	if updated.PaymentStatus != domain.PaymentVerifying {
		t.Fatalf("expected Verifikasi, got %s", updated.PaymentStatus)
	}

	// Sales may not confirm their own claim.
	_, err = svc.Apply(context.Background(), sales, created.ID, domain.ActionConfirmPayment)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for sales confirm, got %v", err)
	}

	// Admin confirms.
	confirmed, err := svc.Apply(context.Background(), admin, created.ID, domain.ActionConfirmPayment)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if confirmed.PaymentStatus != domain.PaymentPaid || confirmed.Status != domain.StatusActive {
		t.Fatalf("expected Lunas/Aktif, got %s/%s", confirmed.PaymentStatus, confirmed.Status)
	}

	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(audit.entries))
	}
	last := audit.entries[len(audit.entries)-1]
	if !strings.HasPrefix(last.Action, "Konfirmasi pembayaran untuk pelanggan Siti Aminah") {
		t.Fatalf("unexpected confirm action text %q", last.Action)
	}
	if last.UserID != admin.ID || last.UserRole != identitydomain.RoleAdmin {
		t.Fatalf("confirm entry attributed to wrong actor: %+v", last)
	}
}

func TestToggleIsolateRoundTripPersists(t *testing.T) {
	svc, _, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)

	isolated, err := svc.Apply(context.Background(), admin, created.ID, domain.ActionToggleIsolate)
	if err != nil {
		t.Fatalf("isolate: %v", err)
	}
	if isolated.Status != domain.StatusIsolated {
		t.Fatalf("expected Isolir, got %s", isolated.Status)
	}

	restored, err := svc.Apply(context.Background(), admin, created.ID, domain.ActionToggleIsolate)
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if restored.Status != domain.StatusActive {
		t.Fatalf("expected Aktif after double toggle, got %s", restored.Status)
	}
	if restored.Version != created.Version+2 {
		t.Fatalf("expected version bumped twice, got %d", restored.Version)
	}
}

func TestApplyDeniedLeavesNoTrace(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)
	audit.entries = nil

	// Unpaid customer cannot be confirmed.
	_, err := svc.Apply(context.Background(), admin, created.ID, domain.ActionConfirmPayment)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	stored, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.PaymentStatus != domain.PaymentUnpaid || stored.Version != created.Version {
		t.Fatalf("denied action mutated the record: %+v", stored)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no activity entries for denied action, got %d", len(audit.entries))
	}
}

func TestApplySalesScopedToOwnPortfolio(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	_, salesUser := seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)
	audit.entries = nil

	otherSales := identitydomain.Actor{ID: 2002, Name: "Joko Sales", Role: identitydomain.RoleSales}
	_, err := svc.Apply(context.Background(), otherSales, created.ID, domain.ActionMarkAsVerifying)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for out-of-portfolio sales, got %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no activity entries, got %d", len(audit.entries))
	}

	owner := identitydomain.ActorFromUser(salesUser)
	updated, err := svc.Apply(context.Background(), owner, created.ID, domain.ActionMarkAsVerifying)
	if err != nil {
		t.Fatalf("owning sales apply: %v", err)
	}
	if updated.PaymentStatus != domain.PaymentVerifying {
		t.Fatalf("expected Verifikasi, got %s", updated.PaymentStatus)
	}
}

func TestApplyUpdateFailureWritesNoLog(t *testing.T) {
	svc, audit, db := setupLifecycleTest(t)
	_, salesUser := seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)
	audit.entries = nil

	svc.repo = failingUpdateRepo{Repository: svc.repo}
	sales := identitydomain.ActorFromUser(salesUser)
	if _, err := svc.Apply(context.Background(), sales, created.ID, domain.ActionMarkAsVerifying); err == nil {
		t.Fatalf("expected update failure")
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no activity entries after failed update, got %d", len(audit.entries))
	}
}

func TestApplyStaleVersionRejected(t *testing.T) {
	svc, _, db := setupLifecycleTest(t)
	seedPackageAndSales(t, db)

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	created := createCustomer(t, svc, admin)

	// Another write slips in underneath.
	if err := db.Model(&domain.Customer{}).
		Where("id = ?", created.ID).
		Update("version", created.Version+1).Error; err != nil {
		t.Fatalf("bump version: %v", err)
	}

	err := svc.repo.UpdateVersioned(context.Background(), db, created.ID, created.Version, map[string]any{
		"payment_status": domain.PaymentVerifying,
	})
	if !errors.Is(err, domain.ErrStaleCustomer) {
		t.Fatalf("expected stale customer, got %v", err)
	}
}

func TestListAppliesRoleScopeAndFilter(t *testing.T) {
	svc, _, db := setupLifecycleTest(t)
	_, salesUser := seedPackageAndSales(t, db)
	otherSales := identitydomain.User{
		ID:           2002,
		Username:     "sales2@asro.net",
		PasswordHash: "x",
		Role:         identitydomain.RoleSales,
		Name:         "Andi Sales",
		Status:       identitydomain.AccountActive,
	}
	if err := db.Create(&otherSales).Error; err != nil {
		t.Fatalf("seed sales2: %v", err)
	}

	admin := identitydomain.Actor{ID: 1, Name: "Admin", Role: identitydomain.RoleAdmin}
	first := createCustomer(t, svc, admin)
	_, err := svc.Create(context.Background(), admin, domain.CreateCustomerRequest{
		Name:      "Joko",
		Address:   "Jl. Raya 2",
		DueDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		PackageID: "1001",
		SalesID:   "2002",
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	sales := identitydomain.ActorFromUser(salesUser)
	mine, err := svc.List(context.Background(), sales, domain.FilterAll)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != first.ID {
		t.Fatalf("expected only own customer, got %v", mine)
	}

	all, err := svc.List(context.Background(), admin, domain.FilterAll)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 customers for admin, got %d", len(all))
	}

	if _, err := svc.List(context.Background(), admin, domain.FilterKey("Bogus")); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected invalid filter, got %v", err)
	}
}
