package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/networkasro-maker/asro/internal/auth/domain"
	"github.com/networkasro-maker/asro/internal/auth/password"
	"github.com/networkasro-maker/asro/internal/clock"
	"github.com/networkasro-maker/asro/internal/config"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	identityrepository "github.com/networkasro-maker/asro/internal/identity/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&identitydomain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := &Service{
		cfg: config.Config{
			SessionSecret: "test-secret",
			SessionTTL:    12 * time.Hour,
		},
		db:    db,
		log:   zap.NewNop(),
		clock: clock.SystemClock{},
		users: identityrepository.Provide(),
	}
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, username, plain string, status identitydomain.AccountStatus) identitydomain.User {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := identitydomain.User{
		ID:           2001,
		Username:     username,
		PasswordHash: hash,
		Role:         identitydomain.RoleAdmin,
		Name:         "Admin Satu",
		Status:       status,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestSignInIssuesResolvableSession(t *testing.T) {
	svc, db := setupAuthTest(t)
	user := seedUser(t, db, "admin", "rahasia-123", identitydomain.AccountActive)

	sess, err := svc.SignIn(context.Background(), domain.SignInRequest{Username: "Admin", Password: "rahasia-123"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.User.ID != user.ID {
		t.Fatalf("session user = %v, want %v", sess.User.ID, user.ID)
	}
	if !sess.ExpiresAt.After(time.Now().Add(11 * time.Hour)) {
		t.Fatalf("expiry too soon: %v", sess.ExpiresAt)
	}

	actor, err := svc.Resolve(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if actor.ID != user.ID || actor.Role != identitydomain.RoleAdmin {
		t.Fatalf("actor = %+v", actor)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, db := setupAuthTest(t)
	seedUser(t, db, "admin", "rahasia-123", identitydomain.AccountActive)

	_, err := svc.SignIn(context.Background(), domain.SignInRequest{Username: "admin", Password: "salah"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInUnknownUserSameError(t *testing.T) {
	svc, _ := setupAuthTest(t)

	_, err := svc.SignIn(context.Background(), domain.SignInRequest{Username: "siapa", Password: "apa"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInFrozenAccount(t *testing.T) {
	svc, db := setupAuthTest(t)
	seedUser(t, db, "admin", "rahasia-123", identitydomain.AccountFrozen)

	_, err := svc.SignIn(context.Background(), domain.SignInRequest{Username: "admin", Password: "rahasia-123"})
	if !errors.Is(err, domain.ErrAccountFrozen) {
		t.Fatalf("err = %v, want ErrAccountFrozen", err)
	}
}

func TestResolveRejectsFrozenUser(t *testing.T) {
	svc, db := setupAuthTest(t)
	user := seedUser(t, db, "admin", "rahasia-123", identitydomain.AccountActive)

	sess, err := svc.SignIn(context.Background(), domain.SignInRequest{Username: "admin", Password: "rahasia-123"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	if err := db.Model(&identitydomain.User{}).
		Where("id = ?", user.ID).
		Update("status", identitydomain.AccountFrozen).Error; err != nil {
		t.Fatalf("freeze: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), sess.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestResolveRejectsTamperedToken(t *testing.T) {
	svc, _ := setupAuthTest(t)

	if _, err := svc.Resolve(context.Background(), "bukan.token.valid"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
