package service

import (
	"context"
	"strings"

	"github.com/networkasro-maker/asro/internal/auth/domain"
	"github.com/networkasro-maker/asro/internal/auth/password"
	"github.com/networkasro-maker/asro/internal/auth/session"
	"github.com/networkasro-maker/asro/internal/clock"
	"github.com/networkasro-maker/asro/internal/config"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg   config.Config
	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Users identitydomain.Repository
}

type Service struct {
	cfg   config.Config
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	users identitydomain.Repository
}

func NewService(p Params) domain.Service {
	return &Service{
		cfg:   p.Cfg,
		db:    p.DB,
		log:   p.Log.Named("auth.service"),
		clock: p.Clock,
		users: p.Users,
	}
}

// SignIn verifies the credentials and issues a session token. Failures do
// not reveal whether the username exists.
func (s *Service) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status == identitydomain.AccountFrozen {
		return nil, domain.ErrAccountFrozen
	}

	token, exp, err := session.Issue(s.cfg.SessionSecret, *user, s.cfg.SessionTTL, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.log.Info("user signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return &domain.Session{Token: token, ExpiresAt: exp, User: *user}, nil
}

// Resolve maps a bearer token to the current actor. The stored account is
// re-read so that freezing a user invalidates their sessions immediately.
func (s *Service) Resolve(ctx context.Context, token string) (identitydomain.Actor, error) {
	claims, err := session.Parse(s.cfg.SessionSecret, token)
	if err != nil {
		return identitydomain.Actor{}, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, s.db, claims.UserID)
	if err != nil {
		return identitydomain.Actor{}, err
	}
	if user == nil || user.Status == identitydomain.AccountFrozen {
		return identitydomain.Actor{}, domain.ErrInvalidToken
	}
	return identitydomain.ActorFromUser(*user), nil
}
