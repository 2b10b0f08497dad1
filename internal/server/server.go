package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
	authdomain "github.com/networkasro-maker/asro/internal/auth/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	"github.com/networkasro-maker/asro/internal/config"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	dashboarddomain "github.com/networkasro-maker/asro/internal/dashboard/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	ispprofiledomain "github.com/networkasro-maker/asro/internal/ispprofile/domain"
	issuedomain "github.com/networkasro-maker/asro/internal/issue/domain"
	notificationdomain "github.com/networkasro-maker/asro/internal/notification/domain"
	receiptrender "github.com/networkasro-maker/asro/internal/receipt/render"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg             config.Config
	Log             *zap.Logger
	DB              *gorm.DB
	AuthSvc         authdomain.Service
	IdentitySvc     identitydomain.Service
	CustomerSvc     customerdomain.Service
	CatalogSvc      catalogdomain.Service
	NotificationSvc notificationdomain.Service
	IssueSvc        issuedomain.Service
	ProfileSvc      ispprofiledomain.Service
	DashboardSvc    dashboarddomain.Service
	AuditSvc        auditdomain.Service
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	cfg             config.Config
	log             *zap.Logger
	db              *gorm.DB
	authSvc         authdomain.Service
	identitySvc     identitydomain.Service
	customerSvc     customerdomain.Service
	catalogSvc      catalogdomain.Service
	notificationSvc notificationdomain.Service
	issueSvc        issuedomain.Service
	profileSvc      ispprofiledomain.Service
	dashboardSvc    dashboarddomain.Service
	auditSvc        auditdomain.Service
	receiptRenderer receiptrender.Renderer
	loginLimiter    *loginLimiter
	tracer          trace.Tracer
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		db:              p.DB,
		authSvc:         p.AuthSvc,
		identitySvc:     p.IdentitySvc,
		customerSvc:     p.CustomerSvc,
		catalogSvc:      p.CatalogSvc,
		notificationSvc: p.NotificationSvc,
		issueSvc:        p.IssueSvc,
		profileSvc:      p.ProfileSvc,
		dashboardSvc:    p.DashboardSvc,
		auditSvc:        p.AuditSvc,
		receiptRenderer: receiptrender.NewRenderer(),
		loginLimiter:    newLoginLimiter(p.Cfg.LoginRateLimit, p.Cfg.LoginRateWindow),
		tracer:          otel.Tracer("server"),
	}
}

// recordActivity appends an audit entry for handler-level events. Failure is
// logged and never fails the request.
func (s *Server) recordActivity(ctx context.Context, actor identitydomain.Actor, action string) {
	if s.auditSvc == nil {
		return
	}
	if _, err := s.auditSvc.Record(ctx, actor, action); err != nil {
		s.log.Warn("activity log append failed", zap.String("action", action), zap.Error(err))
	}
}

// NewEngine builds the gin engine and mounts all routes.
func NewEngine(s *Server) *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.tracing())
	engine.Use(s.requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	v1.POST("/auth/login", s.Login)

	authed := v1.Group("")
	authed.Use(s.RequireSession())
	{
		authed.GET("/auth/me", s.Me)
		authed.POST("/auth/logout", s.Logout)
		authed.POST("/auth/password", s.ChangePassword)

		authed.GET("/customers", s.ListCustomers)
		authed.GET("/customers/me", s.MyCustomer)
		authed.GET("/customers/:id", s.GetCustomer)
		authed.GET("/customers/:id/receipt", s.CustomerReceipt)
		authed.GET("/customers/:id/issues", s.CustomerIssues)
		authed.POST("/customers", s.CreateCustomer)
		authed.POST("/customers/:id/actions/:action", s.ApplyCustomerAction)

		authed.GET("/packages", s.ListPackages)

		authed.GET("/issues", s.ListIssues)
		authed.POST("/issues", s.CreateIssue)

		authed.GET("/isp-profile", s.GetIspProfile)

		authed.GET("/dashboard", s.Dashboard)
	}

	privileged := authed.Group("")
	privileged.Use(s.RequireRoles(identitydomain.RoleSuperAdmin, identitydomain.RoleAdmin))
	{
		privileged.PATCH("/customers/:id", s.UpdateCustomer)

		privileged.POST("/packages", s.CreatePackage)
		privileged.PATCH("/packages/:id", s.UpdatePackage)
		privileged.DELETE("/packages/:id", s.DeletePackage)

		privileged.GET("/users", s.ListUsers)
		privileged.POST("/users", s.CreateUser)
		privileged.PATCH("/users/:id", s.UpdateUser)
		privileged.POST("/users/:id/toggle-status", s.ToggleUserStatus)

		privileged.GET("/templates", s.ListTemplates)
		privileged.POST("/templates", s.CreateTemplate)
		privileged.PATCH("/templates/:id", s.UpdateTemplate)
		privileged.DELETE("/templates/:id", s.DeleteTemplate)
		privileged.GET("/templates/:id/preview/:customerId", s.PreviewTemplate)
		privileged.POST("/templates/draft", s.DraftTemplate)

		privileged.PUT("/isp-profile", s.UpdateIspProfile)

		privileged.GET("/activity-logs", s.ListActivityLogs)
	}

	return engine
}

func (s *Server) tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := s.tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		span.End()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			s.log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", c.Writer.Status()),
				zap.String("errors", c.Errors.String()),
			)
		}
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Provide(NewEngine),
	fx.Invoke(RunHTTP),
)
