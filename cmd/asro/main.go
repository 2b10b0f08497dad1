package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/audit"
	"github.com/networkasro-maker/asro/internal/auth"
	"github.com/networkasro-maker/asro/internal/billingcycle"
	"github.com/networkasro-maker/asro/internal/catalog"
	"github.com/networkasro-maker/asro/internal/clock"
	"github.com/networkasro-maker/asro/internal/config"
	"github.com/networkasro-maker/asro/internal/customer"
	"github.com/networkasro-maker/asro/internal/dashboard"
	"github.com/networkasro-maker/asro/internal/identity"
	"github.com/networkasro-maker/asro/internal/ispprofile"
	"github.com/networkasro-maker/asro/internal/issue"
	"github.com/networkasro-maker/asro/internal/migration"
	"github.com/networkasro-maker/asro/internal/notification"
	"github.com/networkasro-maker/asro/internal/observability/logger"
	"github.com/networkasro-maker/asro/internal/observability/tracing"
	"github.com/networkasro-maker/asro/internal/seed"
	"github.com/networkasro-maker/asro/internal/server"
	"github.com/networkasro-maker/asro/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			return seed.Ensure(conn, cfg)
		}),
		audit.Module,
		identity.Module,
		auth.Module,
		catalog.Module,
		customer.Module,
		billingcycle.Module,
		notification.Module,
		issue.Module,
		ispprofile.Module,
		dashboard.Module,
		server.Module,
	)
	app.Run()
}
