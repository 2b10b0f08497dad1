package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/auth/password"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	"github.com/networkasro-maker/asro/internal/config"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	ispprofiledomain "github.com/networkasro-maker/asro/internal/ispprofile/domain"
	notificationdomain "github.com/networkasro-maker/asro/internal/notification/domain"
	"gorm.io/gorm"
)

const defaultProfileName = "ASRO.NET"

var defaultPackages = []catalogdomain.Package{
	{Name: "Paket Home 10 Mbps", Price: 150000},
	{Name: "Paket Home 20 Mbps", Price: 250000},
	{Name: "Paket Home 50 Mbps", Price: 350000},
}

var defaultTemplates = []notificationdomain.WhatsAppTemplate{
	{
		Name:     "Tagihan Bulanan",
		Template: "Halo {nama}, kami ingin mengingatkan tagihan internet ASRO.NET Anda sebesar {tagihan} akan jatuh tempo pada tanggal {jatuh_tempo}. Terima kasih.",
	},
	{
		Name:     "Konfirmasi Pembayaran",
		Template: "Terima kasih {nama}! Pembayaran tagihan Anda sebesar {tagihan} telah kami terima. Selamat menikmati layanan internet tanpa batas dari ASRO.NET.",
	},
}

// Ensure bootstraps the singleton profile, the super admin account, and
// the starter catalog and templates. Every step is idempotent.
func Ensure(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureProfile(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureSuperAdmin(ctx, tx, node, cfg); err != nil {
			return err
		}
		if err := ensurePackages(ctx, tx, node); err != nil {
			return err
		}
		return ensureTemplates(ctx, tx, node)
	})
}

func ensureProfile(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&ispprofiledomain.IspProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := ispprofiledomain.IspProfile{
		ID:           node.Generate(),
		Name:         defaultProfileName,
		BankAccounts: []ispprofiledomain.BankAccount{},
	}
	return tx.WithContext(ctx).Create(&profile).Error
}

func ensureSuperAdmin(ctx context.Context, tx *gorm.DB, node *snowflake.Node, cfg config.Config) error {
	var count int64
	if err := tx.WithContext(ctx).
		Model(&identitydomain.User{}).
		Where("role = ?", identitydomain.RoleSuperAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plain := cfg.BootstrapSuperAdminPassword
	if plain == "" {
		return errors.New("BOOTSTRAP_SUPERADMIN_PASSWORD is required on first start")
	}
	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}

	user := identitydomain.User{
		ID:           node.Generate(),
		Username:     strings.ToLower(strings.TrimSpace(cfg.BootstrapSuperAdminEmail)),
		PasswordHash: hashed,
		Role:         identitydomain.RoleSuperAdmin,
		Name:         "Super Admin",
		Status:       identitydomain.AccountActive,
	}
	return tx.WithContext(ctx).Create(&user).Error
}

func ensurePackages(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&catalogdomain.Package{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, pkg := range defaultPackages {
		pkg.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&pkg).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureTemplates(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&notificationdomain.WhatsAppTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tpl := range defaultTemplates {
		tpl.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&tpl).Error; err != nil {
			return err
		}
	}
	return nil
}
