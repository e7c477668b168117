// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "lifelink/internal/app/store/users"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// LifeLink promotes the configured admin_email to the admin role here so
// a fresh deployment has a working admin without manual DB edits. The
// user may not have signed up yet; that case is logged and skipped, and
// the promotion happens on the next boot.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" {
		return nil
	}

	promoted, err := userstore.New(deps.MongoDatabase).PromoteAdminByEmail(ctx, appCfg.AdminEmail)
	if err != nil {
		logger.Error("admin promotion failed", zap.String("email", appCfg.AdminEmail), zap.Error(err))
		return err
	}
	if promoted {
		logger.Info("admin user promoted", zap.String("email", appCfg.AdminEmail))
	} else {
		logger.Warn("admin_email has no user record yet; promotion deferred",
			zap.String("email", appCfg.AdminEmail))
	}
	return nil
}
