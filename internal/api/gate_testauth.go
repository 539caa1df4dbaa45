//go:build testauth

package api

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/config"
	"github.com/baharkarakas/qa-backend/internal/middleware"
)

// gate swaps token verification for a fixed identity when a testauth build
// runs with APP_ENV=test.
func gate(cfg config.Config, tm *auth.TokenManager) func(http.Handler) http.Handler {
	if cfg.Env == "test" {
		slog.Warn("authentication bypassed", "user_id", cfg.TestUserID)
		return middleware.StaticUser(cfg.TestUserID)
	}
	return middleware.NewGate(tm).Handler
}
