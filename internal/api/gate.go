//go:build !testauth

package api

import (
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/config"
	"github.com/baharkarakas/qa-backend/internal/middleware"
)

func gate(_ config.Config, tm *auth.TokenManager) func(http.Handler) http.Handler {
	return middleware.NewGate(tm).Handler
}
