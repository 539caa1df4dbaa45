package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/logger"
)

const (
	RegisterPath     = "/user"
	AuthenticatePath = "/api/authenticate"
	RefreshPath      = "/api/authenticate/refresh"
)

// Gate requires a valid bearer token on every request except registration
// and login. The refresh endpoint is verified against the refresh secret,
// everything else against the access secret.
type Gate struct {
	tm *auth.TokenManager
}

func NewGate(tm *auth.TokenManager) *Gate { return &Gate{tm: tm} }

func public(r *http.Request) bool {
	return r.Method == http.MethodPost && (r.URL.Path == RegisterPath || r.URL.Path == AuthenticatePath)
}

func bearerToken(r *http.Request) (string, bool) {
	ah := r.Header.Get("Authorization")
	if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(ah[len("Bearer "):])
	return tok, tok != ""
}

func denied(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Access Denied", nil)
}

func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if public(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			denied(w)
			return
		}

		domain := auth.Access
		if r.URL.Path == RefreshPath {
			domain = auth.Refresh
		}
		uid, err := g.tm.Verify(token, domain)
		if err != nil {
			logger.FromContext(r.Context()).Debug("token rejected", "domain", domain.String(), "err", err)
			denied(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
	})
}
