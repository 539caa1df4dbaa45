package handlers

import (
	"errors"
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/api/validate"
	"github.com/baharkarakas/qa-backend/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func unauthorized(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized", nil)
}

// Login exchanges email+password for an access/refresh token pair.
//
// @Summary  Authenticate
// @Tags     auth
// @Param    body body loginRequest true "credentials"
// @Success  200 {object} auth.TokenPair
// @Failure  401 {object} httpx.APIError
// @Router   /api/authenticate [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFieldErrors(w, http.StatusBadRequest, validate.Errs{{Field: "body", Msg: err.Error()}})
		return
	}
	pair, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			unauthorized(w)
			return
		}
		internalError(w, r, "authenticate", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// Refresh issues a new pair for the user proven by the refresh token the
// gate already verified.
//
// @Summary  Refresh tokens
// @Tags     auth
// @Security BearerRefresh
// @Success  200 {object} auth.TokenPair
// @Failure  401 {object} httpx.APIError
// @Router   /api/authenticate/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	pair, err := h.svc.Refresh(r.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			unauthorized(w)
			return
		}
		internalError(w, r, "refresh", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}
