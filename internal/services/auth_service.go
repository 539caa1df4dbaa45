package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/metrics"
	"github.com/baharkarakas/qa-backend/internal/models"
	repo "github.com/baharkarakas/qa-backend/internal/repository"
)

type AuthService struct {
	users  repo.Users
	hasher *auth.Hasher
	tm     *auth.TokenManager
}

func NewAuthService(users repo.Users, h *auth.Hasher, tm *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: h, tm: tm}
}

// Authenticate checks email+password and issues a fresh token pair.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (auth.TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err == nil && s.hasher.Verify(password, u.PasswordHash) != nil {
		err = ErrInvalidCredentials
	}
	return s.issue("authenticate", u, err)
}

// Refresh issues a new pair for a user id already proven by a refresh token,
// provided the user still exists.
func (s *AuthService) Refresh(ctx context.Context, userID int64) (auth.TokenPair, error) {
	u, err := s.users.GetByID(ctx, userID)
	return s.issue("refresh", u, err)
}

func (s *AuthService) issue(flow string, u models.User, err error) (auth.TokenPair, error) {
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(flow, "failure").Inc()
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
			return auth.TokenPair{}, ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("%s: %w", flow, err)
	}
	pair, err := s.tm.IssuePair(u.ID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues(flow, "success").Inc()
	return pair, nil
}
