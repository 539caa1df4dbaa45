package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/models"
	repo "github.com/baharkarakas/qa-backend/internal/repository"
)

type UserInput struct {
	Email    string
	Username string
	Password string
}

type UserService struct {
	r      repo.Users
	hasher *auth.Hasher
}

func NewUserService(r repo.Users, h *auth.Hasher) *UserService {
	return &UserService{r: r, hasher: h}
}

func (s *UserService) Register(ctx context.Context, in UserInput) (models.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.r.Create(ctx, in.Email, in.Username, hash)
}

func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	return s.r.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.r.GetByID(ctx, id)
}

// Update overwrites email, username and password. The password is re-hashed
// with a fresh salt every time.
func (s *UserService) Update(ctx context.Context, id int64, in UserInput) error {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.r.Update(ctx, models.User{ID: id, Email: in.Email, Username: in.Username, PasswordHash: hash})
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}
