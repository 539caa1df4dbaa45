package handlers

import (
	"strings"

	"github.com/baharkarakas/qa-backend/internal/api/validate"
	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/baharkarakas/qa-backend/internal/services"
)

// normalizer trims string fields before validation.
type normalizer interface{ normalize() }

type userRequest struct {
	Email    string `json:"email" validate:"required,min=3,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"passwordlen,hasdigit,hasspecial"`
}

func (r *userRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
}

func (r userRequest) input() services.UserInput {
	return services.UserInput{Email: r.Email, Username: r.Username, Password: r.Password}
}

// UserResponse is the only shape a user is ever rendered in; it has no
// credential fields.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func newUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Username: u.Username}
}

type questionRequest struct {
	Title       string `json:"title" validate:"min=3"`
	Description string `json:"description" validate:"min=3"`
}

func (r *questionRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

type answerRequest struct {
	Description string `json:"description" validate:"min=3"`
}

func (r *answerRequest) normalize() { r.Description = strings.TrimSpace(r.Description) }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validationResponse is the 400 body: one entry per failing field.
type validationResponse struct {
	Errors validate.Errs `json:"errors"`
}
