package handlers

import (
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// Create registers a user.
//
// @Summary  Create user
// @Tags     user
// @Param    body body userRequest true "user"
// @Success  201 {object} UserResponse
// @Failure  400 {object} validationResponse
// @Router   /user [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	u, err := h.svc.Register(r.Context(), req.input())
	if err != nil {
		writeMutationErr(w, r, "create user", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, newUserResponse(u))
}

// List returns id and email of every user.
//
// @Summary  List users
// @Tags     user
// @Success  200 {array} models.UserSummary
// @Success  204
// @Router   /user [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		internalError(w, r, "list users", err)
		return
	}
	writeList(w, users)
}

// @Summary  Get user
// @Tags     user
// @Param    id path int true "user id"
// @Success  200 {object} UserResponse
// @Failure  404 {string} string
// @Router   /user/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeGetErr(w, r, "Cannot find user by id", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newUserResponse(u))
}

// Update overwrites email, username and password. An unknown id still
// answers 204.
//
// @Summary  Update user
// @Tags     user
// @Param    id   path int         true "user id"
// @Param    body body userRequest true "user"
// @Success  204
// @Router   /user/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req userRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.svc.Update(r.Context(), id, req.input()); err != nil {
		writeMutationErr(w, r, "update user", err)
		return
	}
	httpx.NoContent(w)
}

// @Summary  Delete user
// @Tags     user
// @Param    id path int true "user id"
// @Success  204
// @Failure  500 {string} string
// @Router   /user/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDeleteErr(w, r, "Cannot delete user by id", err)
		return
	}
	httpx.NoContent(w)
}
