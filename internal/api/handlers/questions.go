package handlers

import (
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/services"
)

type QuestionHandler struct {
	svc *services.QuestionService
}

func NewQuestionHandler(svc *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// Create stores a question owned by the caller.
//
// @Summary  Create question
// @Tags     question
// @Param    body body questionRequest true "question"
// @Success  201 {object} models.Question
// @Failure  400 {object} validationResponse
// @Router   /question [post]
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req questionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	q, err := h.svc.Create(r.Context(), uid, req.Title, req.Description)
	if err != nil {
		writeMutationErr(w, r, "create question", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, q)
}

// @Summary  List questions
// @Tags     question
// @Success  200 {array} models.QuestionSummary
// @Success  204
// @Router   /question [get]
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.List(r.Context())
	if err != nil {
		internalError(w, r, "list questions", err)
		return
	}
	writeList(w, qs)
}

// @Summary  Get question
// @Tags     question
// @Param    id path int true "question id"
// @Success  200 {object} models.Question
// @Failure  404 {string} string
// @Router   /question/{id} [get]
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeGetErr(w, r, "Cannot find question by id", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, q)
}

// @Summary  Update question
// @Tags     question
// @Param    id   path int             true "question id"
// @Param    body body questionRequest true "question"
// @Success  204
// @Router   /question/{id} [put]
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req questionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.svc.Update(r.Context(), id, req.Title, req.Description); err != nil {
		writeMutationErr(w, r, "update question", err)
		return
	}
	httpx.NoContent(w)
}

// @Summary  Delete question
// @Tags     question
// @Param    id path int true "question id"
// @Success  204
// @Failure  500 {string} string
// @Router   /question/{id} [delete]
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDeleteErr(w, r, "Cannot delete question by id", err)
		return
	}
	httpx.NoContent(w)
}
