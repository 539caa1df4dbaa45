package handlers

import (
	"net/http"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/services"
)

// AnswerHandler serves /question/{questionId}/answers. Every lookup is
// scoped to the question in the path.
type AnswerHandler struct {
	svc *services.AnswerService
}

func NewAnswerHandler(svc *services.AnswerService) *AnswerHandler { return &AnswerHandler{svc: svc} }

// @Summary  Create answer
// @Tags     answer
// @Param    questionId path int           true "question id"
// @Param    body       body answerRequest true "answer"
// @Success  201 {object} models.Answer
// @Failure  400 {object} validationResponse
// @Router   /question/{questionId}/answers [post]
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	qid, ok := pathID(w, r, "questionId")
	if !ok {
		return
	}
	var req answerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.svc.Create(r.Context(), qid, uid, req.Description)
	if err != nil {
		writeMutationErr(w, r, "create answer", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

// @Summary  List answers of a question
// @Tags     answer
// @Param    questionId path int true "question id"
// @Success  200 {array} models.AnswerSummary
// @Success  204
// @Router   /question/{questionId}/answers [get]
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	qid, ok := pathID(w, r, "questionId")
	if !ok {
		return
	}
	as, err := h.svc.List(r.Context(), qid)
	if err != nil {
		internalError(w, r, "list answers", err)
		return
	}
	writeList(w, as)
}

// @Summary  Get answer
// @Tags     answer
// @Param    questionId path int true "question id"
// @Param    answerId   path int true "answer id"
// @Success  200 {object} models.Answer
// @Failure  404 {string} string
// @Router   /question/{questionId}/answers/{answerId} [get]
func (h *AnswerHandler) Get(w http.ResponseWriter, r *http.Request) {
	qid, id, ok := answerPath(w, r)
	if !ok {
		return
	}
	a, err := h.svc.Get(r.Context(), qid, id)
	if err != nil {
		writeGetErr(w, r, "Cannot find answer by id", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

// @Summary  Update answer
// @Tags     answer
// @Param    questionId path int           true "question id"
// @Param    answerId   path int           true "answer id"
// @Param    body       body answerRequest true "answer"
// @Success  204
// @Router   /question/{questionId}/answers/{answerId} [put]
func (h *AnswerHandler) Update(w http.ResponseWriter, r *http.Request) {
	qid, id, ok := answerPath(w, r)
	if !ok {
		return
	}
	var req answerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.svc.Update(r.Context(), qid, id, req.Description); err != nil {
		writeMutationErr(w, r, "update answer", err)
		return
	}
	httpx.NoContent(w)
}

// @Summary  Delete answer
// @Tags     answer
// @Param    questionId path int true "question id"
// @Param    answerId   path int true "answer id"
// @Success  204
// @Failure  500 {string} string
// @Router   /question/{questionId}/answers/{answerId} [delete]
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	qid, id, ok := answerPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), qid, id); err != nil {
		writeDeleteErr(w, r, "Cannot delete answer by id", err)
		return
	}
	httpx.NoContent(w)
}

func answerPath(w http.ResponseWriter, r *http.Request) (questionID, answerID int64, ok bool) {
	if questionID, ok = pathID(w, r, "questionId"); !ok {
		return
	}
	answerID, ok = pathID(w, r, "answerId")
	return
}
