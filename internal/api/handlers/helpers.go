package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/qa-backend/internal/api/httpx"
	"github.com/baharkarakas/qa-backend/internal/api/validate"
	"github.com/baharkarakas/qa-backend/internal/logger"
	"github.com/baharkarakas/qa-backend/internal/middleware"
	"github.com/baharkarakas/qa-backend/internal/repository"
)

func writeFieldErrors(w http.ResponseWriter, status int, errs validate.Errs) {
	httpx.WriteJSON(w, status, validationResponse{Errors: errs})
}

// decodeAndValidate fills dst from the body and runs its validation tags.
// It writes the 400 response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst normalizer) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		writeFieldErrors(w, http.StatusBadRequest, validate.Errs{{Field: "body", Msg: err.Error()}})
		return false
	}
	dst.normalize()
	if errs := validate.Struct(dst); len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return false
	}
	return true
}

// pathID parses a numeric path parameter. The router already restricts it
// to digits; this only fails on overflow.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeFieldErrors(w, http.StatusBadRequest, validate.Errs{{Field: name, Msg: "the " + name + " must be an integer"}})
		return 0, false
	}
	return id, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Access Denied", nil)
	}
	return id, ok
}

// writeMutationErr maps create/update failures: unique violations are 409,
// dangling references 400, anything else 500.
func writeMutationErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		writeFieldErrors(w, http.StatusConflict, validate.Errs{{Field: dup.Field, Msg: "the " + dup.Field + " is already in use"}})
		return
	}
	var rel *repository.MissingRelationError
	if errors.As(err, &rel) {
		writeFieldErrors(w, http.StatusBadRequest, validate.Errs{{Field: rel.Field, Msg: "the " + rel.Field + " does not exist"}})
		return
	}
	internalError(w, r, op, err)
}

func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromContext(r.Context()).Error(op, "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
}

// writeList answers 204 for an empty list and 200 otherwise.
func writeList[T any](w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		httpx.NoContent(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// writeGetErr answers 404 with a plain-text message for misses.
func writeGetErr(w http.ResponseWriter, r *http.Request, notFoundMsg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		httpx.WriteText(w, http.StatusNotFound, notFoundMsg)
		return
	}
	internalError(w, r, notFoundMsg, err)
}

// writeDeleteErr collapses every delete failure, including a missing record,
// into 500 with a plain-text message.
func writeDeleteErr(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context()).Warn(msg, "err", err)
	httpx.WriteText(w, http.StatusInternalServerError, msg)
}
