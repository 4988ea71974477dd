package httputil

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AdamBeresnev/class-match/internal/apperr"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if err := WriteJSON(w, status, errorBody{Detail: msg}); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	writeError(w, http.StatusBadRequest, msg)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	writeError(w, http.StatusNotFound, msg)
}

func Conflict(w http.ResponseWriter, msg string, err error) {
	slog.Warn("conflict", "message", msg, "error", err)
	writeError(w, http.StatusConflict, msg)
}

// Error picks the response for an error returned by a service.
func Error(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(w, err.Error(), err)
	case errors.Is(err, apperr.ErrAlreadyExists), errors.Is(err, apperr.ErrUnresolved):
		Conflict(w, err.Error(), err)
	case errors.Is(err, apperr.ErrInvalidParticipant), errors.Is(err, apperr.ErrInvalidArgument):
		BadRequest(w, err.Error(), err)
	default:
		InternalServerError(w, msg, err)
	}
}
