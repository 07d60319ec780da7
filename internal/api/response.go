package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"vocabook/internal/domain"
	"vocabook/internal/middleware"

	"go.uber.org/zap"
)

const saveFailedMessage = "failed to save data"

type messageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Persisted *bool  `json:"persisted,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: false, Message: message})
}

// handleError maps service errors to status codes
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyVocabulary),
		errors.Is(err, domain.ErrNoMatch),
		errors.Is(err, domain.ErrMissingIndex),
		errors.Is(err, domain.ErrInvalidAnswer),
		errors.Is(err, domain.ErrEmptyAnswer):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPersistence):
		h.logger.Error("Failed to persist vocabulary",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		persisted := false
		writeJSON(w, http.StatusInternalServerError, messageResponse{
			Success:   false,
			Message:   saveFailedMessage,
			Persisted: &persisted,
		})
	default:
		h.logger.Error("Internal error",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a JSON object into dst; an empty or malformed body is an error
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
