package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serviceError maps a core error to a status and a fixed user-safe message.
// Anything outside the closed set gets the generic fallback; err.Error() is
// never echoed for internal failures.
func serviceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
	case errors.Is(err, domain.ErrInvalidQuestion):
		errorJSON(w, http.StatusBadRequest, "Poll question must be between 1 and 255 characters.")
	case errors.Is(err, domain.ErrInsufficientOptions):
		errorJSON(w, http.StatusBadRequest, "Please provide at least two options.")
	case errors.Is(err, domain.ErrInvalidOptionText):
		errorJSON(w, http.StatusBadRequest, "Each option must be between 1 and 100 characters.")
	case errors.Is(err, domain.ErrInvalidPollID):
		errorJSON(w, http.StatusBadRequest, "Invalid poll id.")
	case errors.Is(err, domain.ErrPollNotFound):
		errorJSON(w, http.StatusNotFound, "Poll not found or an error occurred.")
	case errors.Is(err, domain.ErrInvalidOption):
		errorJSON(w, http.StatusBadRequest, "Invalid option selected.")
	case errors.Is(err, domain.ErrAlreadyVoted):
		errorJSON(w, http.StatusConflict, "You have already voted on this poll.")
	default:
		errorJSON(w, http.StatusInternalServerError, fallback)
	}
}
