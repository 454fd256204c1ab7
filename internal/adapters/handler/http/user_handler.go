package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hermanngumbu/alx-polly/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := principalFromContext(r.Context())
	if userID == uuid.Nil {
		errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch user.")
		return
	}
	if user == nil {
		errorJSON(w, http.StatusNotFound, "User not found.")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
