package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
	"github.com/hermanngumbu/alx-polly/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type pollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// mutationResponse tells the client which listings a successful mutation
// invalidated, so it can refetch instead of reloading the page.
type mutationResponse struct {
	Status     string   `json:"status"`
	Invalidate []string `json:"invalidate"`
}

// createPollResponse is the created poll plus the same refetch hint the other
// mutations carry.
type createPollResponse struct {
	*domain.Poll
	Invalidate []string `json:"invalidate"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal := principalFromContext(r.Context())
	poll, err := h.service.Create(r.Context(), principal, ports.CreatePollInput{
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		serviceError(w, err, "Failed to create poll.")
		return
	}

	writeJSON(w, http.StatusCreated, createPollResponse{Poll: poll, Invalidate: []string{"polls"}})
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())
	poll, err := h.service.GetByID(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err, "Failed to retrieve poll.")
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) ListMyPolls(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())
	polls, err := h.service.ListMine(r.Context(), principal)
	if err != nil {
		serviceError(w, err, "Failed to retrieve polls.")
		return
	}
	if polls == nil {
		polls = []*domain.Poll{} // an empty list must encode as [], not null
	}

	writeJSON(w, http.StatusOK, polls)
}

func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal := principalFromContext(r.Context())
	err := h.service.Update(r.Context(), principal, chi.URLParam(r, "id"), ports.UpdatePollInput{
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		serviceError(w, err, "Failed to update poll.")
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{Status: "ok", Invalidate: []string{"polls"}})
}

func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())
	if err := h.service.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		serviceError(w, err, "Failed to delete poll.")
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{Status: "ok", Invalidate: []string{"polls"}})
}
