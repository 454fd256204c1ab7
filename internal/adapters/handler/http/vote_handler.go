package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hermanngumbu/alx-polly/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	OptionIndex int `json:"option_index"`
}

func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	principal := principalFromContext(r.Context())
	err := h.service.Vote(r.Context(), principal, ports.VoteInput{
		PollID:      chi.URLParam(r, "id"),
		OptionIndex: req.OptionIndex,
	})
	if err != nil {
		serviceError(w, err, "Failed to submit vote.")
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{Status: "ok", Invalidate: []string{"polls", "results"}})
}

func (h *VoteHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())
	results, err := h.service.Results(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err, "Failed to retrieve results.")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
