package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/middleware"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/request"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/vote"
)

// VoteHandler handles vote endpoints
type VoteHandler struct {
	votes *vote.Service
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votes *vote.Service) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Submit handles POST /api/v1/votes
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	var req request.SubmitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.votes.SubmitVote(r.Context(), id, req.Vote); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Reset handles POST /api/v1/votes/reset
// Any caller may start a new round; there is no ownership check.
func (h *VoteHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.votes.ResetVotes(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
