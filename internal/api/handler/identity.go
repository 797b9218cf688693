package handler

import (
	"net/http"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/random"
)

const (
	// IdentityLength is the length of issued identity tokens
	IdentityLength = 26
	// IdentityAlphabet is the characters used in identity tokens
	IdentityAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// IdentityHandler issues opaque caller identities. In a full deployment
// the hosting runtime assigns identities during the connection handshake;
// this endpoint stands in for that contract.
type IdentityHandler struct {
	random random.Random
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(rnd random.Random) *IdentityHandler {
	return &IdentityHandler{random: rnd}
}

// Create handles POST /api/v1/identity
func (h *IdentityHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.random.String(IdentityLength, IdentityAlphabet)
	response.JSON(w, http.StatusCreated, response.IdentityResponse{Identity: id})
}
