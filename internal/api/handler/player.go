package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/middleware"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/request"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/input"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// PlayerHandler handles player state endpoints
type PlayerHandler struct {
	input   *input.Service
	storage storage.Storage
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(in *input.Service, store storage.Storage) *PlayerHandler {
	return &PlayerHandler{
		input:   in,
		storage: store,
	}
}

// UpdateInput handles PUT /api/v1/players/me/input
// Always responds 204: stale and post-disconnect input is dropped
// silently, the client just retries with a fresher sequence.
func (h *PlayerHandler) UpdateInput(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	var req request.UpdateInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	in := model.InputState{
		Forward:   req.Input.Forward,
		Backward:  req.Input.Backward,
		Left:      req.Input.Left,
		Right:     req.Input.Right,
		Sprint:    req.Input.Sprint,
		Jump:      req.Input.Jump,
		Attack:    req.Input.Attack,
		CastSpell: req.Input.CastSpell,
		Sequence:  req.Input.Sequence,
	}
	rotation := model.Vector3{X: req.Rotation.X, Y: req.Rotation.Y, Z: req.Rotation.Z}

	if err := h.input.ApplyInput(r.Context(), id, in, rotation, req.Animation); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	player, err := h.storage.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
// Row visibility: a caller only observes players in its own room. Callers
// without an active player see an empty list.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	viewer, err := h.storage.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			response.JSON(w, http.StatusOK, []response.Player{})
			return
		}
		WriteError(w, err)
		return
	}

	players, err := h.storage.GetPlayersInRoom(r.Context(), viewer.RoomName)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}
