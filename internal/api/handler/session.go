package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/middleware"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/request"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/session"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// SessionHandler handles connection lifecycle and registration endpoints
type SessionHandler struct {
	sessions *session.Service
	storage  storage.Storage
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Service, store storage.Storage) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		storage:  store,
	}
}

// Connect handles POST /api/v1/session/connect
func (h *SessionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())
	h.sessions.OnConnect(r.Context(), id)
	response.NoContent(w)
}

// Disconnect handles POST /api/v1/session/disconnect
func (h *SessionHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	// Lifecycle failures are not surfaced to the caller; only storage
	// breakage produces an error here
	if err := h.sessions.OnDisconnect(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Register handles POST /api/v1/players/register
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Username == "" || req.RoomName == "" {
		WriteError(w, NewInvalidRequestError("username and room_name are required"))
		return
	}

	if err := h.sessions.Register(r.Context(), id, req.Username, req.CharacterClass, model.RoomName(req.RoomName)); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.storage.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}
