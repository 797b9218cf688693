package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/middleware"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/request"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/response"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	registry *registry.Service
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(reg *registry.Service) *RoomHandler {
	return &RoomHandler{registry: reg}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	if err := h.registry.CreateRoom(r.Context(), id, model.RoomName(req.Name)); err != nil {
		WriteError(w, err)
		return
	}

	room, err := h.registry.GetRoom(r.Context(), model.RoomName(req.Name))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.RoomFromModel(room))
}

// List handles GET /api/v1/rooms
// The full room list is visible to everyone for lobby browsing.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.registry.ListRooms(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoomsFromModel(rooms))
}

// Join handles POST /api/v1/rooms/{name}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())
	name := model.RoomName(mux.Vars(r)["name"])

	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for open rooms
		req = request.JoinRoomRequest{}
	}

	if err := h.registry.JoinRoom(r.Context(), id, name, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	room, err := h.registry.GetRoom(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Leave handles POST /api/v1/rooms/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())

	if err := h.registry.LeaveRoom(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Configure handles PATCH /api/v1/rooms/{name}/config
func (h *RoomHandler) Configure(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetIdentity(r.Context())
	name := model.RoomName(mux.Vars(r)["name"])

	var req request.ConfigureRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.registry.ConfigureRoom(r.Context(), id, name, req.Password, req.MaxPlayers); err != nil {
		WriteError(w, err)
		return
	}

	room, err := h.registry.GetRoom(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}
