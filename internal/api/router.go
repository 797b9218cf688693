package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/handler"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/middleware"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/random"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/input"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/session"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/vote"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Random   random.Random
	Storage  storage.Storage
	Registry *registry.Service
	Sessions *session.Service
	Input    *input.Service
	Votes    *vote.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	identityHandler := handler.NewIdentityHandler(cfg.Random)
	sessionHandler := handler.NewSessionHandler(cfg.Sessions, cfg.Storage)
	roomHandler := handler.NewRoomHandler(cfg.Registry)
	playerHandler := handler.NewPlayerHandler(cfg.Input, cfg.Storage)
	voteHandler := handler.NewVoteHandler(cfg.Votes)

	// Create middleware
	identityMiddleware := middleware.Identity()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Identity issuance (no identity required, this mints one)
	api.HandleFunc("/identity", identityHandler.Create).Methods(http.MethodPost)

	// Health check endpoint (no identity)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Everything else carries a caller identity
	authed := api.NewRoute().Subrouter()
	authed.Use(identityMiddleware)

	// Session lifecycle
	authed.HandleFunc("/session/connect", sessionHandler.Connect).Methods(http.MethodPost)
	authed.HandleFunc("/session/disconnect", sessionHandler.Disconnect).Methods(http.MethodPost)

	// Player routes
	authed.HandleFunc("/players/register", sessionHandler.Register).Methods(http.MethodPost)
	authed.HandleFunc("/players/me", playerHandler.GetMe).Methods(http.MethodGet)
	authed.HandleFunc("/players/me/input", playerHandler.UpdateInput).Methods(http.MethodPut)
	authed.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)

	// Room routes
	authed.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rooms", roomHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/leave", roomHandler.Leave).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{name}/join", roomHandler.Join).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{name}/config", roomHandler.Configure).Methods(http.MethodPatch)

	// Vote routes
	authed.HandleFunc("/votes", voteHandler.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/votes/reset", voteHandler.Reset).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
