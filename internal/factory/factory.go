package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/clock"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/random"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/input"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/session"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/simulation"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/vote"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage/memory"
	redisstorage "github.com/maxgeorg99/vibe-multiplayer-server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Registry   *registry.Service
	Sessions   *session.Service
	Input      *input.Service
	Simulation *simulation.Service
	Votes      *vote.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RegistryConfig holds room defaults (optional)
	// If zero value, defaults to registry.DefaultConfig()
	RegistryConfig registry.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	regCfg := cfg.RegistryConfig
	if regCfg.DefaultMaxPlayers == 0 {
		regCfg = registry.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), random.New(), regCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, regCfg registry.Config, logger *slog.Logger) *App {
	reg := registry.New(store, clk, regCfg, logger)
	sessions := session.New(store, reg, clk, logger)
	inputService := input.New(store, logger)
	sim := simulation.New(store, logger)
	votes := vote.New(store, logger)

	return &App{
		Storage:    store,
		Clock:      clk,
		Random:     rnd,
		Registry:   reg,
		Sessions:   sessions,
		Input:      inputService,
		Simulation: sim,
		Votes:      votes,
	}
}
