package simulation

import (
	"context"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Movement tuning. Delta-time is the nominal tick interval, not measured
// wall-clock drift; this is a fixed-step integrator, not a physical one.
const (
	walkSpeed     = 5.0 // world units per second
	runMultiplier = 2.0
)

// Service advances all active players' derived state once per tick.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new simulation service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// Tick advances every active player by delta seconds of movement. A
// failure on one row is logged and does not abort updates to the others.
func (s *Service) Tick(ctx context.Context, delta float64) error {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}

	for _, player := range players {
		if !player.IsMoving {
			continue
		}
		advance(player, delta)
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			s.logger.Error("tick update failed",
				slog.String("identity", string(player.Identity)),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Debug("game tick completed", slog.Int("players", len(players)))
	return nil
}

// advance integrates the player's movement flags over delta seconds.
// Axis-aligned: forward is -Z, right is +X.
func advance(p *model.Player, delta float64) {
	speed := walkSpeed
	if p.IsRunning {
		speed *= runMultiplier
	}
	step := speed * delta

	if p.Input.Forward {
		p.Position.Z -= step
	}
	if p.Input.Backward {
		p.Position.Z += step
	}
	if p.Input.Left {
		p.Position.X -= step
	}
	if p.Input.Right {
		p.Position.X += step
	}
}
