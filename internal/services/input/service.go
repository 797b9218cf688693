package input

import (
	"context"
	"errors"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Service reconciles client input snapshots against the server-held
// player row.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new input reconciler
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// ApplyInput applies a client's latest input snapshot to its player row.
//
// Input for an inactive identity is dropped with a log line rather than an
// error: late packets after disconnect are expected. Snapshots whose
// sequence is not strictly greater than the last accepted one are dropped
// so out-of-order packets cannot revert state. Rotation and animation come
// straight from the client; the server trusts client orientation.
func (s *Service) ApplyInput(ctx context.Context, id model.Identity, in model.InputState, rotation model.Vector3, animation string) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			s.logger.Warn("input from inactive player", slog.String("identity", string(id)))
			return nil
		}
		return err
	}

	if in.Sequence <= player.LastInputSeq {
		s.logger.Debug("dropping stale input",
			slog.String("identity", string(id)),
			slog.Uint64("sequence", uint64(in.Sequence)),
			slog.Uint64("last_seq", uint64(player.LastInputSeq)),
		)
		return nil
	}

	player.Input = in
	player.IsMoving = in.Forward || in.Backward || in.Left || in.Right
	player.IsRunning = player.IsMoving && in.Sprint
	player.IsAttacking = in.Attack
	player.IsCasting = in.CastSpell
	player.Rotation = rotation
	player.CurrentAnimation = animation
	player.LastInputSeq = in.Sequence

	return s.storage.SavePlayer(ctx, player)
}
