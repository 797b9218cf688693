package vote

import (
	"context"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Service aggregates per-room enumerated votes layered on player rows.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new vote aggregator
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// SubmitVote records a vote for the caller's active player.
func (s *Service) SubmitVote(ctx context.Context, id model.Identity, vote string) error {
	if !model.IsValidVote(vote) {
		return model.ErrInvalidVote
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.CurrentVote = vote
	player.HasVoted = true
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("vote submitted",
		slog.String("identity", string(id)),
		slog.String("vote", vote),
	)
	return nil
}

// ResetVotes clears vote state for every active player, starting a new
// round. Any caller may reset; there is no ownership check.
func (s *Service) ResetVotes(ctx context.Context) error {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}

	for _, player := range players {
		player.CurrentVote = ""
		player.HasVoted = false
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
	}

	s.logger.Info("votes reset", slog.Int("players", len(players)))
	return nil
}
