package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/clock"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Service manages the player connect/register/disconnect/rejoin lifecycle,
// bridging active Player rows and durable DisconnectedPlayer rows.
type Service struct {
	storage  storage.Storage
	registry *registry.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new session manager
func New(store storage.Storage, reg *registry.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:  store,
		registry: reg,
		clock:    clk,
		logger:   logger,
	}
}

// OnConnect records a client connection. Registration is a separate
// explicit call; clients may reconnect without immediately rejoining.
func (s *Service) OnConnect(ctx context.Context, id model.Identity) {
	s.logger.Info("client connected", slog.String("identity", string(id)))
}

// Register makes the identity an active player in the given room.
//
// Already-active players are moved in place (membership accounting and
// vote reset only). A disconnected record is promoted back to an active
// player, preserving username, class and rotation. Otherwise a fresh
// player is spawned. The target room is created with default settings if
// absent, with the caller as owner.
func (s *Service) Register(ctx context.Context, id model.Identity, username, characterClass string, roomName model.RoomName) error {
	if _, err := s.registry.EnsureRoom(ctx, id, roomName); err != nil {
		return err
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err == nil {
		if player.RoomName != roomName {
			if err := s.registry.Depart(ctx, player.RoomName, id); err != nil {
				return err
			}
			if err := s.registry.Enter(ctx, roomName); err != nil {
				return err
			}
			player.RoomName = roomName
		}
		player.HasVoted = false
		player.CurrentVote = ""
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
		s.logger.Info("player moved to room",
			slog.String("identity", string(id)),
			slog.String("room", string(roomName)),
		)
		return nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	count, err := s.storage.CountPlayers(ctx)
	if err != nil {
		return err
	}
	newPlayer := spawnPlayer(id, username, characterClass, roomName, count)

	dp, err := s.storage.GetDisconnectedPlayer(ctx, id)
	switch {
	case err == nil:
		// Rejoin: keep the resumable subset from the logged-out record
		newPlayer.Username = dp.Username
		newPlayer.CharacterClass = dp.CharacterClass
		newPlayer.Rotation = dp.Rotation
		if err := s.storage.DeleteDisconnectedPlayer(ctx, id); err != nil {
			return err
		}
		s.logger.Info("player rejoining",
			slog.String("identity", string(id)),
			slog.String("room", string(roomName)),
		)
	case errors.Is(err, model.ErrPlayerNotFound):
		s.logger.Info("registering new player",
			slog.String("identity", string(id)),
			slog.String("username", username),
			slog.String("room", string(roomName)),
		)
	default:
		return err
	}

	if err := s.registry.Enter(ctx, roomName); err != nil {
		return err
	}
	return s.storage.SavePlayer(ctx, newPlayer)
}

// OnDisconnect moves an active player to the disconnected table, releasing
// its room slot. Repeated disconnects only refresh the last-seen stamp.
func (s *Service) OnDisconnect(ctx context.Context, id model.Identity) error {
	now := s.clock.Now()

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}
		dp, err := s.storage.GetDisconnectedPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				s.logger.Warn("disconnect for unknown identity", slog.String("identity", string(id)))
				return nil
			}
			return err
		}
		dp.LastSeen = now
		s.logger.Warn("repeated disconnect, refreshing last seen", slog.String("identity", string(id)))
		return s.storage.SaveDisconnectedPlayer(ctx, dp)
	}

	if err := s.registry.Depart(ctx, player.RoomName, id); err != nil {
		return err
	}

	dp := &model.DisconnectedPlayer{
		Identity:       player.Identity,
		Username:       player.Username,
		CharacterClass: player.CharacterClass,
		Position:       player.Position,
		Rotation:       player.Rotation,
		LastSeen:       now,
	}
	if err := s.storage.SaveDisconnectedPlayer(ctx, dp); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("client disconnected", slog.String("identity", string(id)))
	return nil
}

// spawnPlayer builds a fresh active player. Color and spawn position are
// deterministic functions of the active player count so simultaneous
// registrations in one transaction cannot collide trivially.
func spawnPlayer(id model.Identity, username, characterClass string, roomName model.RoomName, activeCount int) *model.Player {
	return &model.Player{
		Identity:         id,
		Username:         username,
		CharacterClass:   characterClass,
		Position:         model.Vector3{X: float64(activeCount)*5.0 - 2.5, Y: 1.0, Z: 0},
		Rotation:         model.Vector3{},
		CurrentAnimation: model.AnimationIdle,
		Color:            model.Palette[activeCount%len(model.Palette)],
		RoomName:         roomName,
	}
}
