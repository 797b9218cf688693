package registry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/clock"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Config holds room registry settings
type Config struct {
	// DefaultMaxPlayers is the capacity assigned to new rooms
	DefaultMaxPlayers uint32
}

// DefaultConfig returns the default registry configuration
func DefaultConfig() Config {
	return Config{
		DefaultMaxPlayers: 10,
	}
}

// Service manages room lifecycle: creation, membership counting,
// capacity and password enforcement, and destruction when emptied.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new room registry
func New(store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		cfg:     cfg,
		logger:  logger,
	}
}

// CreateRoom creates an empty room owned by the caller.
// Fails with ErrRoomAlreadyExists if the name is taken.
func (s *Service) CreateRoom(ctx context.Context, caller model.Identity, name model.RoomName) error {
	exists, err := s.storage.RoomExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrRoomAlreadyExists
	}

	room := &model.Room{
		Name:               name,
		MaxPlayers:         s.cfg.DefaultMaxPlayers,
		CurrentPlayerCount: 0,
		CreatedAt:          s.clock.Now(),
		OwnerIdentity:      caller,
	}
	return s.storage.SaveRoom(ctx, room)
}

// EnsureRoom returns the named room, creating it with default settings
// (caller as owner) if it does not exist. Used by the register flow where
// targeting a missing room implicitly creates it.
func (s *Service) EnsureRoom(ctx context.Context, caller model.Identity, name model.RoomName) (*model.Room, error) {
	room, err := s.storage.GetRoom(ctx, name)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, model.ErrRoomNotFound) {
		return nil, err
	}

	room = &model.Room{
		Name:               name,
		MaxPlayers:         s.cfg.DefaultMaxPlayers,
		CurrentPlayerCount: 0,
		CreatedAt:          s.clock.Now(),
		OwnerIdentity:      caller,
	}
	if err := s.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	s.logger.Info("created room", slog.String("room", string(name)), slog.String("owner", string(caller)))
	return room, nil
}

// JoinRoom moves the caller's active player into the room, enforcing
// password and capacity. The caller must already be registered.
func (s *Service) JoinRoom(ctx context.Context, caller model.Identity, name model.RoomName, password string) error {
	room, err := s.storage.GetRoom(ctx, name)
	if err != nil {
		return err
	}
	if room.HasPassword() && room.Password != password {
		return model.ErrWrongPassword
	}
	if room.IsFull() {
		return model.ErrRoomFull
	}

	player, err := s.storage.GetPlayer(ctx, caller)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return model.ErrPlayerNotRegistered
		}
		return err
	}

	// Joining the room the player is already in only resets vote state
	if player.RoomName != name {
		if err := s.Depart(ctx, player.RoomName, caller); err != nil {
			return err
		}
		// Re-read before mutating, Depart wrote room rows in between
		room, err = s.storage.GetRoom(ctx, name)
		if err != nil {
			return err
		}
		room.CurrentPlayerCount++
		if err := s.storage.SaveRoom(ctx, room); err != nil {
			return err
		}
		player.RoomName = name
	}

	player.HasVoted = false
	player.CurrentVote = ""
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("player joined room",
		slog.String("identity", string(caller)),
		slog.String("room", string(name)),
	)
	return nil
}

// Enter reserves a membership slot in the room without capacity or
// password checks. The register flow uses this deliberately: targeting a
// room by registration bypasses join enforcement.
func (s *Service) Enter(ctx context.Context, name model.RoomName) error {
	room, err := s.storage.GetRoom(ctx, name)
	if err != nil {
		return err
	}
	room.CurrentPlayerCount++
	return s.storage.SaveRoom(ctx, room)
}

// Depart releases the leaver's membership slot. An emptied room is
// destroyed unless the leaver owns it; owner-held empty rooms persist.
func (s *Service) Depart(ctx context.Context, name model.RoomName, leaver model.Identity) error {
	room, err := s.storage.GetRoom(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			return nil
		}
		return err
	}

	if room.CurrentPlayerCount > 0 {
		room.CurrentPlayerCount--
	}
	if err := s.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	if room.CurrentPlayerCount == 0 && room.OwnerIdentity != leaver {
		if err := s.storage.DeleteRoom(ctx, name); err != nil {
			return err
		}
		s.logger.Info("deleted empty room", slog.String("room", string(name)))
	}
	return nil
}

// LeaveRoom removes the caller's active player from the game, releasing
// its room slot and snapshotting the player for later rejoin.
func (s *Service) LeaveRoom(ctx context.Context, caller model.Identity) error {
	player, err := s.storage.GetPlayer(ctx, caller)
	if err != nil {
		return err
	}

	if err := s.Depart(ctx, player.RoomName, caller); err != nil {
		return err
	}

	dp := &model.DisconnectedPlayer{
		Identity:       player.Identity,
		Username:       player.Username,
		CharacterClass: player.CharacterClass,
		Position:       player.Position,
		Rotation:       player.Rotation,
		LastSeen:       s.clock.Now(),
	}
	if err := s.storage.SaveDisconnectedPlayer(ctx, dp); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, caller); err != nil {
		return err
	}

	s.logger.Info("player left room",
		slog.String("identity", string(caller)),
		slog.String("room", string(player.RoomName)),
	)
	return nil
}

// ConfigureRoom updates a room's password and capacity. Only the owner may
// call it; an empty password clears the password, and capacity can never
// drop below current occupancy.
func (s *Service) ConfigureRoom(ctx context.Context, caller model.Identity, name model.RoomName, newPassword *string, newMaxPlayers *uint32) error {
	room, err := s.storage.GetRoom(ctx, name)
	if err != nil {
		return err
	}
	if room.OwnerIdentity != caller {
		return model.ErrNotOwner
	}

	if newPassword != nil {
		room.Password = *newPassword
	}
	if newMaxPlayers != nil {
		if *newMaxPlayers < room.CurrentPlayerCount {
			return model.ErrCapacityBelowOccupancy
		}
		room.MaxPlayers = *newMaxPlayers
	}

	return s.storage.SaveRoom(ctx, room)
}

// GetRoom retrieves a room by name
func (s *Service) GetRoom(ctx context.Context, name model.RoomName) (*model.Room, error) {
	return s.storage.GetRoom(ctx, name)
}

// ListRooms returns every room, for lobby browsing
func (s *Service) ListRooms(ctx context.Context) ([]*model.Room, error) {
	return s.storage.ListRooms(ctx)
}
