package storage

import (
	"context"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.Identity) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.Identity) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	GetPlayersInRoom(ctx context.Context, room model.RoomName) ([]*model.Player, error)
	CountPlayers(ctx context.Context) (int, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, name model.RoomName) (*model.Room, error)
	DeleteRoom(ctx context.Context, name model.RoomName) error
	RoomExists(ctx context.Context, name model.RoomName) (bool, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)

	// Disconnected player operations
	SaveDisconnectedPlayer(ctx context.Context, dp *model.DisconnectedPlayer) error
	GetDisconnectedPlayer(ctx context.Context, id model.Identity) (*model.DisconnectedPlayer, error)
	DeleteDisconnectedPlayer(ctx context.Context, id model.Identity) error
}
