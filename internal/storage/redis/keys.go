package redis

import (
	"fmt"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

// Key prefix for all session-related data
const keyPrefix = "vibemp"

// Key generation functions for each entity type

// playerKey returns the Redis key for an active Player row
func playerKey(id model.Identity) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// roomKey returns the Redis key for a Room row
func roomKey(name model.RoomName) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, name)
}

// disconnectedPlayerKey returns the Redis key for a DisconnectedPlayer row
func disconnectedPlayerKey(id model.Identity) string {
	return fmt.Sprintf("%s:logged_out:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all active player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// roomPlayersIndexKey returns the Redis key for the SET of player keys in a room
func roomPlayersIndexKey(name model.RoomName) string {
	return fmt.Sprintf("%s:idx:room_players:%s", keyPrefix, name)
}
