package model

import "time"

// RoomName is the unique key for a room.
type RoomName string

// Room groups players into a shared session. CurrentPlayerCount is
// maintained by the room registry and always equals the number of active
// players whose RoomName matches after a committed operation.
type Room struct {
	Name               RoomName
	Password           string // empty means open; compared by plaintext equality
	MaxPlayers         uint32
	CurrentPlayerCount uint32
	CreatedAt          time.Time
	OwnerIdentity      Identity
}

// HasPassword reports whether joining requires a password.
func (r *Room) HasPassword() bool {
	return r.Password != ""
}

// IsFull reports whether the room is at capacity.
func (r *Room) IsFull() bool {
	return r.CurrentPlayerCount >= r.MaxPlayers
}
