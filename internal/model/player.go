package model

import "time"

// Identity is the stable opaque identifier the runtime assigns to a client.
// It is the primary key for both active and disconnected player records.
type Identity string

// Palette is the fixed set of colors handed out to players in registration
// order. Assignment is by active player count, not per room.
var Palette = []string{"cyan", "magenta", "yellow", "lightgreen", "white", "orange"}

// AnimationIdle is the animation tag every player spawns with.
const AnimationIdle = "idle"

// InputState is the client's latest input snapshot. It is not persisted on
// its own; it lives embedded in the Player row. Sequence is client-assigned
// and strictly increasing per connection.
type InputState struct {
	Forward   bool
	Backward  bool
	Left      bool
	Right     bool
	Sprint    bool
	Jump      bool
	Attack    bool
	CastSpell bool
	Sequence  uint32
}

// Player is the authoritative row for a connected identity. At most one
// Player exists per identity at any time.
type Player struct {
	Identity         Identity
	Username         string
	CharacterClass   string
	Position         Vector3
	Rotation         Vector3
	CurrentAnimation string
	IsMoving         bool
	IsRunning        bool
	IsAttacking      bool
	IsCasting        bool
	LastInputSeq     uint32
	Input            InputState
	Color            string
	HasVoted         bool
	CurrentVote      string
	RoomName         RoomName
}

// DisconnectedPlayer holds the resumable subset of a player that logged out.
// An identity is never present here and in Player at the same time.
type DisconnectedPlayer struct {
	Identity       Identity
	Username       string
	CharacterClass string
	Position       Vector3
	Rotation       Vector3
	LastSeen       time.Time
}
