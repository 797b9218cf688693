package response

import (
	"time"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

// IdentityResponse is the response for identity issuance
type IdentityResponse struct {
	Identity string `json:"identity"`
}

// Vector3 is a 3-vector in API responses
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector3FromModel converts a model.Vector3
func Vector3FromModel(v model.Vector3) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Room represents a room in API responses
type Room struct {
	Name               string    `json:"name"`
	HasPassword        bool      `json:"has_password"`
	MaxPlayers         uint32    `json:"max_players"`
	CurrentPlayerCount uint32    `json:"current_player_count"`
	CreatedAt          time.Time `json:"created_at"`
	OwnerIdentity      string    `json:"owner_identity"`
}

// RoomFromModel converts a model.Room to a response Room.
// The password itself is never echoed, only whether one is set.
func RoomFromModel(r *model.Room) Room {
	return Room{
		Name:               string(r.Name),
		HasPassword:        r.HasPassword(),
		MaxPlayers:         r.MaxPlayers,
		CurrentPlayerCount: r.CurrentPlayerCount,
		CreatedAt:          r.CreatedAt,
		OwnerIdentity:      string(r.OwnerIdentity),
	}
}

// RoomsFromModel converts a slice of rooms
func RoomsFromModel(rooms []*model.Room) []Room {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = RoomFromModel(r)
	}
	return out
}

// Player represents a player in API responses
type Player struct {
	Identity         string  `json:"identity"`
	Username         string  `json:"username"`
	CharacterClass   string  `json:"character_class"`
	Position         Vector3 `json:"position"`
	Rotation         Vector3 `json:"rotation"`
	CurrentAnimation string  `json:"current_animation"`
	IsMoving         bool    `json:"is_moving"`
	IsRunning        bool    `json:"is_running"`
	IsAttacking      bool    `json:"is_attacking"`
	IsCasting        bool    `json:"is_casting"`
	Color            string  `json:"color"`
	HasVoted         bool    `json:"has_voted"`
	CurrentVote      string  `json:"current_vote,omitempty"`
	RoomName         string  `json:"room_name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Identity:         string(p.Identity),
		Username:         p.Username,
		CharacterClass:   p.CharacterClass,
		Position:         Vector3FromModel(p.Position),
		Rotation:         Vector3FromModel(p.Rotation),
		CurrentAnimation: p.CurrentAnimation,
		IsMoving:         p.IsMoving,
		IsRunning:        p.IsRunning,
		IsAttacking:      p.IsAttacking,
		IsCasting:        p.IsCasting,
		Color:            p.Color,
		HasVoted:         p.HasVoted,
		CurrentVote:      p.CurrentVote,
		RoomName:         string(p.RoomName),
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}
