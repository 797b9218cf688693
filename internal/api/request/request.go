package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username       string `json:"username"`
	CharacterClass string `json:"character_class"`
	RoomName       string `json:"room_name"`
}

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	Password string `json:"password"`
}

// ConfigureRoomRequest is the request body for reconfiguring a room.
// Absent fields are left unchanged; an empty password clears the password.
type ConfigureRoomRequest struct {
	Password   *string `json:"password,omitempty"`
	MaxPlayers *uint32 `json:"max_players,omitempty"`
}

// Vector3 is a 3-vector in request bodies
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// InputState is the client input snapshot in request bodies
type InputState struct {
	Forward   bool   `json:"forward"`
	Backward  bool   `json:"backward"`
	Left      bool   `json:"left"`
	Right     bool   `json:"right"`
	Sprint    bool   `json:"sprint"`
	Jump      bool   `json:"jump"`
	Attack    bool   `json:"attack"`
	CastSpell bool   `json:"cast_spell"`
	Sequence  uint32 `json:"sequence"`
}

// UpdateInputRequest is the request body for submitting player input
type UpdateInputRequest struct {
	Input     InputState `json:"input"`
	Rotation  Vector3    `json:"rotation"`
	Animation string     `json:"animation"`
}

// SubmitVoteRequest is the request body for submitting a vote
type SubmitVoteRequest struct {
	Vote string `json:"vote"`
}
