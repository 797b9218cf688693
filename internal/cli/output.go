package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case IdentityResult:
		o.printIdentityResult(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Room:
		o.printRoom(v)
	case []Room:
		o.printRooms(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// IdentityResult response type (matches API)
type IdentityResult struct {
	Identity string `json:"identity"`
}

// Vector3 response type
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Player response type
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

// Room response type
type Room struct {
	Name               string    `json:"name"`
	HasPassword        bool      `json:"has_password"`
	MaxPlayers         uint32    `json:"max_players"`
	CurrentPlayerCount uint32    `json:"current_player_count"`
	CreatedAt          time.Time `json:"created_at"`
	OwnerIdentity      string    `json:"owner_identity"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printIdentityResult(i IdentityResult) {
	fmt.Printf("Identity: %s\n", i.Identity)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.Identity)
	fmt.Printf("Class: %s\n", p.CharacterClass)
	fmt.Printf("Room: %s\n", p.RoomName)
	fmt.Printf("Position: (%.2f, %.2f, %.2f)\n", p.Position.X, p.Position.Y, p.Position.Z)
	fmt.Printf("Animation: %s\n", p.CurrentAnimation)
	fmt.Printf("Color: %s\n", p.Color)
	if p.HasVoted {
		fmt.Printf("Vote: %s\n", p.CurrentVote)
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		voteStr := ""
		if p.HasVoted {
			voteStr = fmt.Sprintf(" [voted %s]", p.CurrentVote)
		}
		fmt.Printf("  - %s (%s) in %s at (%.2f, %.2f, %.2f)%s\n",
			p.Username, p.Identity, p.RoomName, p.Position.X, p.Position.Y, p.Position.Z, voteStr)
	}
}

func (o *Output) printRoom(r Room) {
	passwordStr := "no"
	if r.HasPassword {
		passwordStr = "yes"
	}
	fmt.Printf("Room: %s\n", r.Name)
	fmt.Printf("Players: %d/%d\n", r.CurrentPlayerCount, r.MaxPlayers)
	fmt.Printf("Password: %s\n", passwordStr)
	fmt.Printf("Owner: %s\n", r.OwnerIdentity)
	fmt.Printf("Created: %s\n", r.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printRooms(rooms []Room) {
	fmt.Printf("Rooms (%d):\n", len(rooms))
	for _, r := range rooms {
		lockStr := ""
		if r.HasPassword {
			lockStr = " [locked]"
		}
		fmt.Printf("  - %s (%d/%d)%s\n", r.Name, r.CurrentPlayerCount, r.MaxPlayers, lockStr)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
