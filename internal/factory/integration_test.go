package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

// IntegrationSuite exercises the full service stack together, the way a
// session flows in production: register, move, vote, disconnect, rejoin.
type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TestFullSessionLifecycle() {
	// Two players join the same room
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-2", "bob", "mage", "lobby"))

	room, err := s.app.Registry.GetRoom(s.ctx, "lobby")
	s.Require().NoError(err)
	s.Equal(uint32(2), room.CurrentPlayerCount)

	// Alice starts moving and the simulation advances her
	s.Require().NoError(s.app.Input.ApplyInput(s.ctx, "id-1",
		model.InputState{Forward: true, Sequence: 1}, model.Vector3{}, "walking"))
	s.Require().NoError(s.app.Simulation.Tick(s.ctx, 1.0))

	alice, _ := s.app.Storage.GetPlayer(s.ctx, "id-1")
	s.InDelta(-5.0, alice.Position.Z, 1e-9)

	// Bob stays still
	bob, _ := s.app.Storage.GetPlayer(s.ctx, "id-2")
	s.InDelta(0.0, bob.Position.Z, 1e-9)

	// Both vote, then a reset wipes the round
	s.Require().NoError(s.app.Votes.SubmitVote(s.ctx, "id-1", model.VoteM))
	s.Require().NoError(s.app.Votes.SubmitVote(s.ctx, "id-2", model.VoteL))
	s.Require().NoError(s.app.Votes.ResetVotes(s.ctx))

	alice, _ = s.app.Storage.GetPlayer(s.ctx, "id-1")
	s.False(alice.HasVoted)

	// Alice disconnects and her slot is released
	s.Require().NoError(s.app.Sessions.OnDisconnect(s.ctx, "id-1"))
	room, _ = s.app.Registry.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(1), room.CurrentPlayerCount)

	// She rejoins later with her character intact
	s.app.MockClock.Advance(10 * time.Minute)
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-1", "ignored", "ignored", "lobby"))

	alice, err = s.app.Storage.GetPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal("alice", alice.Username)
	s.Equal("warrior", alice.CharacterClass)

	room, _ = s.app.Registry.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(2), room.CurrentPlayerCount)
}

func (s *IntegrationSuite) TestRoomSwitchFlow() {
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-2", "bob", "mage", "lobby"))

	// Bob creates a private room and moves into it
	s.Require().NoError(s.app.Registry.CreateRoom(s.ctx, "id-2", "hideout"))
	pw := "secret"
	s.Require().NoError(s.app.Registry.ConfigureRoom(s.ctx, "id-2", "hideout", &pw, nil))
	s.Require().NoError(s.app.Registry.JoinRoom(s.ctx, "id-2", "hideout", "secret"))

	// Alice cannot follow without the password
	err := s.app.Registry.JoinRoom(s.ctx, "id-1", "hideout", "nope")
	s.Require().ErrorIs(err, model.ErrWrongPassword)

	lobby, _ := s.app.Registry.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(1), lobby.CurrentPlayerCount)

	hideout, _ := s.app.Registry.GetRoom(s.ctx, "hideout")
	s.Equal(uint32(1), hideout.CurrentPlayerCount)

	// Bob leaves; his owner-held room survives empty
	s.Require().NoError(s.app.Registry.JoinRoom(s.ctx, "id-2", "lobby", ""))
	hideout, err = s.app.Registry.GetRoom(s.ctx, "hideout")
	s.Require().NoError(err)
	s.Equal(uint32(0), hideout.CurrentPlayerCount)
}

func (s *IntegrationSuite) TestLeaveRoomAndRejoin() {
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))

	s.Require().NoError(s.app.Registry.LeaveRoom(s.ctx, "id-1"))

	// Active player gone, snapshot retained
	_, err := s.app.Storage.GetPlayer(s.ctx, "id-1")
	s.Require().ErrorIs(err, model.ErrPlayerNotFound)

	dp, err := s.app.Storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal("alice", dp.Username)

	// Room emptied by its owner persists
	room, err := s.app.Registry.GetRoom(s.ctx, "lobby")
	s.Require().NoError(err)
	s.Equal(uint32(0), room.CurrentPlayerCount)

	// Rejoin restores the character
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "id-1", "x", "y", "lobby"))
	alice, _ := s.app.Storage.GetPlayer(s.ctx, "id-1")
	s.Equal("alice", alice.Username)
	s.Equal("warrior", alice.CharacterClass)
}

func (s *IntegrationSuite) TestNewFactoryDefaultsToMemoryStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.Registry)
	s.NotNil(app.Simulation)
}

func (s *IntegrationSuite) TestNewFactoryRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "carrier-pigeon"})
	s.Require().Error(err)
}

func (s *IntegrationSuite) TestNewFactoryRequiresRedisConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Require().Error(err)
}
