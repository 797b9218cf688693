package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/mocks"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage/memory"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	registry *registry.Service
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()
	s.registry = registry.New(s.storage, s.clock, registry.DefaultConfig(), logger)
	s.service = New(s.storage, s.registry, s.clock, logger)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterCreatesPlayerAndRoom() {
	err := s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby")
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal("alice", player.Username)
	s.Equal("warrior", player.CharacterClass)
	s.Equal(model.RoomName("lobby"), player.RoomName)
	s.Equal("idle", player.CurrentAnimation)
	s.False(player.IsMoving)

	room, err := s.storage.GetRoom(s.ctx, "lobby")
	s.Require().NoError(err)
	s.Equal(uint32(1), room.CurrentPlayerCount)
	s.Equal(model.Identity("id-1"), room.OwnerIdentity)
}

func (s *ServiceSuite) TestRegisterSpawnPlacementAndColor() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.service.Register(s.ctx, "id-2", "bob", "mage", "lobby"))
	s.Require().NoError(s.service.Register(s.ctx, "id-3", "carol", "rogue", "lobby"))

	p1, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.Equal(model.Vector3{X: -2.5, Y: 1.0, Z: 0}, p1.Position)
	s.Equal("cyan", p1.Color)

	p2, _ := s.storage.GetPlayer(s.ctx, "id-2")
	s.Equal(model.Vector3{X: 2.5, Y: 1.0, Z: 0}, p2.Position)
	s.Equal("magenta", p2.Color)

	p3, _ := s.storage.GetPlayer(s.ctx, "id-3")
	s.Equal(model.Vector3{X: 7.5, Y: 1.0, Z: 0}, p3.Position)
	s.Equal("yellow", p3.Color)
}

func (s *ServiceSuite) TestRegisterColorPaletteWraps() {
	ids := []string{"id-1", "id-2", "id-3", "id-4", "id-5", "id-6", "id-7"}
	for i, id := range ids {
		s.Require().NoError(s.service.Register(s.ctx, model.Identity(id), "p", "warrior", "lobby"), "register %d", i)
	}

	p7, _ := s.storage.GetPlayer(s.ctx, "id-7")
	s.Equal("cyan", p7.Color)
}

func (s *ServiceSuite) TestRegisterIntoExistingRoomKeepsOwner() {
	s.Require().NoError(s.registry.CreateRoom(s.ctx, "owner-1", "arena"))

	err := s.service.Register(s.ctx, "id-1", "alice", "warrior", "arena")
	s.Require().NoError(err)

	room, _ := s.storage.GetRoom(s.ctx, "arena")
	s.Equal(model.Identity("owner-1"), room.OwnerIdentity)
	s.Equal(uint32(1), room.CurrentPlayerCount)
}

func (s *ServiceSuite) TestRegisterBypassesCapacityAndPassword() {
	s.Require().NoError(s.registry.CreateRoom(s.ctx, "owner-1", "arena"))
	pw := "secret"
	capacity := uint32(0)
	s.Require().NoError(s.registry.ConfigureRoom(s.ctx, "owner-1", "arena", &pw, &capacity))

	err := s.service.Register(s.ctx, "id-1", "alice", "warrior", "arena")
	s.Require().NoError(err)

	room, _ := s.storage.GetRoom(s.ctx, "arena")
	s.Equal(uint32(1), room.CurrentPlayerCount)
}

func (s *ServiceSuite) TestReRegisterSameRoomIsIdempotentOnCounts() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))

	room, _ := s.storage.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(1), room.CurrentPlayerCount)
}

func (s *ServiceSuite) TestReRegisterDifferentRoomMovesPlayer() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.service.Register(s.ctx, "id-2", "bob", "mage", "lobby"))

	err := s.service.Register(s.ctx, "id-1", "alice", "warrior", "arena")
	s.Require().NoError(err)

	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.Equal(model.RoomName("arena"), player.RoomName)

	lobby, _ := s.storage.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(1), lobby.CurrentPlayerCount)

	arena, _ := s.storage.GetRoom(s.ctx, "arena")
	s.Equal(uint32(1), arena.CurrentPlayerCount)
}

func (s *ServiceSuite) TestReRegisterResetsVoteState() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.HasVoted = true
	player.CurrentVote = model.VoteXL
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))

	updated, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.False(updated.HasVoted)
	s.Empty(updated.CurrentVote)
}

func (s *ServiceSuite) TestReRegisterPreservesPosition() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.Position = model.Vector3{X: 9, Y: 1, Z: -4}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "arena"))

	updated, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.Equal(model.Vector3{X: 9, Y: 1, Z: -4}, updated.Position)
}

// Disconnect tests

func (s *ServiceSuite) TestDisconnectSnapshotsPlayer() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))
	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.Position = model.Vector3{X: 3, Y: 1, Z: -7}
	player.Rotation = model.Vector3{Y: 1.5}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	err := s.service.OnDisconnect(s.ctx, "id-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "id-1")
	s.Require().ErrorIs(err, model.ErrPlayerNotFound)

	dp, err := s.storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal("alice", dp.Username)
	s.Equal("mage", dp.CharacterClass)
	s.Equal(model.Vector3{X: 3, Y: 1, Z: -7}, dp.Position)
	s.Equal(model.Vector3{Y: 1.5}, dp.Rotation)
	s.Equal(s.clock.Now(), dp.LastSeen)
}

func (s *ServiceSuite) TestDisconnectReleasesRoomSlot() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.service.Register(s.ctx, "id-2", "bob", "mage", "lobby"))

	err := s.service.OnDisconnect(s.ctx, "id-1")
	s.Require().NoError(err)

	room, _ := s.storage.GetRoom(s.ctx, "lobby")
	s.Equal(uint32(1), room.CurrentPlayerCount)
}

func (s *ServiceSuite) TestDisconnectLastNonOwnerDestroysRoom() {
	s.Require().NoError(s.registry.CreateRoom(s.ctx, "owner-1", "arena"))
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "arena"))

	err := s.service.OnDisconnect(s.ctx, "id-1")
	s.Require().NoError(err)

	_, err = s.storage.GetRoom(s.ctx, "arena")
	s.Require().ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ServiceSuite) TestRepeatedDisconnectRefreshesLastSeen() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "warrior", "lobby"))
	s.Require().NoError(s.service.OnDisconnect(s.ctx, "id-1"))

	later := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	s.clock.Set(later)
	err := s.service.OnDisconnect(s.ctx, "id-1")
	s.Require().NoError(err)

	dp, _ := s.storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.Equal(later, dp.LastSeen)
}

func (s *ServiceSuite) TestDisconnectUnknownIdentityIsNoop() {
	err := s.service.OnDisconnect(s.ctx, "ghost")
	s.Require().NoError(err)
}

// Rejoin tests

func (s *ServiceSuite) TestRejoinPromotesDisconnectedPlayer() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))
	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.Rotation = model.Vector3{Y: 2.2}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	s.Require().NoError(s.service.OnDisconnect(s.ctx, "id-1"))

	// Ignored on rejoin: the stored record wins
	err := s.service.Register(s.ctx, "id-1", "someone-else", "rogue", "lobby")
	s.Require().NoError(err)

	rejoined, err := s.storage.GetPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal("alice", rejoined.Username)
	s.Equal("mage", rejoined.CharacterClass)
	s.Equal(model.Vector3{Y: 2.2}, rejoined.Rotation)
}

func (s *ServiceSuite) TestRejoinUsesFreshSpawnPosition() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))
	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.Position = model.Vector3{X: 42, Y: 1, Z: 42}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	s.Require().NoError(s.service.OnDisconnect(s.ctx, "id-1"))

	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))

	rejoined, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.Equal(model.Vector3{X: -2.5, Y: 1.0, Z: 0}, rejoined.Position)
}

func (s *ServiceSuite) TestRejoinRemovesDisconnectedRecord() {
	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))
	s.Require().NoError(s.service.OnDisconnect(s.ctx, "id-1"))

	s.Require().NoError(s.service.Register(s.ctx, "id-1", "alice", "mage", "lobby"))

	// An identity is never in both tables at once
	_, err := s.storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.Require().ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
}
