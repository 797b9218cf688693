package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Identity:       "id-1",
		Username:       "alice",
		CharacterClass: "warrior",
		Position:       model.Vector3{X: 1, Y: 2, Z: 3},
		RoomName:       "lobby",
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.Position, retrieved.Position)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	player := &model.Player{Identity: "id-1", Username: "alice", RoomName: "lobby"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, _ := s.storage.GetPlayer(s.ctx, "id-1")
	retrieved.Username = "mutated"

	again, _ := s.storage.GetPlayer(s.ctx, "id-1")
	s.Equal("alice", again.Username)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{Identity: "id-1", Username: "alice", RoomName: "lobby"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "id-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "id-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-2", Username: "bob", RoomName: "lobby"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-1", Username: "alice", RoomName: "arena"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	// Sorted by identity for determinism
	s.Equal(model.Identity("id-1"), players[0].Identity)
	s.Equal(model.Identity("id-2"), players[1].Identity)
}

func (s *StorageSuite) TestCountPlayers() {
	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-1", RoomName: "lobby"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-2", RoomName: "lobby"})

	count, err = s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestGetPlayersInRoom() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-1", RoomName: "arena"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-2", RoomName: "lobby"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-3", RoomName: "arena"})

	players, err := s.storage.GetPlayersInRoom(s.ctx, "arena")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.Identity("id-1"), players[0].Identity)
	s.Equal(model.Identity("id-3"), players[1].Identity)
}

func (s *StorageSuite) TestGetPlayersInRoomTracksMoves() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identity: "id-1", RoomName: "lobby"})

	player, _ := s.storage.GetPlayer(s.ctx, "id-1")
	player.RoomName = "arena"
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	lobbyPlayers, _ := s.storage.GetPlayersInRoom(s.ctx, "lobby")
	s.Empty(lobbyPlayers)

	arenaPlayers, _ := s.storage.GetPlayersInRoom(s.ctx, "arena")
	s.Len(arenaPlayers, 1)
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		Name:               "arena",
		Password:           "secret",
		MaxPlayers:         8,
		CurrentPlayerCount: 2,
		CreatedAt:          time.Now(),
		OwnerIdentity:      "id-1",
	}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoom(s.ctx, "arena")
	s.Require().NoError(err)
	s.Equal(room.Password, retrieved.Password)
	s.Equal(room.MaxPlayers, retrieved.MaxPlayers)
	s.Equal(room.OwnerIdentity, retrieved.OwnerIdentity)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoom() {
	_ = s.storage.SaveRoom(s.ctx, &model.Room{Name: "arena", MaxPlayers: 8})

	err := s.storage.DeleteRoom(s.ctx, "arena")
	s.Require().NoError(err)

	_, err = s.storage.GetRoom(s.ctx, "arena")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "arena")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, &model.Room{Name: "arena", MaxPlayers: 8})

	exists, err = s.storage.RoomExists(s.ctx, "arena")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestListRooms() {
	_ = s.storage.SaveRoom(s.ctx, &model.Room{Name: "lobby", MaxPlayers: 10})
	_ = s.storage.SaveRoom(s.ctx, &model.Room{Name: "arena", MaxPlayers: 8})

	rooms, err := s.storage.ListRooms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rooms, 2)
	s.Equal(model.RoomName("arena"), rooms[0].Name)
	s.Equal(model.RoomName("lobby"), rooms[1].Name)
}

// Disconnected player tests

func (s *StorageSuite) TestSaveAndGetDisconnectedPlayer() {
	dp := &model.DisconnectedPlayer{
		Identity:       "id-1",
		Username:       "alice",
		CharacterClass: "mage",
		Position:       model.Vector3{X: 4, Y: 1, Z: -2},
		LastSeen:       time.Now(),
	}

	err := s.storage.SaveDisconnectedPlayer(s.ctx, dp)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal(dp.Username, retrieved.Username)
	s.Equal(dp.Position, retrieved.Position)
}

func (s *StorageSuite) TestGetDisconnectedPlayerNotFound() {
	_, err := s.storage.GetDisconnectedPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeleteDisconnectedPlayer() {
	_ = s.storage.SaveDisconnectedPlayer(s.ctx, &model.DisconnectedPlayer{Identity: "id-1"})

	err := s.storage.DeleteDisconnectedPlayer(s.ctx, "id-1")
	s.Require().NoError(err)

	_, err = s.storage.GetDisconnectedPlayer(s.ctx, "id-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
