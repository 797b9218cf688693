package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      map[model.Identity]*model.Player
	rooms        map[model.RoomName]*model.Room
	disconnected map[model.Identity]*model.DisconnectedPlayer
	roomIndex    map[model.RoomName]map[model.Identity]struct{}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.Identity]*model.Player),
		rooms:        make(map[model.RoomName]*model.Room),
		disconnected: make(map[model.Identity]*model.DisconnectedPlayer),
		roomIndex:    make(map[model.RoomName]map[model.Identity]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Keep the room index in sync when a player switches rooms
	if prev, ok := s.players[player.Identity]; ok && prev.RoomName != player.RoomName {
		s.removeFromRoomIndex(prev.RoomName, player.Identity)
	}

	copied := *player
	s.players[player.Identity] = &copied
	s.addToRoomIndex(player.RoomName, player.Identity)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.Identity) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		s.removeFromRoomIndex(player.RoomName, id)
	}
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		copied := *p
		players = append(players, &copied)
	}
	// Stable order keeps tests and logs deterministic
	sort.Slice(players, func(i, j int) bool {
		return players[i].Identity < players[j].Identity
	})
	return players, nil
}

func (s *Storage) GetPlayersInRoom(ctx context.Context, room model.RoomName) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids, ok := s.roomIndex[room]
	if !ok {
		return []*model.Player{}, nil
	}
	players := make([]*model.Player, 0, len(ids))
	for id := range ids {
		if p, ok := s.players[id]; ok {
			copied := *p
			players = append(players, &copied)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Identity < players[j].Identity
	})
	return players, nil
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *room
	s.rooms[room.Name] = &copied
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, name model.RoomName) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[name]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, name model.RoomName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, name)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, name model.RoomName) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[name]
	return ok, nil
}

func (s *Storage) ListRooms(ctx context.Context) ([]*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]*model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		copied := *r
		rooms = append(rooms, &copied)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Name < rooms[j].Name
	})
	return rooms, nil
}

// Disconnected player operations

func (s *Storage) SaveDisconnectedPlayer(ctx context.Context, dp *model.DisconnectedPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *dp
	s.disconnected[dp.Identity] = &copied
	return nil
}

func (s *Storage) GetDisconnectedPlayer(ctx context.Context, id model.Identity) (*model.DisconnectedPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dp, ok := s.disconnected[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *dp
	return &copied, nil
}

func (s *Storage) DeleteDisconnectedPlayer(ctx context.Context, id model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.disconnected, id)
	return nil
}

// Index helpers, caller must hold the write lock

func (s *Storage) addToRoomIndex(room model.RoomName, id model.Identity) {
	ids, ok := s.roomIndex[room]
	if !ok {
		ids = make(map[model.Identity]struct{})
		s.roomIndex[room] = ids
	}
	ids[id] = struct{}{}
}

func (s *Storage) removeFromRoomIndex(room model.RoomName, id model.Identity) {
	if ids, ok := s.roomIndex[room]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(s.roomIndex, room)
		}
	}
}
