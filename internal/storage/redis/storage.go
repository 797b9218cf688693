package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.Identity)

	// The previous row is needed to keep the room index in sync on a
	// room switch
	var prevRoom model.RoomName
	if prev, err := s.GetPlayer(ctx, player.Identity); err == nil {
		prevRoom = prev.RoomName
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	pipe.SAdd(ctx, roomPlayersIndexKey(player.RoomName), key)
	if prevRoom != "" && prevRoom != player.RoomName {
		pipe.SRem(ctx, roomPlayersIndexKey(prevRoom), key)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.Identity) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.Identity) error {
	key := playerKey(id)

	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playersIndexKey(), key)
	pipe.SRem(ctx, roomPlayersIndexKey(player.RoomName), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.playersFromIndex(ctx, playersIndexKey())
}

func (s *Storage) GetPlayersInRoom(ctx context.Context, room model.RoomName) ([]*model.Player, error) {
	return s.playersFromIndex(ctx, roomPlayersIndexKey(room))
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.client.SCard(ctx, playersIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// playersFromIndex loads every player row referenced by the given index set
func (s *Storage) playersFromIndex(ctx context.Context, indexKey string) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index may reference a row deleted concurrently
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, roomKey(room.Name), data, 0).Err()
}

func (s *Storage) GetRoom(ctx context.Context, name model.RoomName) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, name model.RoomName) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, roomKey(name))
	pipe.Del(ctx, roomPlayersIndexKey(name))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RoomExists(ctx context.Context, name model.RoomName) (bool, error) {
	exists, err := s.client.Exists(ctx, roomKey(name)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) ListRooms(ctx context.Context) ([]*model.Room, error) {
	var rooms []*model.Room

	iter := s.client.Scan(ctx, 0, roomKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var room model.Room
		if err := json.Unmarshal(data, &room); err != nil {
			continue
		}
		rooms = append(rooms, &room)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

// Disconnected player operations

func (s *Storage) SaveDisconnectedPlayer(ctx context.Context, dp *model.DisconnectedPlayer) error {
	data, err := json.Marshal(dp)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, disconnectedPlayerKey(dp.Identity), data, s.cfg.DisconnectedPlayerTTL).Err()
}

func (s *Storage) GetDisconnectedPlayer(ctx context.Context, id model.Identity) (*model.DisconnectedPlayer, error) {
	data, err := s.client.Get(ctx, disconnectedPlayerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var dp model.DisconnectedPlayer
	if err := json.Unmarshal(data, &dp); err != nil {
		return nil, err
	}
	return &dp, nil
}

func (s *Storage) DeleteDisconnectedPlayer(ctx context.Context, id model.Identity) error {
	return s.client.Del(ctx, disconnectedPlayerKey(id)).Err()
}
