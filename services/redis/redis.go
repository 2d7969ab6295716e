package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "github.com/Genrihbag/med-alias/models/redis"
	redis_utils "github.com/Genrihbag/med-alias/services/redis/utils"
	"github.com/Genrihbag/med-alias/services/rooms"

	"github.com/redis/go-redis/v9"
)

// Rooms are short-lived party sessions; the TTL reclaims abandoned ones.
const roomTTL = 24 * time.Hour

// RedisClient handles Redis operations. It implements rooms.RoomStore by
// keeping every room as one JSON document under "room:{id}".
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// Save stores a room document in Redis
// Key format: "room:{id}"
// TTL: 24 hours, refreshed on every save
func (rc *RedisClient) Save(room *redis_models.Room) error {
	key := redis_utils.FormatRoomKey(room.Id)
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, roomTTL).Err()
}

// Get retrieves a room document from Redis
// Key format: "room:{id}"
// A missing key maps to rooms.ErrRoomNotFound; an unparseable document is
// treated the same way after logging, never as a fatal error.
func (rc *RedisClient) Get(roomId string) (*redis_models.Room, error) {
	key := redis_utils.FormatRoomKey(roomId)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, rooms.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting room data: %v", err)
	}

	var room redis_models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		log.Printf("[REDIS-MALFORMED] Dropping unparseable room document %s: %v", roomId, err)
		return nil, rooms.ErrRoomNotFound
	}
	return &room, nil
}

// Delete removes a room document
// Key format: "room:{id}"
func (rc *RedisClient) Delete(roomId string) error {
	key := redis_utils.FormatRoomKey(roomId)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting room data: %v", err)
	}
	return nil
}

// Exists reports whether a room id is currently allocated
func (rc *RedisClient) Exists(roomId string) (bool, error) {
	key := redis_utils.FormatRoomKey(roomId)
	n, err := rc.client.Exists(rc.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("error checking room key: %v", err)
	}
	return n > 0, nil
}

// LoadAll returns the whole roomId -> Room map. Malformed documents are
// skipped so one bad entry cannot take the map down.
func (rc *RedisClient) LoadAll() (map[string]*redis_models.Room, error) {
	out := make(map[string]*redis_models.Room)
	iter := rc.client.Scan(rc.ctx, 0, redis_utils.RoomKeyPrefix+"*", 0).Iterator()
	for iter.Next(rc.ctx) {
		key := iter.Val()
		data, err := rc.client.Get(rc.ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error loading room %s: %v", key, err)
		}
		var room redis_models.Room
		if err := json.Unmarshal(data, &room); err != nil {
			log.Printf("[REDIS-MALFORMED] Skipping unparseable room document %s: %v", key, err)
			continue
		}
		out[redis_utils.RoomIdFromKey(key)] = &room
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning room keys: %v", err)
	}
	return out, nil
}
