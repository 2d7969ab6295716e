package rooms

import (
	"encoding/json"
	"fmt"
	"sync"

	models "github.com/Genrihbag/med-alias/models/redis"
)

// MemoryStore keeps room documents in process memory. It backs unit tests
// and single-node deployments that run without Redis. Documents are copied
// on the way in and out so callers never alias stored state.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]*models.Room)}
}

func copyRoom(room *models.Room) (*models.Room, error) {
	data, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("error copying room document: %v", err)
	}
	var out models.Room
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("error copying room document: %v", err)
	}
	return &out, nil
}

func (s *MemoryStore) Get(id string) (*models.Room, error) {
	s.mu.RLock()
	room, ok := s.rooms[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	return copyRoom(room)
}

func (s *MemoryStore) Save(room *models.Room) error {
	stored, err := copyRoom(room)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rooms[room.Id] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	delete(s.rooms, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Exists(id string) (bool, error) {
	s.mu.RLock()
	_, ok := s.rooms[id]
	s.mu.RUnlock()
	return ok, nil
}

func (s *MemoryStore) LoadAll() (map[string]*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*models.Room, len(s.rooms))
	for id, room := range s.rooms {
		c, err := copyRoom(room)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}
