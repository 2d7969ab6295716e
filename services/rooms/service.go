package rooms

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	game_constants "github.com/Genrihbag/med-alias/constants/game"
	models "github.com/Genrihbag/med-alias/models/redis"
)

// RoomService is the single entry point for every room mutation. Each
// operation is an atomic read-modify-write scoped to one room id: a per-room
// mutex serializes concurrent requests against the same room while rooms
// stay independent of each other. The underlying document transforms are
// no-ops outside their valid phase, so a redundant call from a duplicated
// host client can never corrupt state.
type RoomService struct {
	store   RoomStore
	catalog CardCatalog

	// Room locks are never released: the id space is only 900 codes, so
	// the map stays bounded.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// OnFinished is invoked (inside the room lock) right after a room
	// transitions to finished; the sync manager hooks in here to archive
	// final scores.
	OnFinished func(room *models.Room)
}

func NewRoomService(store RoomStore, catalog CardCatalog) *RoomService {
	return &RoomService{
		store:   store,
		catalog: catalog,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *RoomService) roomLock(roomId string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[roomId]
	if !ok {
		l = &sync.Mutex{}
		s.locks[roomId] = l
	}
	return l
}

// generateRoomId allocates a fresh short code, collision-checked against
// currently known ids. The space is only 900 codes, fine for ephemeral
// party sessions.
func (s *RoomService) generateRoomId() (string, error) {
	span := game_constants.ROOM_ID_MAX_NUM - game_constants.ROOM_ID_MIN_NUM + 1
	for attempts := 0; attempts < span*4; attempts++ {
		num := game_constants.ROOM_ID_MIN_NUM + rand.Intn(span)
		id := fmt.Sprintf("%s%d", game_constants.ROOM_ID_PREFIX, num)
		exists, err := s.store.Exists(id)
		if err != nil {
			return "", fmt.Errorf("error checking room id %s: %v", id, err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("error allocating room id: code space exhausted")
}

// CreateRoom allocates a room id, builds the initial lobby document and
// persists it. The candidate id is re-checked under the room lock before the
// save, so two racing creates that drew the same code cannot overwrite each
// other: the loser redraws.
func (s *RoomService) CreateRoom(host AuthUser, settings models.RoomSettings) (*models.Room, error) {
	if settings.Mode != models.ModeTeams && settings.Mode != models.ModeGuess {
		return nil, ErrInvalidSettings
	}
	span := game_constants.ROOM_ID_MAX_NUM - game_constants.ROOM_ID_MIN_NUM + 1
	for attempts := 0; attempts < span*4; attempts++ {
		id, err := s.generateRoomId()
		if err != nil {
			return nil, err
		}
		room, err := s.claimRoom(id, host, settings)
		if err != nil {
			return nil, err
		}
		if room == nil {
			// a concurrent create took the id between draw and claim
			continue
		}
		log.Printf("[ROOM-CREATE] Room %s created by %s (mode %s)", id, host.Id, settings.Mode)
		return room, nil
	}
	return nil, fmt.Errorf("error allocating room id: code space exhausted")
}

// claimRoom saves the initial document only if the id is still free. Returns
// a nil room when the id was taken in the meantime.
func (s *RoomService) claimRoom(id string, host AuthUser, settings models.RoomSettings) (*models.Room, error) {
	lock := s.roomLock(id)
	lock.Lock()
	defer lock.Unlock()

	exists, err := s.store.Exists(id)
	if err != nil {
		return nil, fmt.Errorf("error checking room id %s: %v", id, err)
	}
	if exists {
		return nil, nil
	}
	room := NewRoom(id, host, settings)
	if err := s.store.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom fetches the current document for polling clients.
func (s *RoomService) GetRoom(roomId string) (*models.Room, error) {
	return s.store.Get(roomId)
}

// LoadAllRooms exposes the whole map, mainly for diagnostics.
func (s *RoomService) LoadAllRooms() (map[string]*models.Room, error) {
	return s.store.LoadAll()
}

// JoinRoom appends the user to the room, preserving arrival order.
// Idempotent for users that are already members.
func (s *RoomService) JoinRoom(roomId string, user AuthUser) (*models.Room, error) {
	lock := s.roomLock(roomId)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.store.Get(roomId)
	if err != nil {
		return nil, err
	}
	if room.HasPlayer(user.Id) {
		return room, nil
	}
	if err := addPlayer(room, user); err != nil {
		return nil, err
	}
	if err := s.store.Save(room); err != nil {
		return nil, err
	}
	log.Printf("[ROOM-JOIN] %s joined room %s", user.Id, roomId)
	return room, nil
}

// LeaveRoom removes the player; an emptied room is deleted outright and the
// host role transfers to the first remaining player otherwise.
func (s *RoomService) LeaveRoom(roomId, userId string) error {
	lock := s.roomLock(roomId)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.store.Get(roomId)
	if err != nil {
		return err
	}
	if empty := removePlayer(room, userId); empty {
		if err := s.store.Delete(roomId); err != nil {
			return err
		}
		log.Printf("[ROOM-DELETE] Room %s deleted (last player left)", roomId)
		return nil
	}
	if err := s.store.Save(room); err != nil {
		return err
	}
	log.Printf("[ROOM-LEAVE] %s left room %s", userId, roomId)
	return nil
}

// ReplaceRoom is the optimistic full-document PATCH kept for clients that
// run the engines locally. The id must match an existing room.
func (s *RoomService) ReplaceRoom(room *models.Room) (*models.Room, error) {
	lock := s.roomLock(room.Id)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.store.Get(room.Id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(room); err != nil {
		return nil, err
	}
	if existing.Status != models.StatusFinished && room.Status == models.StatusFinished {
		s.notifyFinished(room)
	}
	return room, nil
}

// mutate runs one engine transform as a locked read-modify-write. The
// transform reports whether it changed the document; unchanged rooms are
// not rewritten.
func (s *RoomService) mutate(roomId string, fn func(room *models.Room) (changed bool, err error)) (*models.Room, error) {
	lock := s.roomLock(roomId)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.store.Get(roomId)
	if err != nil {
		return nil, err
	}
	wasFinished := room.Status == models.StatusFinished
	changed, err := fn(room)
	if err != nil {
		return nil, err
	}
	if !changed {
		return room, nil
	}
	if err := s.store.Save(room); err != nil {
		return nil, err
	}
	if !wasFinished && room.Status == models.StatusFinished {
		s.notifyFinished(room)
	}
	return room, nil
}

func (s *RoomService) notifyFinished(room *models.Room) {
	log.Printf("[ROOM-FINISH] Room %s finished", room.Id)
	if s.OnFinished != nil {
		s.OnFinished(room)
	}
}

func (s *RoomService) StartGuessCountdown(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		startGuessCountdown(room, nowMs())
		return true, nil
	})
}

func (s *RoomService) StartGuessSession(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		if err := startGuessSession(room, s.catalog, nowMs()); err != nil {
			return false, err
		}
		return true, nil
	})
}

// SubmitGuess returns the scored card to the submitting client, or a nil
// result when the submission lost the race for the current question.
func (s *RoomService) SubmitGuess(roomId, userId, answer string, usedHint bool) (*GuessResult, *models.Room, error) {
	var result *GuessResult
	room, err := s.mutate(roomId, func(room *models.Room) (bool, error) {
		result = submitGuess(room, s.catalog, userId, answer, usedHint, nowMs())
		return result != nil, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, room, nil
}

func (s *RoomService) AdvanceGuessQuestion(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return advanceGuessQuestion(room, nowMs()), nil
	})
}

func (s *RoomService) StartTeamsGame(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return startTeamsGame(room, s.catalog, nowMs()), nil
	})
}

func (s *RoomService) ProcessTeamsCardAction(roomId string, action models.TeamsCardAction, endRound bool) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return processTeamsCardAction(room, s.catalog, action, endRound), nil
	})
}

func (s *RoomService) ApplyRoundWordConfirmation(roomId string, countByCardId map[string]bool) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return applyRoundWordConfirmation(room, countByCardId), nil
	})
}

func (s *RoomService) StartTeamsRound(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return startTeamsRound(room, nowMs()), nil
	})
}

func (s *RoomService) FinishTeamsGame(roomId string) (*models.Room, error) {
	return s.mutate(roomId, func(room *models.Room) (bool, error) {
		return finishTeamsGame(room), nil
	})
}
