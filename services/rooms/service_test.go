package rooms

import (
	"fmt"
	"sync"
	"testing"

	models "github.com/Genrihbag/med-alias/models/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentJoinsProduceNoDuplicates(t *testing.T) {
	svc := newTestService(t)
	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, guessSettings())
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := AuthUser{Id: fmt.Sprintf("u%d", i%5), Name: fmt.Sprintf("user %d", i%5)}
			_, err := svc.JoinRoom(room.Id, user)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	updated, err := svc.GetRoom(room.Id)
	require.NoError(t, err)
	require.Len(t, updated.Players, 6) // host + u0..u4
	seen := map[string]bool{}
	for _, p := range updated.Players {
		assert.False(t, seen[p.Id], "duplicate player %s", p.Id)
		seen[p.Id] = true
	}
}

func TestConcurrentSubmitsScoreOnce(t *testing.T) {
	svc := newTestService(t)
	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, guessSettings())
	require.NoError(t, err)
	_, err = svc.JoinRoom(room.Id, AuthUser{Id: "u2", Name: "second"})
	require.NoError(t, err)
	_, err = svc.StartGuessSession(room.Id)
	require.NoError(t, err)

	started, err := svc.GetRoom(room.Id)
	require.NoError(t, err)
	card, ok := BuiltinCatalog{}.CardById(started.UsedCardIds[0])
	require.True(t, ok)

	var accepted int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, _, err := svc.SubmitGuess(room.Id, "u2", card.Word, false)
			assert.NoError(t, err)
			if result != nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), accepted, "only the first submission may score")
	updated, err := svc.GetRoom(room.Id)
	require.NoError(t, err)
	for _, p := range updated.Players {
		if p.Id == "u2" {
			assert.Equal(t, float64(1), p.Score)
		}
	}
}

func TestGuessFlowThroughService(t *testing.T) {
	svc := newTestService(t)
	settings := guessSettings()
	settings.TotalQuestions = 2
	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, settings)
	require.NoError(t, err)

	_, err = svc.StartGuessCountdown(room.Id)
	require.NoError(t, err)
	inGame, err := svc.StartGuessSession(room.Id)
	require.NoError(t, err)
	require.Equal(t, models.StatusInGame, inGame.Status)
	require.Len(t, inGame.UsedCardIds, 2)
	assert.Nil(t, inGame.GuessCountdownStartedAt)

	for q := 0; q < 2; q++ {
		_, _, err := svc.SubmitGuess(room.Id, "host", "мимо", false)
		require.NoError(t, err)
		_, err = svc.AdvanceGuessQuestion(room.Id)
		require.NoError(t, err)
	}

	final, err := svc.GetRoom(room.Id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, final.Status)
}

func TestOnFinishedFiresOnceOnTransition(t *testing.T) {
	svc := newTestService(t)
	var finished []string
	svc.OnFinished = func(room *models.Room) {
		finished = append(finished, room.Id)
	}

	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, teamsSettings("Красные", "Синие"))
	require.NoError(t, err)
	_, err = svc.StartTeamsGame(room.Id)
	require.NoError(t, err)

	_, err = svc.FinishTeamsGame(room.Id)
	require.NoError(t, err)
	require.Equal(t, []string{room.Id}, finished)

	// finishing an already finished room does not refire the hook
	_, err = svc.FinishTeamsGame(room.Id)
	require.NoError(t, err)
	assert.Len(t, finished, 1)
}

func TestOnFinishedFiresOnReplace(t *testing.T) {
	svc := newTestService(t)
	var fired bool
	svc.OnFinished = func(room *models.Room) { fired = true }

	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, guessSettings())
	require.NoError(t, err)

	patched := *room
	patched.Status = models.StatusFinished
	_, err = svc.ReplaceRoom(&patched)
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestReplaceRoomUnknownId(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ReplaceRoom(&models.Room{Id: "MED404"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestTeamsFlowThroughService(t *testing.T) {
	svc := newTestService(t)
	room, err := svc.CreateRoom(AuthUser{Id: "host", Name: "host"}, teamsSettings("Красные", "Синие"))
	require.NoError(t, err)

	started, err := svc.StartTeamsGame(room.Id)
	require.NoError(t, err)
	require.NotNil(t, started.TeamsGameState)

	_, err = svc.ProcessTeamsCardAction(room.Id, models.ActionAccept, true)
	require.NoError(t, err)
	confirmed, err := svc.ApplyRoundWordConfirmation(room.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseRoundResults, confirmed.TeamsGameState.Phase)
	assert.Equal(t, float64(1), confirmed.Teams[0].Score)

	next, err := svc.StartTeamsRound(room.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, next.TeamsGameState.CurrentRound)
	assert.Equal(t, 1, next.TeamsGameState.CurrentTeamIndex)
}

// contestedStore simulates a rival create sneaking in between the unlocked
// availability check and the save: the first id it is asked about gets
// claimed by someone else while still being reported as free.
type contestedStore struct {
	*MemoryStore
	mu       sync.Mutex
	injected bool
	stolenId string
}

func (s *contestedStore) Exists(id string) (bool, error) {
	s.mu.Lock()
	inject := !s.injected
	if inject {
		s.injected = true
		s.stolenId = id
	}
	s.mu.Unlock()

	if inject {
		rival := NewRoom(id, AuthUser{Id: "rival", Name: "rival"}, guessSettings())
		if err := s.MemoryStore.Save(rival); err != nil {
			return false, err
		}
		return false, nil
	}
	return s.MemoryStore.Exists(id)
}

func TestCreateRoomDoesNotOverwriteRacingCreate(t *testing.T) {
	store := &contestedStore{MemoryStore: NewMemoryStore()}
	svc := NewRoomService(store, BuiltinCatalog{})

	room, err := svc.CreateRoom(AuthUser{Id: "u1", Name: "host"}, guessSettings())
	require.NoError(t, err)

	// the contested code was redrawn, not reused
	assert.NotEqual(t, store.stolenId, room.Id)

	rival, err := svc.GetRoom(store.stolenId)
	require.NoError(t, err)
	assert.Equal(t, "rival", rival.HostId)

	created, err := svc.GetRoom(room.Id)
	require.NoError(t, err)
	assert.Equal(t, "u1", created.HostId)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	room := NewRoom("MED300", AuthUser{Id: "u1", Name: "host"}, models.RoomSettings{Mode: models.ModeGuess})
	require.NoError(t, store.Save(room))

	got, err := store.Get("MED300")
	require.NoError(t, err)
	got.Players[0].Name = "mutated"

	again, err := store.Get("MED300")
	require.NoError(t, err)
	assert.Equal(t, "host", again.Players[0].Name)
}
