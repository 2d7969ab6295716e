package rooms

import (
	"fmt"
	"testing"

	models "github.com/Genrihbag/med-alias/models/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lobbyTeamsRoom(subModes models.GameSubModes, skipPenalty bool) *models.Room {
	room := NewRoom("MED200", AuthUser{Id: "u1", Name: "host"}, models.RoomSettings{
		Mode:             models.ModeTeams,
		RoundDurationSec: 60,
		PointsToWin:      30,
		TeamNames:        []string{"Красные", "Синие"},
		GameSubModes:     &subModes,
		SkipPenalty:      skipPenalty,
	})
	room.Players = append(room.Players, models.Player{Id: "u2", Name: "second"})
	return room
}

// inRoundTeamsRoom skips the draw and pins a synthetic deck of n real cards.
func inRoundTeamsRoom(subModes models.GameSubModes, skipPenalty bool, cardIds []string) *models.Room {
	room := lobbyTeamsRoom(subModes, skipPenalty)
	room.Status = models.StatusInGame
	room.TeamsGameState = &models.TeamsGameState{
		CurrentRound:       1,
		RoundCardIds:       cardIds,
		CurrentExplainerId: room.HostId,
		UsedCardIdsInGame:  []string{},
		Last3RoundCardIds:  [][]string{},
		Phase:              models.PhaseRound,
		RoundStartedAt:     1_000_000,
	}
	return room
}

func toolCardIds(n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, fmt.Sprintf("tools-%d", i))
	}
	return ids
}

func TestStartTeamsGame(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := lobbyTeamsRoom(models.GameSubModes{Classic: true}, false)

	require.True(t, startTeamsGame(room, catalog, 5_000))

	assert.Equal(t, models.StatusInGame, room.Status)
	state := room.TeamsGameState
	require.NotNil(t, state)
	assert.Equal(t, 1, state.CurrentRound)
	assert.Equal(t, 0, state.CurrentTeamIndex)
	assert.Equal(t, room.HostId, state.CurrentExplainerId)
	assert.Equal(t, models.PhaseRound, state.Phase)
	assert.Equal(t, int64(5_000), state.RoundStartedAt)
	assert.NotEmpty(t, state.RoundCardIds)

	seen := map[string]bool{}
	for _, id := range state.RoundCardIds {
		assert.False(t, seen[id], "card %s drawn twice", id)
		seen[id] = true
	}
}

func TestStartTeamsGameRejectsGuessMode(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := NewRoom("MED201", AuthUser{Id: "u1", Name: "host"}, models.RoomSettings{Mode: models.ModeGuess})

	assert.False(t, startTeamsGame(room, catalog, 1))
	assert.Equal(t, models.StatusLobby, room.Status)
	assert.Nil(t, room.TeamsGameState)
}

func TestProcessTeamsCardAction(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(3))
	state := room.TeamsGameState

	require.True(t, processTeamsCardAction(room, catalog, models.ActionAccept, false))

	assert.Equal(t, 1, state.CurrentCardIndexInRound)
	assert.Equal(t, models.ActionAccept, state.RoundCardActions["tools-1"])
	assert.Equal(t, []string{"tools-1"}, state.UsedCardIdsInGame)
	assert.Equal(t, models.PhaseRound, state.Phase)
}

func TestProcessTeamsCardActionEndRoundFlag(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(3))

	require.True(t, processTeamsCardAction(room, catalog, models.ActionSkip, true))
	assert.Equal(t, models.PhaseWordConfirmation, room.TeamsGameState.Phase)
}

func TestProcessTeamsCardActionDeckExhaustionEndsRound(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(2))

	require.True(t, processTeamsCardAction(room, catalog, models.ActionAccept, false))
	assert.Equal(t, models.PhaseRound, room.TeamsGameState.Phase)
	require.True(t, processTeamsCardAction(room, catalog, models.ActionAccept, false))
	assert.Equal(t, models.PhaseWordConfirmation, room.TeamsGameState.Phase)
}

func TestProcessTeamsCardActionIgnoredOutsideRound(t *testing.T) {
	catalog := BuiltinCatalog{}
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(2))
	room.TeamsGameState.Phase = models.PhaseRoundResults

	assert.False(t, processTeamsCardAction(room, catalog, models.ActionAccept, false))
	assert.Equal(t, 0, room.TeamsGameState.CurrentCardIndexInRound)
}

func playRound(t *testing.T, room *models.Room, actions []models.TeamsCardAction) {
	t.Helper()
	catalog := BuiltinCatalog{}
	for i, action := range actions {
		endRound := i == len(actions)-1
		require.True(t, processTeamsCardAction(room, catalog, action, endRound))
	}
}

func TestApplyRoundWordConfirmationClassic(t *testing.T) {
	// 10 cards: 6 accepts, 2 facts, 2 skips without a skip penalty -> 7 points
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(10))
	playRound(t, room, []models.TeamsCardAction{
		models.ActionAccept, models.ActionAccept, models.ActionAccept,
		models.ActionAccept, models.ActionAccept, models.ActionAccept,
		models.ActionFact, models.ActionFact,
		models.ActionSkip, models.ActionSkip,
	})

	require.True(t, applyRoundWordConfirmation(room, nil))

	assert.Equal(t, float64(7), room.Teams[0].Score)
	assert.Zero(t, room.Teams[1].Score)
	assert.Equal(t, models.PhaseRoundResults, room.TeamsGameState.Phase)
	assert.Nil(t, room.TeamsGameState.RoundCardActions)
}

func TestApplyRoundWordConfirmationSkipPenalty(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, true, toolCardIds(3))
	playRound(t, room, []models.TeamsCardAction{
		models.ActionAccept, models.ActionSkip, models.ActionSkip,
	})

	require.True(t, applyRoundWordConfirmation(room, nil))
	// 1 accept - 2 skipped = -1, clamped at 0
	assert.Zero(t, room.Teams[0].Score)
}

func TestApplyRoundWordConfirmationGestures(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Gestures: true}, false, toolCardIds(2))
	playRound(t, room, []models.TeamsCardAction{
		models.ActionAccept, models.ActionAccept,
	})

	require.True(t, applyRoundWordConfirmation(room, nil))
	assert.Equal(t, float64(1), room.Teams[0].Score)
}

func TestApplyRoundWordConfirmationOverrides(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, true, toolCardIds(3))
	playRound(t, room, []models.TeamsCardAction{
		models.ActionAccept, models.ActionAccept, models.ActionSkip,
	})

	// the review screen vetoes the second accept and rescues the skip
	require.True(t, applyRoundWordConfirmation(room, map[string]bool{
		"tools-2": false,
		"tools-3": true,
	}))

	// tools-1 accept +1, tools-2 uncounted -1, tools-3 counted skip +0
	assert.Zero(t, room.Teams[0].Score)
}

func TestApplyRoundWordConfirmationIgnoredFromRoundPhase(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(3))
	catalog := BuiltinCatalog{}
	require.True(t, processTeamsCardAction(room, catalog, models.ActionAccept, false))

	assert.False(t, applyRoundWordConfirmation(room, nil))
	assert.Equal(t, models.PhaseRound, room.TeamsGameState.Phase)
	assert.Zero(t, room.Teams[0].Score)
}

func TestStartTeamsRoundRotation(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(5))
	deck := append([]string{}, room.TeamsGameState.RoundCardIds...)
	playRound(t, room, []models.TeamsCardAction{models.ActionAccept, models.ActionAccept, models.ActionAccept, models.ActionAccept, models.ActionAccept})
	require.True(t, applyRoundWordConfirmation(room, nil))

	prevRound := room.TeamsGameState.CurrentRound
	for i := 0; i < 4; i++ {
		require.True(t, startTeamsRound(room, 9_000))
		state := room.TeamsGameState

		assert.Equal(t, deck, state.RoundCardIds, "deck must be reused across rounds")
		assert.Greater(t, state.CurrentRound, prevRound)
		prevRound = state.CurrentRound
		assert.Equal(t, (i+1)%len(room.Teams), state.CurrentTeamIndex)
		assert.Equal(t, 0, state.CurrentCardIndexInRound)
		assert.Equal(t, models.PhaseRound, state.Phase)
		assert.Equal(t, int64(9_000), state.RoundStartedAt)
	}
}

func TestStartTeamsRoundKeepsLastThreeDecks(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(2))

	for i := 0; i < 5; i++ {
		require.True(t, startTeamsRound(room, 1))
	}
	assert.Len(t, room.TeamsGameState.Last3RoundCardIds, 3)
}

func TestStartTeamsRoundWithoutState(t *testing.T) {
	room := lobbyTeamsRoom(models.GameSubModes{Classic: true}, false)
	assert.False(t, startTeamsRound(room, 1))
}

func TestFinishTeamsGame(t *testing.T) {
	room := inRoundTeamsRoom(models.GameSubModes{Classic: true}, false, toolCardIds(2))

	require.True(t, finishTeamsGame(room))
	assert.Equal(t, models.StatusFinished, room.Status)

	guessRoom := lobbyGuessRoom(10)
	assert.False(t, finishTeamsGame(guessRoom))
	assert.Equal(t, models.StatusLobby, guessRoom.Status)
}
