package rooms

import (
	game_constants "github.com/Genrihbag/med-alias/constants/game"
	models "github.com/Genrihbag/med-alias/models/redis"
)

// Teams mode: turn-based charades. Per round the phases are
// round -> wordConfirmation -> roundResults -> (round | finished).
// The engine never finishes the game on its own; the host confirms the win
// after the roundResults screen.

// startTeamsGame draws the whole catalog slice for the chosen categories
// once and replays that same sequence every round, rather than drawing fresh
// cards per round.
func startTeamsGame(room *models.Room, catalog CardCatalog, now int64) bool {
	if room.Settings.Mode != models.ModeTeams || room.Status != models.StatusLobby {
		return false
	}
	source := catalog.CardsByCategories(room.Settings.Categories)
	picked := catalog.PickRandomDistinct(source, len(source), nil)
	roundCardIds := make([]string, 0, len(picked))
	for _, c := range picked {
		roundCardIds = append(roundCardIds, c.Id)
	}
	room.Status = models.StatusInGame
	room.TeamsGameState = &models.TeamsGameState{
		CurrentRound:            1,
		RoundCardIds:            roundCardIds,
		CurrentCardIndexInRound: 0,
		CurrentTeamIndex:        0,
		CurrentExplainerId:      room.HostId,
		UsedCardIdsInGame:       []string{},
		Last3RoundCardIds:       [][]string{},
		Phase:                   models.PhaseRound,
		RoundStartedAt:          now,
	}
	return true
}

// processTeamsCardAction records a verdict for the current card and advances
// the card pointer. The round ends, moving to word confirmation, either when
// the caller flags endRound (the turn timer expired mid-deck) or when the
// deck runs out.
func processTeamsCardAction(room *models.Room, catalog CardCatalog, action models.TeamsCardAction, endRound bool) bool {
	state := room.TeamsGameState
	if room.Settings.Mode != models.ModeTeams || state == nil || state.Phase != models.PhaseRound {
		return false
	}
	if state.CurrentCardIndexInRound >= len(state.RoundCardIds) {
		return false
	}
	cardId := state.RoundCardIds[state.CurrentCardIndexInRound]
	if _, ok := catalog.CardById(cardId); !ok {
		return false
	}

	if state.RoundCardActions == nil {
		state.RoundCardActions = make(map[string]models.TeamsCardAction)
	}
	state.RoundCardActions[cardId] = action
	state.UsedCardIdsInGame = append(state.UsedCardIdsInGame, cardId)
	state.CurrentCardIndexInRound++

	if endRound || state.CurrentCardIndexInRound >= len(state.RoundCardIds) {
		state.Phase = models.PhaseWordConfirmation
	}
	return true
}

// applyRoundWordConfirmation scores the round after the human review step.
// countByCardId overrides which verdicts count; a card absent from the map
// defaults to counted unless its verdict was skip. Scoring: accept is worth
// 1 point (0.5 in the gestures sub-mode), fact 0.5; an uncounted card costs
// 1 point when the skip penalty is enabled. The team total never drops
// below 0.
func applyRoundWordConfirmation(room *models.Room, countByCardId map[string]bool) bool {
	state := room.TeamsGameState
	if room.Settings.Mode != models.ModeTeams || state == nil || state.Phase != models.PhaseWordConfirmation {
		return false
	}

	gestures := room.Settings.GameSubModes != nil && room.Settings.GameSubModes.Gestures

	var totalDelta float64
	for _, cardId := range state.RoundCardIds {
		action, shown := state.RoundCardActions[cardId]
		if !shown {
			continue
		}
		counted, overridden := countByCardId[cardId]
		if !overridden {
			counted = action != models.ActionSkip
		}
		if counted {
			switch action {
			case models.ActionAccept:
				if gestures {
					totalDelta += game_constants.ACCEPT_POINTS_GESTURES
				} else {
					totalDelta += game_constants.ACCEPT_POINTS
				}
			case models.ActionFact:
				totalDelta += game_constants.FACT_POINTS
			}
		} else if room.Settings.SkipPenalty {
			totalDelta -= game_constants.SKIP_PENALTY_POINTS
		}
	}

	if i := state.CurrentTeamIndex; i >= 0 && i < len(room.Teams) {
		score := room.Teams[i].Score + totalDelta
		if score < 0 {
			score = 0
		}
		room.Teams[i].Score = score
	}

	state.Phase = models.PhaseRoundResults
	state.RoundCardActions = nil
	return true
}

// startTeamsRound hands the (reused) deck to the next team. Valid any time a
// teams game exists, so a redundant call from a stale host client is
// harmless: it only ever rotates forward.
func startTeamsRound(room *models.Room, now int64) bool {
	state := room.TeamsGameState
	if room.Settings.Mode != models.ModeTeams || state == nil {
		return false
	}
	state.Last3RoundCardIds = append(state.Last3RoundCardIds, state.RoundCardIds)
	if n := len(state.Last3RoundCardIds); n > 3 {
		state.Last3RoundCardIds = state.Last3RoundCardIds[n-3:]
	}
	state.CurrentRound++
	if len(room.Teams) > 0 {
		state.CurrentTeamIndex = (state.CurrentTeamIndex + 1) % len(room.Teams)
	}
	state.CurrentCardIndexInRound = 0
	if len(state.RoundCardIds) > 0 {
		state.Phase = models.PhaseRound
		state.RoundStartedAt = now
	} else {
		// degenerate guard: an empty deck has nothing to play
		state.Phase = models.PhaseRoundResults
		state.RoundStartedAt = 0
	}
	return true
}

// finishTeamsGame ends the session. The win condition (team score reaching
// settings.pointsToWin) is evaluated by the caller after roundResults.
func finishTeamsGame(room *models.Room) bool {
	if room.Settings.Mode != models.ModeTeams {
		return false
	}
	room.Status = models.StatusFinished
	return true
}
