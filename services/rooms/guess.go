package rooms

import (
	"strings"

	game_constants "github.com/Genrihbag/med-alias/constants/game"
	models "github.com/Genrihbag/med-alias/models/redis"
	"github.com/Genrihbag/med-alias/services/cards"
)

// Guess mode: every player answers the same card sequence independently.
// Phase flow: lobby -> (countdown) -> answering <-> showingResult -> finished.

// GuessResult is returned synchronously to the submitting client only;
// other clients observe guessLastResult on their next poll.
type GuessResult struct {
	Correct bool       `json:"correct"`
	Card    cards.Card `json:"card"`
}

// normalizeAnswer is the entire correctness oracle: trim, case-fold, compare.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func totalQuestionsOf(settings models.RoomSettings) int {
	if settings.TotalQuestions > 0 {
		return settings.TotalQuestions
	}
	return game_constants.GUESS_WORD_DEFAULT
}

// startGuessCountdown stamps the pre-game countdown. Purely advisory for
// clients; the room status does not change.
func startGuessCountdown(room *models.Room, now int64) {
	room.GuessCountdownStartedAt = &now
}

// startGuessSession draws the question cards and moves the room into the
// answering phase. Player scores reset to 0 and the per-question duration is
// snapshotted from settings so later edits cannot desync a running session.
func startGuessSession(room *models.Room, catalog CardCatalog, now int64) error {
	if room.Status != models.StatusLobby {
		return nil
	}
	total := totalQuestionsOf(room.Settings)
	categories := room.Settings.Categories
	if !catalog.HasEnoughCards(categories, total) {
		return ErrInsufficientCards
	}
	source := catalog.CardsByCategories(categories)
	picked := catalog.PickRandomDistinct(source, total, nil)
	usedCardIds := make([]string, 0, len(picked))
	for _, c := range picked {
		usedCardIds = append(usedCardIds, c.Id)
	}

	for i := range room.Players {
		room.Players[i].Score = 0
	}

	perQuestionSec := room.Settings.RoundDurationSec
	if perQuestionSec <= 0 {
		perQuestionSec = game_constants.DEFAULT_ROUND_DURATION_SEC
	}

	room.Status = models.StatusInGame
	room.CurrentQuestionIndex = 0
	room.UsedCardIds = usedCardIds
	room.GuessStartedAt = &now
	room.GuessPerQuestionSec = perQuestionSec
	room.GuessShowingResult = false
	room.GuessLastResult = nil
	room.GuessResultShownAt = nil
	room.GuessCountdownStartedAt = nil
	return nil
}

// submitGuess scores the first accepted answer of the current question and
// freezes the question into the showing-result phase. Everything else is a
// no-op returning nil: wrong phase, result already showing, index out of
// range. First submission wins; that is the at-most-once-per-question
// guarantee polling clients race against.
func submitGuess(room *models.Room, catalog CardCatalog, userId, answer string, usedHint bool, now int64) *GuessResult {
	if room.Status != models.StatusInGame || room.GuessShowingResult {
		return nil
	}
	idx := room.CurrentQuestionIndex
	if idx < 0 || idx >= len(room.UsedCardIds) {
		return nil
	}
	card, ok := catalog.CardById(room.UsedCardIds[idx])
	if !ok {
		return nil
	}

	correct := normalizeAnswer(answer) == normalizeAnswer(card.Word)

	var delta float64
	if room.Settings.Mode == models.ModeGuess {
		if correct {
			delta = game_constants.ACCEPT_POINTS
		}
		if usedHint {
			delta -= game_constants.HINT_PENALTY
		}
	} else if correct {
		// category-weighted variant: rarer decks are worth more
		delta = float64(cards.CategoryPoints(card.Category))
	}

	for i := range room.Players {
		if room.Players[i].Id != userId {
			continue
		}
		score := room.Players[i].Score + delta
		if score < 0 {
			score = 0
		}
		room.Players[i].Score = score
	}

	room.GuessShowingResult = true
	room.GuessLastResult = &models.GuessLastResult{
		Correct:        correct,
		CardId:         card.Id,
		AnsweredByName: room.PlayerName(userId),
	}
	room.GuessResultShownAt = &now

	return &GuessResult{Correct: correct, Card: card}
}

// advanceGuessQuestion moves past a shown result: either on to the next
// question or, after the last one, into the finished state with the index
// frozen. Only meaningful while a result is showing, so redundant calls from
// duplicated host clients cannot skip questions.
func advanceGuessQuestion(room *models.Room, now int64) bool {
	if room.Status != models.StatusInGame || !room.GuessShowingResult {
		return false
	}
	total := room.Settings.TotalQuestions
	if total <= 0 {
		total = len(room.UsedCardIds)
	}
	nextIndex := room.CurrentQuestionIndex + 1
	last := nextIndex >= total

	if last {
		room.Status = models.StatusFinished
		room.GuessStartedAt = nil
	} else {
		room.CurrentQuestionIndex = nextIndex
		room.GuessStartedAt = &now
	}
	room.GuessShowingResult = false
	room.GuessLastResult = nil
	room.GuessResultShownAt = nil
	return true
}
