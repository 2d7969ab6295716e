package redis

// Room is the single shared session document for one game instance. It is
// stored in Redis as one JSON value and mutated only through the room
// service, which serializes writes per room id. Field names follow the
// document schema the web clients poll, hence the camelCase tags.

type GameMode string

const (
	ModeTeams GameMode = "teams"
	ModeGuess GameMode = "guess"
)

type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"
	StatusInGame   RoomStatus = "inGame"
	StatusFinished RoomStatus = "finished"
)

type TeamsPhase string

const (
	PhaseRound            TeamsPhase = "round"
	PhaseWordConfirmation TeamsPhase = "wordConfirmation"
	PhaseRoundResults     TeamsPhase = "roundResults"
)

type TeamsCardAction string

const (
	ActionSkip   TeamsCardAction = "skip"
	ActionAccept TeamsCardAction = "accept"
	ActionFact   TeamsCardAction = "fact"
)

type Player struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"` // half-point steps from hints/facts
}

type Team struct {
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIds []string `json:"playerIds"`
	Score     float64  `json:"score"`
}

// GameSubModes: exactly one of the three is expected to be true.
type GameSubModes struct {
	Classic  bool `json:"classic"`
	Gestures bool `json:"gestures"`
	Charades bool `json:"charades"`
}

type RoomSettings struct {
	MaxPlayers       int           `json:"maxPlayers"`
	Mode             GameMode      `json:"mode"`
	Categories       []string      `json:"categories"` // empty = all categories
	RoundDurationSec int           `json:"roundDurationSec"`
	TotalQuestions   int           `json:"totalQuestions,omitempty"` // guess mode
	PlayerCount      int           `json:"playerCount,omitempty"`    // teams mode (2-50)
	PointsToWin      float64       `json:"pointsToWin,omitempty"`    // teams mode
	TeamNames        []string      `json:"teamNames,omitempty"`      // teams mode
	GameSubModes     *GameSubModes `json:"gameSubModes,omitempty"`   // teams mode
	SkipPenalty      bool          `json:"skipPenalty,omitempty"`    // teams mode
}

// GuessLastResult is what polling clients observe after a submission; the
// submitting client additionally gets the full card synchronously.
type GuessLastResult struct {
	Correct        bool   `json:"correct"`
	CardId         string `json:"cardId"`
	AnsweredByName string `json:"answeredByName"`
}

// TeamsGameState only exists while mode is teams and the game has started.
type TeamsGameState struct {
	CurrentRound            int                        `json:"currentRound"`
	RoundCardIds            []string                   `json:"roundCardIds"`
	CurrentCardIndexInRound int                        `json:"currentCardIndexInRound"`
	CurrentTeamIndex        int                        `json:"currentTeamIndex"`
	CurrentExplainerId      string                     `json:"currentExplainerPlayerId"`
	UsedCardIdsInGame       []string                   `json:"usedCardIdsInGame"`
	Last3RoundCardIds       [][]string                 `json:"last3RoundCardIds"` // reserved for a no-repeat rule
	Phase                   TeamsPhase                 `json:"phase"`
	RoundCardActions        map[string]TeamsCardAction `json:"roundCardActions,omitempty"`
	RoundStartedAt          int64                      `json:"roundStartedAt,omitempty"` // epoch ms
}

type Room struct {
	Id                   string       `json:"id"`
	HostId               string       `json:"hostId"`
	Settings             RoomSettings `json:"settings"`
	Players              []Player     `json:"players"`
	Teams                []Team       `json:"teams"`
	Status               RoomStatus   `json:"status"`
	CurrentQuestionIndex int          `json:"currentQuestionIndex"`
	UsedCardIds          []string     `json:"usedCardIds"`

	// Guess mode timers/results. All timestamps are epoch ms; pointers so a
	// cleared timer serializes as null like the original documents.
	GuessStartedAt          *int64           `json:"guessStartedAt,omitempty"`
	GuessPerQuestionSec     int              `json:"guessPerQuestionSec,omitempty"`
	GuessShowingResult      bool             `json:"guessShowingResult,omitempty"`
	GuessLastResult         *GuessLastResult `json:"guessLastResult,omitempty"`
	GuessResultShownAt      *int64           `json:"guessResultShownAt,omitempty"`
	GuessCountdownStartedAt *int64           `json:"guessCountdownStartedAt,omitempty"`

	// Teams mode
	TeamsGameState *TeamsGameState `json:"teamsGameState,omitempty"`
}

// HasPlayer reports whether the given user id is already a member.
func (r *Room) HasPlayer(userId string) bool {
	for _, p := range r.Players {
		if p.Id == userId {
			return true
		}
	}
	return false
}

// PlayerName returns the display name for a member id, or "" if absent.
func (r *Room) PlayerName(userId string) string {
	for _, p := range r.Players {
		if p.Id == userId {
			return p.Name
		}
	}
	return ""
}
