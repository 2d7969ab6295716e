package game_constants

// Room codes are short and human-shareable: prefix + 3 digits
const ROOM_ID_PREFIX = "MED"
const ROOM_ID_MIN_NUM = 100
const ROOM_ID_MAX_NUM = 999

const WINNING_SCORE = 30

// Guess mode question count bounds (setup UI steps by 5)
const (
	GUESS_WORD_MIN     = 5
	GUESS_WORD_MAX     = 50
	GUESS_WORD_STEP    = 5
	GUESS_WORD_DEFAULT = 25
)

const DEFAULT_ROUND_DURATION_SEC = 60
const DEFAULT_TEAMS_MAX_PLAYERS = 6
const DEFAULT_GUESS_MAX_PLAYERS = 50

// Scoring deltas shared by both modes
const (
	ACCEPT_POINTS          = 1.0
	ACCEPT_POINTS_GESTURES = 0.5
	FACT_POINTS            = 0.5
	HINT_PENALTY           = 0.5
	SKIP_PENALTY_POINTS    = 1.0
)
