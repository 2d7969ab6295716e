package controllers

import (
	"errors"
	"net/http"
	"strings"

	models "github.com/Genrihbag/med-alias/models/redis"
	"github.com/Genrihbag/med-alias/services/rooms"

	"github.com/gin-gonic/gin"
)

// Room codes arrive from chat links and manual typing; accept any casing.
func normalizeRoomId(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

type createRoomRequest struct {
	Host     rooms.AuthUser      `json:"host"`
	Settings models.RoomSettings `json:"settings"`
}

// @Summary Creates a new room
// @Description Allocates a short room code and returns the lobby document with the host as sole player
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body createRoomRequest true "Host identity and room settings"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/rooms [post]
func CreateRoom(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Host.Id == "" || req.Host.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "host and settings required"})
			return
		}
		room, err := svc.CreateRoom(req.Host, req.Settings)
		if err != nil {
			if errors.Is(err, rooms.ErrInvalidSettings) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating room"})
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Joins an existing room
// @Description Appends the user to the room's player list; joining twice is a no-op
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param user body rooms.AuthUser true "Joining identity"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/rooms/{id}/join [post]
func JoinRoom(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var user rooms.AuthUser
		if err := c.ShouldBindJSON(&user); err != nil || user.Id == "" || user.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user.id and user.name required"})
			return
		}
		room, err := svc.JoinRoom(roomId, user)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

type leaveRoomRequest struct {
	UserId string `json:"userId"`
}

// @Summary Leaves a room
// @Description Removes the player; the room is deleted when its last player leaves and the host role moves to the next player otherwise
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param request body leaveRoomRequest true "Leaving user id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/leave [post]
func LeaveRoom(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var req leaveRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserId == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
			return
		}
		if err := svc.LeaveRoom(roomId, req.UserId); err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "left room"})
	}
}

// @Summary Fetches a room document
// @Description The polling endpoint: returns the current shared room state
// @Tags rooms
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id} [get]
func GetRoom(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.GetRoom(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Replaces a room document
// @Description Full-document PATCH for clients that run transforms locally; the body id must match the path
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param room body object true "Complete room document"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id} [patch]
func UpdateRoom(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var room models.Room
		if err := c.ShouldBindJSON(&room); err != nil || room.Id != roomId {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room"})
			return
		}
		updated, err := svc.ReplaceRoom(&room)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------------------------------------------------------------
// Guess mode actions
// ---------------------------------------------------------------

// @Summary Starts the pre-game countdown
// @Tags guess
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/guess/countdown [post]
func StartGuessCountdown(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.StartGuessCountdown(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Starts a guess session
// @Description Draws the question cards, resets scores and moves the room into the answering phase
// @Tags guess
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/guess/start [post]
func StartGuessSession(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.StartGuessSession(roomId)
		if err != nil {
			if errors.Is(err, rooms.ErrInsufficientCards) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "not enough cards for the selected categories"})
				return
			}
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

type submitGuessRequest struct {
	UserId   string `json:"userId"`
	Answer   string `json:"answer"`
	UsedHint bool   `json:"usedHint"`
}

// @Summary Submits an answer for the current question
// @Description First accepted submission wins the question; losers of the race get a null result
// @Tags guess
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param request body submitGuessRequest true "Answer"
// @Success 200 {object} object{result=object,room=object}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/guess/submit [post]
func SubmitGuess(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var req submitGuessRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserId == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and answer required"})
			return
		}
		result, room, err := svc.SubmitGuess(roomId, req.UserId, req.Answer, req.UsedHint)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result, "room": room})
	}
}

// @Summary Advances past a shown result
// @Description Moves to the next question, or finishes the session after the last one
// @Tags guess
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/guess/advance [post]
func AdvanceGuessQuestion(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.AdvanceGuessQuestion(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// ---------------------------------------------------------------
// Teams mode actions
// ---------------------------------------------------------------

// @Summary Starts a teams game
// @Description Draws the shared deck once and opens round 1 for the first team
// @Tags teams
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/teams/start [post]
func StartTeamsGame(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.StartTeamsGame(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

type teamsActionRequest struct {
	Action   models.TeamsCardAction `json:"action"`
	EndRound bool                   `json:"endRound"`
}

// @Summary Records a verdict for the current card
// @Description Advances to the next card; endRound=true cuts the turn short when the timer expired
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param request body teamsActionRequest true "Card verdict"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/teams/action [post]
func ProcessTeamsCardAction(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var req teamsActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		switch req.Action {
		case models.ActionSkip, models.ActionAccept, models.ActionFact:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown card action"})
			return
		}
		room, err := svc.ProcessTeamsCardAction(roomId, req.Action, req.EndRound)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

type confirmRoundRequest struct {
	CountByCardId map[string]bool `json:"countByCardId"`
}

// @Summary Applies the word-confirmation review and scores the round
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param request body confirmRoundRequest true "Per-card overrides of which verdicts count"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/teams/confirm [post]
func ApplyRoundWordConfirmation(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		var req confirmRoundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		room, err := svc.ApplyRoundWordConfirmation(roomId, req.CountByCardId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Opens the next round for the next team
// @Tags teams
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/teams/nextRound [post]
func StartTeamsRound(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.StartTeamsRound(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Finishes a teams game
// @Description Called by the host after the round-results screen once a team reached pointsToWin
// @Tags teams
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id}/teams/finish [post]
func FinishTeamsGame(svc *rooms.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomId := normalizeRoomId(c.Param("id"))
		room, err := svc.FinishTeamsGame(roomId)
		if err != nil {
			respondRoomError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

func respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	case errors.Is(err, rooms.ErrRoomFull):
		c.JSON(http.StatusConflict, gin.H{"error": "room is full"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
