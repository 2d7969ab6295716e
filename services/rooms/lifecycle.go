package rooms

import (
	"fmt"

	models "github.com/Genrihbag/med-alias/models/redis"
)

// AuthUser is the stable identity the identity provider hands out. Ids are
// unique per room, not globally.
type AuthUser struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func buildTeamsFromNames(teamNames []string) []models.Team {
	teams := make([]models.Team, 0, len(teamNames))
	for i, name := range teamNames {
		teams = append(teams, models.Team{
			Id:        fmt.Sprintf("team-%d", i),
			Name:      name,
			PlayerIds: []string{},
			Score:     0,
		})
	}
	return teams
}

// NewRoom builds the initial lobby document with the host as sole player.
// Teams are created once here, from settings.teamNames; their count and
// identity are fixed for the room's whole life. A teams room without team
// names degrades to an empty team list rather than failing.
func NewRoom(id string, host AuthUser, settings models.RoomSettings) *models.Room {
	var teams []models.Team
	if settings.Mode == models.ModeTeams && len(settings.TeamNames) > 0 {
		teams = buildTeamsFromNames(settings.TeamNames)
	} else {
		teams = []models.Team{}
	}
	return &models.Room{
		Id:                   id,
		HostId:               host.Id,
		Settings:             settings,
		Players:              []models.Player{{Id: host.Id, Name: host.Name, Score: 0}},
		Teams:                teams,
		Status:               models.StatusLobby,
		CurrentQuestionIndex: 0,
		UsedCardIds:          []string{},
	}
}

// addPlayer appends a joining user, preserving arrival order. Idempotent:
// a user that is already a member leaves the room unchanged.
func addPlayer(room *models.Room, user AuthUser) error {
	if room.HasPlayer(user.Id) {
		return nil
	}
	if room.Settings.MaxPlayers > 0 && len(room.Players) >= room.Settings.MaxPlayers {
		return ErrRoomFull
	}
	room.Players = append(room.Players, models.Player{Id: user.Id, Name: user.Name, Score: 0})
	return nil
}

// removePlayer takes a player out of the room, transferring the host role to
// the first remaining player when the host leaves. Returns true when the
// room is now empty and should be deleted by the caller.
func removePlayer(room *models.Room, userId string) (empty bool) {
	remaining := room.Players[:0]
	for _, p := range room.Players {
		if p.Id != userId {
			remaining = append(remaining, p)
		}
	}
	room.Players = remaining
	if len(room.Players) == 0 {
		return true
	}
	if room.HostId == userId {
		room.HostId = room.Players[0].Id
	}
	return false
}
