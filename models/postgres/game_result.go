package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameResult' archives a finished room. Redis room documents expire on a
 * TTL; the final scoreboard is copied here first so past games survive.
 * Scoreboard is the JSON players/teams snapshot, not normalized rows.
 */
type GameResult struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	RoomId     string         `gorm:"size:16;not null;index:idx_game_results_room"`
	Mode       string         `gorm:"size:16;not null"`
	Scoreboard datatypes.JSON `gorm:"not null"`
	FinishedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}
