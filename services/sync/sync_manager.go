package sync

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	models "github.com/Genrihbag/med-alias/models/postgres"
	redis_models "github.com/Genrihbag/med-alias/models/redis"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyncManager copies the durable part of a finished room out of Redis-side
// documents into PostgreSQL before the document's TTL reclaims it.
type SyncManager struct {
	db *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(db *gorm.DB) *SyncManager {
	return &SyncManager{db: db}
}

type scoreboard struct {
	Players []redis_models.Player `json:"players"`
	Teams   []redis_models.Team   `json:"teams,omitempty"`
}

// ArchiveFinishedRoom persists the final scoreboard of a finished room.
// Called by the room service from its OnFinished hook; failures are logged
// and swallowed so archiving can never block a game transition.
func (sm *SyncManager) ArchiveFinishedRoom(room *redis_models.Room) {
	if err := sm.archive(room); err != nil {
		log.Printf("[SYNC-ERROR] Error archiving room %s: %v", room.Id, err)
		return
	}
	log.Printf("[SYNC] Archived final scores of room %s", room.Id)
}

func (sm *SyncManager) archive(room *redis_models.Room) error {
	board, err := json.Marshal(scoreboard{Players: room.Players, Teams: room.Teams})
	if err != nil {
		return fmt.Errorf("error marshaling scoreboard: %v", err)
	}
	result := models.GameResult{
		RoomId:     room.Id,
		Mode:       string(room.Settings.Mode),
		Scoreboard: datatypes.JSON(board),
		FinishedAt: time.Now(),
	}
	if err := sm.db.Create(&result).Error; err != nil {
		return fmt.Errorf("error inserting game result: %v", err)
	}
	return nil
}

// ResultsForRoom returns the archived results of a room id, newest first.
func (sm *SyncManager) ResultsForRoom(roomId string) ([]models.GameResult, error) {
	var results []models.GameResult
	err := sm.db.Where("room_id = ?", roomId).Order("finished_at DESC").Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("error querying game results: %v", err)
	}
	return results, nil
}
