package rooms

import (
	models "github.com/Genrihbag/med-alias/models/redis"
	"github.com/Genrihbag/med-alias/services/cards"
)

// CardCatalog is the read-only trivia card source the engines draw from.
type CardCatalog interface {
	CardsByCategories(categoryIds []string) []cards.Card
	CardById(id string) (cards.Card, bool)
	HasEnoughCards(categoryIds []string, n int) bool
	PickRandomDistinct(source []cards.Card, n int, excludeIds []string) []cards.Card
}

// RoomStore is the durable roomId -> Room document mapping. Implementations
// do not need to serialize access; the RoomService holds a per-room lock
// around every read-modify-write.
type RoomStore interface {
	Get(id string) (*models.Room, error) // ErrRoomNotFound when absent
	Save(room *models.Room) error
	Delete(id string) error
	Exists(id string) (bool, error)
	LoadAll() (map[string]*models.Room, error)
}

// BuiltinCatalog adapts the in-process card deck to the CardCatalog interface.
type BuiltinCatalog struct{}

func (BuiltinCatalog) CardsByCategories(categoryIds []string) []cards.Card {
	return cards.CardsByCategories(categoryIds)
}

func (BuiltinCatalog) CardById(id string) (cards.Card, bool) {
	return cards.CardById(id)
}

func (BuiltinCatalog) HasEnoughCards(categoryIds []string, n int) bool {
	return cards.HasEnoughCards(categoryIds, n)
}

func (BuiltinCatalog) PickRandomDistinct(source []cards.Card, n int, excludeIds []string) []cards.Card {
	return cards.PickRandomDistinct(source, n, excludeIds)
}
