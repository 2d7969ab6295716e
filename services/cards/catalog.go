package cards

import (
	"math/rand"
)

// Card is a single playable word: the term to explain or guess, the words
// that are forbidden while explaining it, and a fact shown after the answer.
type Card struct {
	Id        string   `json:"id"`
	Word      string   `json:"word"`
	Category  string   `json:"category"`
	Forbidden []string `json:"forbidden"`
	Fact      string   `json:"fact"`
}

// CardsByCategories returns every card belonging to one of the given
// categories, in catalog order. An empty set means all categories.
func CardsByCategories(categoryIds []string) []Card {
	if len(categoryIds) == 0 {
		categoryIds = AllCategoryIds()
	}
	wanted := make(map[string]bool, len(categoryIds))
	for _, id := range categoryIds {
		wanted[id] = true
	}
	var out []Card
	for _, c := range deck {
		if wanted[c.Category] {
			out = append(out, c)
		}
	}
	return out
}

// CardById looks a card up by id.
func CardById(id string) (Card, bool) {
	for _, c := range deck {
		if c.Id == id {
			return c, true
		}
	}
	return Card{}, false
}

// HasEnoughCards reports whether the chosen categories can supply n distinct
// cards. The setup flow checks this before a guess session is allowed to
// start; the engine re-checks it when drawing.
func HasEnoughCards(categoryIds []string, n int) bool {
	return len(CardsByCategories(categoryIds)) >= n
}

// PickRandomDistinct draws n distinct cards from source in random order,
// skipping any id present in excludeIds. Returns fewer than n cards only
// when the source itself cannot supply them.
func PickRandomDistinct(source []Card, n int, excludeIds []string) []Card {
	excluded := make(map[string]bool, len(excludeIds))
	for _, id := range excludeIds {
		excluded[id] = true
	}
	pool := make([]Card, 0, len(source))
	for _, c := range source {
		if !excluded[c.Id] {
			pool = append(pool, c)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
