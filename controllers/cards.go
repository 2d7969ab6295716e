package controllers

import (
	"net/http"

	"github.com/Genrihbag/med-alias/services/cards"

	"github.com/gin-gonic/gin"
)

// @Summary Lists card categories
// @Description Returns the catalog's category metadata plus card counts, for the setup screens
// @Tags cards
// @Produce json
// @Success 200 {object} object{categories=[]object}
// @Router /api/categories [get]
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0, len(cards.Categories))
		for _, id := range cards.AllCategoryIds() {
			cat := cards.Categories[id]
			out = append(out, gin.H{
				"id":          cat.Id,
				"label":       cat.Label,
				"icon":        cat.Icon,
				"points":      cat.Points,
				"description": cat.Description,
				"cardCount":   len(cards.CardsByCategories([]string{id})),
			})
		}
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}

// @Summary Fetches a card by id
// @Tags cards
// @Produce json
// @Param id path string true "Card id"
// @Success 200 {object} object{id=string,word=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cards/{id} [get]
func GetCard() gin.HandlerFunc {
	return func(c *gin.Context) {
		card, ok := cards.CardById(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		c.JSON(http.StatusOK, card)
	}
}
