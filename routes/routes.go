package routes

import (
	"github.com/Genrihbag/med-alias/controllers"
	"github.com/Genrihbag/med-alias/middleware"
	"github.com/Genrihbag/med-alias/services/rooms"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, roomService *rooms.RoomService) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Identity
		api.POST("/users/guest", controllers.CreateGuest(db))
		api.POST("/telegram/validate", controllers.TelegramValidate(db))

		// Card catalog (read-only)
		api.GET("/categories", controllers.GetCategories())
		api.GET("/cards/:id", controllers.GetCard())

		// Room documents
		api.POST("/rooms", controllers.CreateRoom(roomService))
		api.GET("/rooms/:id", controllers.GetRoom(roomService))
		// full-document replace can rewrite anything, so it requires a token
		api.PATCH("/rooms/:id", middleware.AuthRequired, controllers.UpdateRoom(roomService))
		api.POST("/rooms/:id/join", controllers.JoinRoom(roomService))
		api.POST("/rooms/:id/leave", controllers.LeaveRoom(roomService))

		// Guess mode actions
		api.POST("/rooms/:id/guess/countdown", controllers.StartGuessCountdown(roomService))
		api.POST("/rooms/:id/guess/start", controllers.StartGuessSession(roomService))
		api.POST("/rooms/:id/guess/submit", controllers.SubmitGuess(roomService))
		api.POST("/rooms/:id/guess/advance", controllers.AdvanceGuessQuestion(roomService))

		// Teams mode actions
		api.POST("/rooms/:id/teams/start", controllers.StartTeamsGame(roomService))
		api.POST("/rooms/:id/teams/action", controllers.ProcessTeamsCardAction(roomService))
		api.POST("/rooms/:id/teams/confirm", controllers.ApplyRoundWordConfirmation(roomService))
		api.POST("/rooms/:id/teams/nextRound", controllers.StartTeamsRound(roomService))
		api.POST("/rooms/:id/teams/finish", controllers.FinishTeamsGame(roomService))
	}
}
