package main

import (
	"log"
	"os"

	"github.com/Genrihbag/med-alias/config"
	"github.com/Genrihbag/med-alias/middleware"
	"github.com/Genrihbag/med-alias/routes"
	redis_store "github.com/Genrihbag/med-alias/services/redis"
	"github.com/Genrihbag/med-alias/services/rooms"
	"github.com/Genrihbag/med-alias/services/sync"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Setup DB conn
	db, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	if err := config.MigrateDatabase(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Connect to Redis
	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redis_store.CloseRedis(redisClient)

	roomService := rooms.NewRoomService(redisClient, rooms.BuiltinCatalog{})

	// Archive final scores before the room documents expire
	syncManager := sync.NewSyncManager(db)
	roomService.OnFinished = syncManager.ArchiveFinishedRoom

	r := gin.Default()
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, db, roomService)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// Start server
	log.Printf("Server started on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
