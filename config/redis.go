package config

import (
	"os"

	"github.com/Genrihbag/med-alias/services/redis"
)

// Connect to Redis
func Connect_redis() (*redis.RedisClient, error) {
	redisUri := os.Getenv("REDIS_URL")
	if redisUri == "" {
		redisUri = "localhost:6379"
	}
	return redis.InitRedis(redisUri, 0)
}
