package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pentarch/dombot/internal/cache"
	"github.com/pentarch/dombot/internal/common/clock"
	"github.com/pentarch/dombot/internal/connection"
	"github.com/pentarch/dombot/internal/handlers/discord"
	registrationRepo "github.com/pentarch/dombot/internal/repositories/registration"
	serverRepo "github.com/pentarch/dombot/internal/repositories/server"
	serverService "github.com/pentarch/dombot/internal/services/server"
)

func main() {
	// Load .env when present; real deployments use the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	servers, err := serverRepo.NewRedis(&serverRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create server repository: %v", err)
	}

	registrations, err := registrationRepo.NewRedis(&registrationRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create registration repository: %v", err)
	}

	// Initialize the connection client
	conn, err := connection.NewHTTP(&connection.Config{
		OverlayHost:    getEnv("OVERLAY_HOST", ""),
		OverlayAPIBase: getEnv("OVERLAY_API_BASE", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create connection client: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize the server tracking service
	serverSvc, err := serverService.New(&serverService.Config{
		ServerRepo:       servers,
		RegistrationRepo: registrations,
		Connection:       conn,
		Clock:            systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create server service: %v", err)
	}

	// Initialize the snapshot cache
	cacheTTL, err := time.ParseDuration(getEnv("DETAILS_CACHE_TTL", "2m"))
	if err != nil {
		log.Fatalf("Invalid DETAILS_CACHE_TTL: %v", err)
	}

	snapshotCache, err := cache.New(&cache.Config{
		TTL:   cacheTTL,
		Clock: systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create snapshot cache: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: applicationID,
		GuildID:       guildID,
		ServerService: serverSvc,
		SnapshotCache: snapshotCache,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
