package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pentarch/dombot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	serverKeyPrefix = "server:"
	serverIndexKey  = "servers"
)

// ErrServerNotFound is returned when a server is not found
var ErrServerNotFound = errors.New("server not found")

// Config holds configuration for the Redis server repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed server repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveServer persists a game server record to Redis
func (r *redisRepository) SaveServer(ctx context.Context, input *SaveServerInput) error {
	if input == nil || input.Server == nil {
		return errors.New("input and server cannot be nil")
	}

	if input.Server.Alias == "" {
		return errors.New("server alias cannot be empty")
	}

	// Marshal the server to JSON
	serverJSON, err := json.Marshal(input.Server)
	if err != nil {
		return fmt.Errorf("failed to marshal server: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the server and track its alias in the index set
	serverKey := fmt.Sprintf("%s%s", serverKeyPrefix, input.Server.Alias)
	pipe.Set(ctx, serverKey, serverJSON, 0)
	pipe.SAdd(ctx, serverIndexKey, input.Server.Alias)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save server: %w", err)
	}

	return nil
}

// GetServer retrieves a game server by alias from Redis
func (r *redisRepository) GetServer(ctx context.Context, input *GetServerInput) (*models.GameServer, error) {
	if input == nil || input.Alias == "" {
		return nil, errors.New("input and alias cannot be empty")
	}

	// Get the server from Redis
	serverKey := fmt.Sprintf("%s%s", serverKeyPrefix, input.Alias)
	serverJSON, err := r.client.Get(ctx, serverKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	// Unmarshal the server from JSON
	var server models.GameServer
	if err := json.Unmarshal([]byte(serverJSON), &server); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server: %w", err)
	}

	return &server, nil
}

// DeleteServer removes a game server from Redis
func (r *redisRepository) DeleteServer(ctx context.Context, input *DeleteServerInput) error {
	if input == nil || input.Alias == "" {
		return errors.New("input and alias cannot be empty")
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the server and drop it from the index set
	serverKey := fmt.Sprintf("%s%s", serverKeyPrefix, input.Alias)
	pipe.Del(ctx, serverKey)
	pipe.SRem(ctx, serverIndexKey, input.Alias)

	// Execute the transaction
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	return nil
}

// ListServers retrieves all tracked game servers from Redis
func (r *redisRepository) ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error) {
	// Get all tracked aliases from the index set
	aliases, err := r.client.SMembers(ctx, serverIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get server aliases: %w", err)
	}

	// If there are no servers, return an empty slice
	if len(aliases) == 0 {
		return &ListServersOutput{
			Servers: []*models.GameServer{},
		}, nil
	}

	// Get all servers using a pipeline
	pipe := r.client.Pipeline()
	serverCommands := make(map[string]*redis.StringCmd)

	for _, alias := range aliases {
		serverKey := fmt.Sprintf("%s%s", serverKeyPrefix, alias)
		serverCommands[alias] = pipe.Get(ctx, serverKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get servers: %w", err)
	}

	// Process the results
	servers := make([]*models.GameServer, 0, len(aliases))
	for alias, cmd := range serverCommands {
		serverJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Server was deleted between reading the index and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get server %s: %w", alias, err)
		}

		var server models.GameServer
		if err := json.Unmarshal([]byte(serverJSON), &server); err != nil {
			return nil, fmt.Errorf("failed to unmarshal server %s: %w", alias, err)
		}

		servers = append(servers, &server)
	}

	return &ListServersOutput{
		Servers: servers,
	}, nil
}
