package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pentarch/dombot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	registrationKeyPrefix = "registration:"
	serverRegsKeyPrefix   = "server_registrations:"
)

// ErrRegistrationNotFound is returned when a registration is not found
var ErrRegistrationNotFound = errors.New("registration not found")

// Config holds configuration for the Redis registration repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed registration repository
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

// SaveRegistration persists a registration with a generated UUID. Any
// earlier registration by the same player for the same server is
// removed first so a player holds at most one nation per server.
func (r *redisRepository) SaveRegistration(ctx context.Context, input *SaveRegistrationInput) (*SaveRegistrationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ServerAlias == "" {
		return nil, errors.New("server alias cannot be empty")
	}

	if input.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	// Drop any existing registration for this player first
	existing, err := r.registrationsForServer(ctx, input.ServerAlias)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	serverRegsKey := fmt.Sprintf("%s%s", serverRegsKeyPrefix, input.ServerAlias)

	for _, reg := range existing {
		if reg.PlayerID == input.PlayerID {
			pipe.Del(ctx, fmt.Sprintf("%s%s", registrationKeyPrefix, reg.ID))
			pipe.SRem(ctx, serverRegsKey, reg.ID)
		}
	}

	// Create the new record
	record := &models.Registration{
		ID:          uuid.New().String(),
		ServerAlias: input.ServerAlias,
		PlayerID:    input.PlayerID,
		NationID:    input.NationID,
		CreatedAt:   time.Now(),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}

	pipe.Set(ctx, fmt.Sprintf("%s%s", registrationKeyPrefix, record.ID), recordJSON, 0)
	pipe.SAdd(ctx, serverRegsKey, record.ID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	return &SaveRegistrationOutput{Registration: record}, nil
}

// GetRegistrationsForServer retrieves all registrations for a server alias
func (r *redisRepository) GetRegistrationsForServer(ctx context.Context, input *GetRegistrationsForServerInput) (*GetRegistrationsForServerOutput, error) {
	if input == nil || input.ServerAlias == "" {
		return nil, errors.New("input and server alias cannot be empty")
	}

	registrations, err := r.registrationsForServer(ctx, input.ServerAlias)
	if err != nil {
		return nil, err
	}

	return &GetRegistrationsForServerOutput{
		Registrations: registrations,
	}, nil
}

// RemoveRegistration removes a player's registration for a server
func (r *redisRepository) RemoveRegistration(ctx context.Context, input *RemoveRegistrationInput) error {
	if input == nil || input.ServerAlias == "" || input.PlayerID == "" {
		return errors.New("input, server alias and player ID cannot be empty")
	}

	registrations, err := r.registrationsForServer(ctx, input.ServerAlias)
	if err != nil {
		return err
	}

	serverRegsKey := fmt.Sprintf("%s%s", serverRegsKeyPrefix, input.ServerAlias)
	pipe := r.client.Pipeline()
	found := false

	for _, reg := range registrations {
		if reg.PlayerID == input.PlayerID {
			pipe.Del(ctx, fmt.Sprintf("%s%s", registrationKeyPrefix, reg.ID))
			pipe.SRem(ctx, serverRegsKey, reg.ID)
			found = true
		}
	}

	if !found {
		return ErrRegistrationNotFound
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove registration: %w", err)
	}

	return nil
}

// DeleteRegistrationsForServer removes all registrations for a server
func (r *redisRepository) DeleteRegistrationsForServer(ctx context.Context, input *DeleteRegistrationsForServerInput) error {
	if input == nil || input.ServerAlias == "" {
		return errors.New("input and server alias cannot be empty")
	}

	registrations, err := r.registrationsForServer(ctx, input.ServerAlias)
	if err != nil {
		return err
	}

	serverRegsKey := fmt.Sprintf("%s%s", serverRegsKeyPrefix, input.ServerAlias)
	pipe := r.client.Pipeline()

	for _, reg := range registrations {
		pipe.Del(ctx, fmt.Sprintf("%s%s", registrationKeyPrefix, reg.ID))
	}
	pipe.Del(ctx, serverRegsKey)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete registrations: %w", err)
	}

	return nil
}

// registrationsForServer loads the registration records behind a
// server's index set
func (r *redisRepository) registrationsForServer(ctx context.Context, alias string) ([]*models.Registration, error) {
	serverRegsKey := fmt.Sprintf("%s%s", serverRegsKeyPrefix, alias)
	ids, err := r.client.SMembers(ctx, serverRegsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration IDs: %w", err)
	}

	registrations := make([]*models.Registration, 0, len(ids))
	for _, id := range ids {
		recordJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", registrationKeyPrefix, id)).Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between reading the index and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get registration %s: %w", id, err)
		}

		var record models.Registration
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal registration %s: %w", id, err)
		}

		registrations = append(registrations, &record)
	}

	return registrations, nil
}
