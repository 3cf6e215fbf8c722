package server

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pentarch/dombot/internal/repositories/server Repository

import (
	"context"

	"github.com/pentarch/dombot/internal/models"
)

// Repository defines the interface for game server persistence
type Repository interface {
	// SaveServer persists a game server record
	SaveServer(ctx context.Context, input *SaveServerInput) error

	// GetServer retrieves a game server by alias
	GetServer(ctx context.Context, input *GetServerInput) (*models.GameServer, error)

	// DeleteServer removes a game server
	DeleteServer(ctx context.Context, input *DeleteServerInput) error

	// ListServers retrieves all tracked game servers
	ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error)
}
