package server

import (
	"github.com/pentarch/dombot/internal/models"
)

// SaveServerInput contains parameters for saving a game server
type SaveServerInput struct {
	// Server is the game server record to persist
	Server *models.GameServer
}

// GetServerInput contains parameters for retrieving a game server
type GetServerInput struct {
	// Alias is the unique key of the server
	Alias string
}

// DeleteServerInput contains parameters for deleting a game server
type DeleteServerInput struct {
	// Alias is the unique key of the server
	Alias string
}

// ListServersInput contains parameters for listing game servers
type ListServersInput struct{}

// ListServersOutput contains the result of listing game servers
type ListServersOutput struct {
	// Servers are all tracked game servers
	Servers []*models.GameServer
}
