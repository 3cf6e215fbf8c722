package models

import (
	"time"
)

// Registration records that a player claimed a nation on a tracked server
type Registration struct {
	// ID is the unique identifier for the registration
	ID string

	// ServerAlias is the alias of the server the registration belongs to
	ServerAlias string

	// PlayerID is the Discord user ID of the registered player
	PlayerID string

	// NationID is the numeric id of the claimed nation
	NationID uint32

	// CreatedAt is when the registration was made
	CreatedAt time.Time
}
