package registration

import (
	"github.com/pentarch/dombot/internal/models"
)

// SaveRegistrationInput contains parameters for saving a registration
type SaveRegistrationInput struct {
	// ServerAlias is the alias of the server being registered for
	ServerAlias string

	// PlayerID is the Discord user ID of the registering player
	PlayerID string

	// NationID is the numeric id of the claimed nation
	NationID uint32
}

// SaveRegistrationOutput contains the result of saving a registration
type SaveRegistrationOutput struct {
	// Registration is the persisted registration record
	Registration *models.Registration
}

// GetRegistrationsForServerInput contains parameters for retrieving registrations
type GetRegistrationsForServerInput struct {
	// ServerAlias is the alias of the server
	ServerAlias string
}

// GetRegistrationsForServerOutput contains the result of retrieving registrations
type GetRegistrationsForServerOutput struct {
	// Registrations are the registrations for the server
	Registrations []*models.Registration
}

// RemoveRegistrationInput contains parameters for removing a registration
type RemoveRegistrationInput struct {
	// ServerAlias is the alias of the server
	ServerAlias string

	// PlayerID is the Discord user ID of the player
	PlayerID string
}

// DeleteRegistrationsForServerInput contains parameters for removing all
// registrations for a server
type DeleteRegistrationsForServerInput struct {
	// ServerAlias is the alias of the server
	ServerAlias string
}
