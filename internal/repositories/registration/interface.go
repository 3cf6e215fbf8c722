package registration

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pentarch/dombot/internal/repositories/registration Repository

import (
	"context"
)

// Repository defines the interface for player registration persistence
type Repository interface {
	// SaveRegistration persists a registration, replacing any earlier
	// registration by the same player for the same server
	SaveRegistration(ctx context.Context, input *SaveRegistrationInput) (*SaveRegistrationOutput, error)

	// GetRegistrationsForServer retrieves all registrations for a server alias
	GetRegistrationsForServer(ctx context.Context, input *GetRegistrationsForServerInput) (*GetRegistrationsForServerOutput, error)

	// RemoveRegistration removes a player's registration for a server
	RemoveRegistration(ctx context.Context, input *RemoveRegistrationInput) error

	// DeleteRegistrationsForServer removes all registrations for a server
	DeleteRegistrationsForServer(ctx context.Context, input *DeleteRegistrationsForServerInput) error
}
