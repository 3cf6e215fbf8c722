package server

import "context"

// Service defines the interface for server tracking operations
type Service interface {
	// AddServer adopts an already-running remote game under an alias
	AddServer(ctx context.Context, input *AddServerInput) (*AddServerOutput, error)

	// AddLobby creates a new lobby under an alias
	AddLobby(ctx context.Context, input *AddLobbyInput) (*AddLobbyOutput, error)

	// RegisterPlayer records a player's claim on a nation for a server
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// UnregisterPlayer removes a player's registration for a server
	UnregisterPlayer(ctx context.Context, input *UnregisterPlayerInput) (*UnregisterPlayerOutput, error)

	// GetDetails produces the reconciled, display-ready view of a server
	GetDetails(ctx context.Context, input *GetDetailsInput) (*GetDetailsOutput, error)

	// GetDetailsWithSnapshot reconciles a started server from a cached
	// remote snapshot, re-reading only the store
	GetDetailsWithSnapshot(ctx context.Context, input *GetDetailsWithSnapshotInput) (*GetDetailsOutput, error)

	// ListServers retrieves all tracked servers
	ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error)

	// RemoveServer stops tracking a server and drops its registrations
	RemoveServer(ctx context.Context, input *RemoveServerInput) (*RemoveServerOutput, error)
}
