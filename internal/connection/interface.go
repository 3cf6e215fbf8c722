package connection

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/pentarch/dombot/internal/connection Client

import (
	"context"
)

// Client defines the interface for fetching live state from a remote
// game server and its optional overlay service
type Client interface {
	// GetGameData fetches the current game snapshot from a remote address
	GetGameData(ctx context.Context, address string) (*GameData, error)

	// GetOverlayStatus fetches overlay data for the game at the address.
	// Returns (nil, nil) when the overlay does not cover the address.
	GetOverlayStatus(ctx context.Context, address string) (*OverlayStatus, error)
}
