package server

import (
	"time"

	"github.com/pentarch/dombot/internal/common/clock"
	"github.com/pentarch/dombot/internal/connection"
	"github.com/pentarch/dombot/internal/models"
	"github.com/pentarch/dombot/internal/nations"
	registrationRepo "github.com/pentarch/dombot/internal/repositories/registration"
	serverRepo "github.com/pentarch/dombot/internal/repositories/server"
)

// Config holds configuration for the server tracking service
type Config struct {
	// Repository dependencies
	ServerRepo       serverRepo.Repository
	RegistrationRepo registrationRepo.Repository

	// Connection is the client for live game and overlay fetches
	Connection connection.Client

	// Clock stamps cache entries
	Clock clock.Clock
}

// AddServerInput contains parameters for adopting a running game
type AddServerInput struct {
	// Address identifies the remote game server
	Address string

	// Alias is the proposed unique key for the server
	Alias string
}

// AddServerOutput contains the result of adopting a running game
type AddServerOutput struct {
	// Server is the stored game server record
	Server *models.GameServer
}

// AddLobbyInput contains parameters for creating a lobby
type AddLobbyInput struct {
	// Alias is the proposed unique key for the lobby
	Alias string

	// Owner is the Discord user ID of the lobby creator
	Owner string

	// Description is optional free text shown with the lobby
	Description string

	// Era is the optional era the lobby is restricted to
	Era *nations.Era

	// PlayerCount is the target player capacity
	PlayerCount int
}

// AddLobbyOutput contains the result of creating a lobby
type AddLobbyOutput struct {
	// Server is the stored game server record
	Server *models.GameServer
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	// Alias is the server the player is registering for
	Alias string

	// PlayerID is the Discord user ID of the player
	PlayerID string

	// NationID is the numeric id of the claimed nation
	NationID uint32
}

// RegisterPlayerOutput contains the result of registering a player
type RegisterPlayerOutput struct {
	// Registration is the persisted registration record
	Registration *models.Registration

	// NationName is the catalog name of the claimed nation
	NationName string
}

// UnregisterPlayerInput contains parameters for unregistering a player
type UnregisterPlayerInput struct {
	// Alias is the server the player is unregistering from
	Alias string

	// PlayerID is the Discord user ID of the player
	PlayerID string
}

// UnregisterPlayerOutput contains the result of unregistering a player
type UnregisterPlayerOutput struct {
	// Success indicates if a registration was removed
	Success bool
}

// GetDetailsInput contains parameters for reconciling a server
type GetDetailsInput struct {
	// Alias is the unique key of the server
	Alias string
}

// GetDetailsOutput contains the reconciled detail view
type GetDetailsOutput struct {
	// Details is the display-ready reconciled view
	Details *GameDetails
}

// GetDetailsWithSnapshotInput contains parameters for reconciling a
// started server from a cached remote snapshot
type GetDetailsWithSnapshotInput struct {
	// Alias is the unique key of the server
	Alias string

	// Entry is the previously fetched remote snapshot
	Entry *CacheEntry
}

// ListServersInput contains parameters for listing servers
type ListServersInput struct{}

// ListServersOutput contains the result of listing servers
type ListServersOutput struct {
	// Servers are all tracked servers
	Servers []*models.GameServer
}

// RemoveServerInput contains parameters for removing a server
type RemoveServerInput struct {
	// Alias is the unique key of the server
	Alias string
}

// RemoveServerOutput contains the result of removing a server
type RemoveServerOutput struct {
	// Success indicates if the server was removed
	Success bool
}

// CacheEntry bundles the remote fetches behind one reconciliation. It
// covers the live game call and the overlay call but never store data,
// so callers may reuse it across calls while re-reading the store.
type CacheEntry struct {
	// GameData is the live game snapshot
	GameData *connection.GameData

	// Overlay is the overlay snapshot; nil when the overlay does not
	// cover the game's address
	Overlay *connection.OverlayStatus

	// FetchedAt is when the remote calls were made
	FetchedAt time.Time
}

// GameDetails is the fully reconciled, display-ready view of a server
type GameDetails struct {
	// Alias is the unique key of the server
	Alias string

	// Owner is the lobby owner's Discord user ID; empty when unknown
	Owner string

	// Description is the lobby description; empty when unknown
	Description string

	// Nations is the state-specific detail payload
	Nations NationDetails

	// CacheEntry holds the remote snapshot behind this view; nil for
	// lobbies, always set for started servers
	CacheEntry *CacheEntry
}

// NationDetails is the state-specific payload of a reconciled view. It
// is either a *LobbyDetails or a *StartedDetails.
type NationDetails interface {
	isNationDetails()
}

// LobbyDetails is the reconciled view of a lobby server
type LobbyDetails struct {
	// Players are the registered players, sorted by nation name
	Players []LobbyPlayer

	// Era is the optional era the lobby is restricted to
	Era *nations.Era

	// RemainingSlots is the unclaimed capacity, never negative
	RemainingSlots int
}

func (*LobbyDetails) isNationDetails() {}

// LobbyPlayer is one registered player in a lobby
type LobbyPlayer struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// NationID is the numeric id of the claimed nation
	NationID uint32

	// NationName is the catalog name of the claimed nation
	NationName string
}

// StartedDetails is the reconciled view of a started server
type StartedDetails struct {
	// Address identifies the remote game server
	Address string

	// GameName is the display name the remote game reports
	GameName string

	// State is the classified game state
	State StartedStateDetails
}

func (*StartedDetails) isNationDetails() {}

// StartedStateDetails classifies a started game. It is either a
// *PlayingState or an *UploadingState.
type StartedStateDetails interface {
	isStartedStateDetails()
}

// PlayingState is a started game actively playing a turn
type PlayingState struct {
	// Players are the reconciled nation slots, sorted by nation name
	Players []PotentialPlayer

	// Turn is the current turn number
	Turn int32

	// HoursRemaining is the whole hours left on the turn timer
	HoursRemaining int32

	// MinsRemaining is the leftover minutes on the turn timer
	MinsRemaining int32
}

func (*PlayingState) isStartedStateDetails() {}

// UploadingState is a started game between turns, awaiting uploads
type UploadingState struct {
	// Players are the reconciled nation slots with upload flags,
	// sorted by nation name
	Players []UploadingPlayer
}

func (*UploadingState) isStartedStateDetails() {}

// PotentialPlayer is one reconciled nation slot. It is exactly one of
// RegisteredOnly, RegisteredAndGame or GameOnly depending on where the
// slot was observed; consumers dispatch with a type switch.
type PotentialPlayer interface {
	// NationID returns the slot's nation id
	NationID() uint32

	// NationName returns the slot's resolved display name
	NationName() string

	// PlayerID returns the registered player, if any
	PlayerID() (string, bool)

	isPotentialPlayer()
}

// RegisteredOnly is a registration with no matching live nation
type RegisteredOnly struct {
	// Player is the Discord user ID of the registered player
	Player string

	// Nation is the registered nation id
	Nation uint32

	// Name is the catalog name of the nation
	Name string
}

func (p RegisteredOnly) NationID() uint32         { return p.Nation }
func (p RegisteredOnly) NationName() string       { return p.Name }
func (p RegisteredOnly) PlayerID() (string, bool) { return p.Player, true }
func (RegisteredOnly) isPotentialPlayer()         {}

// RegisteredAndGame is a registration matched by a live nation
type RegisteredAndGame struct {
	// Player is the Discord user ID of the registered player
	Player string

	// Details is the live nation data
	Details PlayerDetails
}

func (p RegisteredAndGame) NationID() uint32         { return p.Details.NationID }
func (p RegisteredAndGame) NationName() string       { return p.Details.NationName }
func (p RegisteredAndGame) PlayerID() (string, bool) { return p.Player, true }
func (RegisteredAndGame) isPotentialPlayer()         {}

// GameOnly is a live nation with no matching registration
type GameOnly struct {
	// Details is the live nation data
	Details PlayerDetails
}

func (p GameOnly) NationID() uint32       { return p.Details.NationID }
func (p GameOnly) NationName() string     { return p.Details.NationName }
func (GameOnly) PlayerID() (string, bool) { return "", false }
func (GameOnly) isPotentialPlayer()       {}

// PlayerDetails is the live data carried by a nation slot
type PlayerDetails struct {
	// NationID is the numeric nation id
	NationID uint32

	// NationName is the resolved display name
	NationName string

	// Submitted is the nation's turn submission status
	Submitted connection.SubmissionStatus

	// Status is the nation's in-game status
	Status connection.NationStatus
}

// UploadingPlayer wraps a nation slot with its upload flag
type UploadingPlayer struct {
	// Player is the underlying reconciled slot
	Player PotentialPlayer

	// Uploaded is true when the live game can see the nation
	Uploaded bool
}

// NationName returns the wrapped slot's display name
func (u UploadingPlayer) NationName() string {
	return u.Player.NationName()
}
