package models

import (
	"github.com/pentarch/dombot/internal/nations"
)

// GameServerState discriminates the two states a tracked server can be in
type GameServerState string

const (
	// StateLobby indicates a server that has not started yet
	StateLobby GameServerState = "lobby"

	// StateStarted indicates a server bound to a running remote game
	StateStarted GameServerState = "started"
)

// GameServer represents one tracked game server, keyed by alias
type GameServer struct {
	// Alias is the unique, case-sensitive key for this server
	Alias string

	// State is the current state of the server
	State GameServerState

	// Lobby holds the lobby data; set only when State is StateLobby
	Lobby *LobbyState

	// Started holds the started data; set only when State is StateStarted
	Started *StartedState
}

// LobbyState holds the pre-start data for a server
type LobbyState struct {
	// Owner is the Discord user ID of the lobby creator
	Owner string

	// Description is optional free text shown with the lobby
	Description string

	// Era is the optional era the lobby is restricted to
	Era *nations.Era

	// PlayerCount is the target player capacity
	PlayerCount int
}

// StartedState holds the data for a server bound to a running game
type StartedState struct {
	// Address identifies the remote game server
	Address string

	// LastSeenTurn is the turn number last observed on the remote game
	LastSeenTurn int32

	// Lobby retains the originating lobby data for display continuity.
	// Nil for servers adopted directly while already running; that
	// absence is meaningful and round-trips through persistence.
	Lobby *LobbyState
}
