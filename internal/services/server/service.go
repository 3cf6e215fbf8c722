package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/pentarch/dombot/internal/common/clock"
	"github.com/pentarch/dombot/internal/connection"
	"github.com/pentarch/dombot/internal/models"
	"github.com/pentarch/dombot/internal/nations"
	registrationRepo "github.com/pentarch/dombot/internal/repositories/registration"
	serverRepo "github.com/pentarch/dombot/internal/repositories/server"
)

// service implements the Service interface
type service struct {
	serverRepo       serverRepo.Repository
	registrationRepo registrationRepo.Repository
	connection       connection.Client
	clock            clock.Clock
}

// New creates a new server tracking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ServerRepo == nil {
		return nil, ErrNilServerRepo
	}

	if cfg.RegistrationRepo == nil {
		return nil, ErrNilRegistrationRepo
	}

	if cfg.Connection == nil {
		return nil, ErrNilConnection
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		serverRepo:       cfg.ServerRepo,
		registrationRepo: cfg.RegistrationRepo,
		connection:       cfg.Connection,
		clock:            cfg.Clock,
	}, nil
}

// AddServer adopts an already-running remote game under an alias. The
// address is probed first; nothing is written when the probe fails.
func (s *service) AddServer(ctx context.Context, input *AddServerInput) (*AddServerOutput, error) {
	if input == nil || input.Address == "" || input.Alias == "" {
		return nil, errors.New("input, address and alias cannot be empty")
	}

	if err := s.checkAliasFree(ctx, input.Alias); err != nil {
		return nil, err
	}

	// Probe the address before admitting the record
	data, err := s.connection.GetGameData(ctx, input.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	server := &models.GameServer{
		Alias: input.Alias,
		State: models.StateStarted,
		Started: &models.StartedState{
			Address:      input.Address,
			LastSeenTurn: data.Turn,
		},
	}

	err = s.serverRepo.SaveServer(ctx, &serverRepo.SaveServerInput{
		Server: server,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &AddServerOutput{
		Server: server,
	}, nil
}

// AddLobby creates a new lobby under an alias
func (s *service) AddLobby(ctx context.Context, input *AddLobbyInput) (*AddLobbyOutput, error) {
	if input == nil || input.Alias == "" || input.Owner == "" {
		return nil, errors.New("input, alias and owner cannot be empty")
	}

	if input.PlayerCount <= 0 {
		return nil, errors.New("player count must be positive")
	}

	if err := s.checkAliasFree(ctx, input.Alias); err != nil {
		return nil, err
	}

	server := &models.GameServer{
		Alias: input.Alias,
		State: models.StateLobby,
		Lobby: &models.LobbyState{
			Owner:       input.Owner,
			Description: input.Description,
			Era:         input.Era,
			PlayerCount: input.PlayerCount,
		},
	}

	err := s.serverRepo.SaveServer(ctx, &serverRepo.SaveServerInput{
		Server: server,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &AddLobbyOutput{
		Server: server,
	}, nil
}

// RegisterPlayer records a player's claim on a nation for a server
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.Alias == "" || input.PlayerID == "" {
		return nil, errors.New("input, alias and player ID cannot be empty")
	}

	if !nations.Exists(input.NationID) {
		return nil, ErrInvalidNation
	}

	// The server must exist
	if _, err := s.getServer(ctx, input.Alias); err != nil {
		return nil, err
	}

	out, err := s.registrationRepo.SaveRegistration(ctx, &registrationRepo.SaveRegistrationInput{
		ServerAlias: input.Alias,
		PlayerID:    input.PlayerID,
		NationID:    input.NationID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &RegisterPlayerOutput{
		Registration: out.Registration,
		NationName:   nations.Name(input.NationID),
	}, nil
}

// UnregisterPlayer removes a player's registration for a server
func (s *service) UnregisterPlayer(ctx context.Context, input *UnregisterPlayerInput) (*UnregisterPlayerOutput, error) {
	if input == nil || input.Alias == "" || input.PlayerID == "" {
		return nil, errors.New("input, alias and player ID cannot be empty")
	}

	if _, err := s.getServer(ctx, input.Alias); err != nil {
		return nil, err
	}

	err := s.registrationRepo.RemoveRegistration(ctx, &registrationRepo.RemoveRegistrationInput{
		ServerAlias: input.Alias,
		PlayerID:    input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return &UnregisterPlayerOutput{Success: false}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &UnregisterPlayerOutput{Success: true}, nil
}

// ListServers retrieves all tracked servers
func (s *service) ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error) {
	out, err := s.serverRepo.ListServers(ctx, &serverRepo.ListServersInput{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &ListServersOutput{
		Servers: out.Servers,
	}, nil
}

// RemoveServer stops tracking a server and drops its registrations
func (s *service) RemoveServer(ctx context.Context, input *RemoveServerInput) (*RemoveServerOutput, error) {
	if input == nil || input.Alias == "" {
		return nil, errors.New("input and alias cannot be empty")
	}

	if _, err := s.getServer(ctx, input.Alias); err != nil {
		return nil, err
	}

	err := s.registrationRepo.DeleteRegistrationsForServer(ctx, &registrationRepo.DeleteRegistrationsForServerInput{
		ServerAlias: input.Alias,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	err = s.serverRepo.DeleteServer(ctx, &serverRepo.DeleteServerInput{
		Alias: input.Alias,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return &RemoveServerOutput{Success: true}, nil
}

// getServer fetches a server record, mapping repository errors to
// service errors
func (s *service) getServer(ctx context.Context, alias string) (*models.GameServer, error) {
	server, err := s.serverRepo.GetServer(ctx, &serverRepo.GetServerInput{
		Alias: alias,
	})
	if err != nil {
		if errors.Is(err, serverRepo.ErrServerNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return server, nil
}

// checkAliasFree fails when the alias already has a record
func (s *service) checkAliasFree(ctx context.Context, alias string) error {
	_, err := s.serverRepo.GetServer(ctx, &serverRepo.GetServerInput{
		Alias: alias,
	})
	if err == nil {
		return ErrServerAlreadyExists
	}

	if !errors.Is(err, serverRepo.ErrServerNotFound) {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return nil
}
