package server

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pentarch/dombot/internal/connection"
	"github.com/pentarch/dombot/internal/models"
	"github.com/pentarch/dombot/internal/nations"
	registrationRepo "github.com/pentarch/dombot/internal/repositories/registration"
)

// GetDetails produces the reconciled, display-ready view of a server.
// Lobby servers are reconciled from the store alone; started servers
// additionally fetch the live game and overlay snapshots.
func (s *service) GetDetails(ctx context.Context, input *GetDetailsInput) (*GetDetailsOutput, error) {
	if input == nil || input.Alias == "" {
		return nil, errors.New("input and alias cannot be empty")
	}

	server, err := s.getServer(ctx, input.Alias)
	if err != nil {
		return nil, err
	}

	var details *GameDetails
	switch server.State {
	case models.StateLobby:
		details, err = s.lobbyDetails(ctx, server.Lobby, server.Alias)
	case models.StateStarted:
		details, err = s.startedDetails(ctx, server.Started, server.Alias)
	default:
		return nil, fmt.Errorf("server %s has invalid state %q", server.Alias, server.State)
	}
	if err != nil {
		return nil, err
	}

	return &GetDetailsOutput{Details: details}, nil
}

// GetDetailsWithSnapshot reconciles a started server from a cached
// remote snapshot. Registrations are always re-read fresh; only the
// remote fetches are reused.
func (s *service) GetDetailsWithSnapshot(ctx context.Context, input *GetDetailsWithSnapshotInput) (*GetDetailsOutput, error) {
	if input == nil || input.Alias == "" {
		return nil, errors.New("input and alias cannot be empty")
	}

	if input.Entry == nil || input.Entry.GameData == nil {
		return nil, errors.New("cache entry cannot be nil")
	}

	server, err := s.getServer(ctx, input.Alias)
	if err != nil {
		return nil, err
	}

	if server.State != models.StateStarted {
		return nil, fmt.Errorf("server %s is not started", server.Alias)
	}

	details, err := s.startedDetailsFromSnapshot(ctx, server.Started, server.Alias, input.Entry)
	if err != nil {
		return nil, err
	}

	return &GetDetailsOutput{Details: details}, nil
}

// lobbyDetails reconciles a lobby server from its registrations. The
// overlay is never consulted; there is no live game to describe.
func (s *service) lobbyDetails(ctx context.Context, lobby *models.LobbyState, alias string) (*GameDetails, error) {
	registrations, err := s.getRegistrations(ctx, alias)
	if err != nil {
		return nil, err
	}

	players := make([]LobbyPlayer, 0, len(registrations))
	for _, reg := range registrations {
		players = append(players, LobbyPlayer{
			PlayerID:   reg.PlayerID,
			NationID:   reg.NationID,
			NationName: nations.Name(reg.NationID),
		})
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].NationName < players[j].NationName
	})

	remainingSlots := lobby.PlayerCount - len(players)
	if remainingSlots < 0 {
		remainingSlots = 0
	}

	return &GameDetails{
		Alias:       alias,
		Owner:       lobby.Owner,
		Description: lobby.Description,
		Nations: &LobbyDetails{
			Players:        players,
			Era:            lobby.Era,
			RemainingSlots: remainingSlots,
		},
		// Lobbies have no cache entry; nothing remote was fetched
		CacheEntry: nil,
	}, nil
}

// startedDetails fetches the live game and overlay snapshots, then
// reconciles. Either fetch failing fails the call as a whole.
func (s *service) startedDetails(ctx context.Context, started *models.StartedState, alias string) (*GameDetails, error) {
	data, err := s.connection.GetGameData(ctx, started.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	overlay, err := s.connection.GetOverlayStatus(ctx, started.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	entry := &CacheEntry{
		GameData:  data,
		Overlay:   overlay,
		FetchedAt: s.clock.Now(),
	}

	return s.startedDetailsFromSnapshot(ctx, started, alias, entry)
}

// startedDetailsFromSnapshot is the core reconciliation: a fresh store
// read joined against the snapshot's live nations, classified by the
// snapshot's turn number.
func (s *service) startedDetailsFromSnapshot(ctx context.Context, started *models.StartedState, alias string, entry *CacheEntry) (*GameDetails, error) {
	registrations, err := s.getRegistrations(ctx, alias)
	if err != nil {
		return nil, err
	}

	data := entry.GameData
	players := joinPlayersWithNations(data.Nations, registrations, entry.Overlay)

	var state StartedStateDetails
	if data.Turn < 0 {
		// Between turns: the game only reports nations whose pretender
		// upload has registered
		uploading := make([]UploadingPlayer, 0, len(players))
		for _, player := range players {
			switch player.(type) {
			case RegisteredAndGame, GameOnly:
				uploading = append(uploading, UploadingPlayer{Player: player, Uploaded: true})
			case RegisteredOnly:
				uploading = append(uploading, UploadingPlayer{Player: player, Uploaded: false})
			}
		}
		state = &UploadingState{Players: uploading}
	} else {
		totalMins := data.TurnTimer / (1000 * 60)
		hours := totalMins / 60
		mins := totalMins - hours*60
		state = &PlayingState{
			Players:        players,
			Turn:           data.Turn,
			HoursRemaining: hours,
			MinsRemaining:  mins,
		}
	}

	details := &GameDetails{
		Alias: alias,
		Nations: &StartedDetails{
			Address:  started.Address,
			GameName: data.GameName,
			State:    state,
		},
		CacheEntry: entry,
	}

	// Owner and description come from the retained lobby, when the
	// server went through one
	if started.Lobby != nil {
		details.Owner = started.Lobby.Owner
		details.Description = started.Lobby.Description
	}

	return details, nil
}

// joinPlayersWithNations joins registrations against the live nation
// list. Matched registrations are consumed from a lookup keyed by
// nation id; whatever remains afterwards was registered but is not
// visible in the live game.
func joinPlayersWithNations(liveNations []connection.Nation, registrations []*models.Registration, overlay *connection.OverlayStatus) []PotentialPlayer {
	players := make([]PotentialPlayer, 0, len(liveNations)+len(registrations))

	registrationsByNation := make(map[uint32]*models.Registration, len(registrations))
	for _, reg := range registrations {
		// Duplicate nation claims resolve last-write-wins
		registrationsByNation[reg.NationID] = reg
	}

	for _, nation := range liveNations {
		details := PlayerDetails{
			NationID:   nation.ID,
			NationName: nationDisplayName(overlay, nation.ID),
			Submitted:  nation.Submitted,
			Status:     nation.Status,
		}

		if reg, ok := registrationsByNation[nation.ID]; ok {
			delete(registrationsByNation, nation.ID)
			players = append(players, RegisteredAndGame{
				Player:  reg.PlayerID,
				Details: details,
			})
		} else {
			players = append(players, GameOnly{Details: details})
		}
	}

	// Registered but not visible live: the overlay by definition has
	// nothing to say about these, so the catalog names them
	for nationID, reg := range registrationsByNation {
		players = append(players, RegisteredOnly{
			Player: reg.PlayerID,
			Nation: nationID,
			Name:   nations.Name(nationID),
		})
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].NationName() < players[j].NationName()
	})

	return players
}

// nationDisplayName resolves a live nation's display name, preferring
// the overlay over the static catalog
func nationDisplayName(overlay *connection.OverlayStatus, nationID uint32) string {
	if overlay != nil {
		if nation, ok := overlay.Nations[nationID]; ok {
			return nation.Name
		}
	}
	return nations.Name(nationID)
}

// getRegistrations reads the alias's registrations, mapping repository
// errors to service errors
func (s *service) getRegistrations(ctx context.Context, alias string) ([]*models.Registration, error) {
	out, err := s.registrationRepo.GetRegistrationsForServer(ctx, &registrationRepo.GetRegistrationsForServerInput{
		ServerAlias: alias,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return out.Registrations, nil
}
