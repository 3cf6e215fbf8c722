package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/pentarch/dombot/internal/common/clock/mocks"
	"github.com/pentarch/dombot/internal/connection"
	connectionMocks "github.com/pentarch/dombot/internal/connection/mocks"
	"github.com/pentarch/dombot/internal/models"
	"github.com/pentarch/dombot/internal/nations"
	registrationRepo "github.com/pentarch/dombot/internal/repositories/registration"
	registrationMocks "github.com/pentarch/dombot/internal/repositories/registration/mocks"
	serverRepo "github.com/pentarch/dombot/internal/repositories/server"
	serverMocks "github.com/pentarch/dombot/internal/repositories/server/mocks"
)

type DetailsTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockServerRepo       *serverMocks.MockRepository
	mockRegistrationRepo *registrationMocks.MockRepository
	mockConnection       *connectionMocks.MockClient
	mockClock            *clockMocks.MockClock
	service              Service
	ctx                  context.Context

	// Test data
	testTime      time.Time
	testAlias     string
	testAddress   string
	startedServer *models.GameServer
}

func (s *DetailsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockServerRepo = serverMocks.NewMockRepository(s.mockCtrl)
	s.mockRegistrationRepo = registrationMocks.NewMockRepository(s.mockCtrl)
	s.mockConnection = connectionMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testAlias = "midnight"
	s.testAddress = "games.example.com:30012"
	s.startedServer = &models.GameServer{
		Alias: s.testAlias,
		State: models.StateStarted,
		Started: &models.StartedState{
			Address:      s.testAddress,
			LastSeenTurn: 12,
		},
	}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		ServerRepo:       s.mockServerRepo,
		RegistrationRepo: s.mockRegistrationRepo,
		Connection:       s.mockConnection,
		Clock:            s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *DetailsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDetailsTestSuite(t *testing.T) {
	suite.Run(t, new(DetailsTestSuite))
}

func (s *DetailsTestSuite) expectGetServer(server *models.GameServer) {
	s.mockServerRepo.EXPECT().
		GetServer(s.ctx, &serverRepo.GetServerInput{Alias: s.testAlias}).
		Return(server, nil)
}

func (s *DetailsTestSuite) expectRegistrations(registrations ...*models.Registration) {
	s.mockRegistrationRepo.EXPECT().
		GetRegistrationsForServer(s.ctx, &registrationRepo.GetRegistrationsForServerInput{
			ServerAlias: s.testAlias,
		}).
		Return(&registrationRepo.GetRegistrationsForServerOutput{
			Registrations: registrations,
		}, nil)
}

func registration(alias, playerID string, nationID uint32) *models.Registration {
	return &models.Registration{
		ID:          "reg-" + playerID,
		ServerAlias: alias,
		PlayerID:    playerID,
		NationID:    nationID,
	}
}

func (s *DetailsTestSuite) TestLobbyDetails() {
	era := nations.EraEarly
	s.expectGetServer(&models.GameServer{
		Alias: s.testAlias,
		State: models.StateLobby,
		Lobby: &models.LobbyState{
			Owner:       "owner-id",
			Description: "Beginners welcome",
			Era:         &era,
			PlayerCount: 6,
		},
	})
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7),  // Ulm
		registration(s.testAlias, "player-2", 13), // Abysia
		registration(s.testAlias, "player-3", 9),  // Sauromatia
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	details := output.Details
	s.Equal(s.testAlias, details.Alias)
	s.Equal("owner-id", details.Owner)
	s.Equal("Beginners welcome", details.Description)
	s.Nil(details.CacheEntry)

	lobby, ok := details.Nations.(*LobbyDetails)
	s.Require().True(ok)
	s.Require().NotNil(lobby.Era)
	s.Equal(nations.EraEarly, *lobby.Era)
	s.Equal(3, lobby.RemainingSlots)

	// Players sort ascending by nation name
	s.Require().Len(lobby.Players, 3)
	s.Equal("Abysia", lobby.Players[0].NationName)
	s.Equal("player-2", lobby.Players[0].PlayerID)
	s.Equal("Sauromatia", lobby.Players[1].NationName)
	s.Equal("Ulm", lobby.Players[2].NationName)
}

func (s *DetailsTestSuite) TestLobbyRemainingSlotsClampAtZero() {
	s.expectGetServer(&models.GameServer{
		Alias: s.testAlias,
		State: models.StateLobby,
		Lobby: &models.LobbyState{Owner: "owner-id", PlayerCount: 2},
	})
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7),
		registration(s.testAlias, "player-2", 13),
		registration(s.testAlias, "player-3", 9),
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	lobby, ok := output.Details.Nations.(*LobbyDetails)
	s.Require().True(ok)
	s.Equal(0, lobby.RemainingSlots)
}

func (s *DetailsTestSuite) TestPlayingDetails() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{
			GameName:  "Glory of the Pretenders",
			Turn:      12,
			TurnTimer: 7380000, // 2h 3m
			Nations: []connection.Nation{
				{ID: 7, Submitted: connection.SubmissionDone, Status: connection.NationStatusHuman},
				{ID: 9, Submitted: connection.SubmissionNone, Status: connection.NationStatusHuman},
			},
		}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, nil)
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7),  // matches a live nation
		registration(s.testAlias, "player-2", 13), // not visible live
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	details := output.Details
	started, ok := details.Nations.(*StartedDetails)
	s.Require().True(ok)
	s.Equal(s.testAddress, started.Address)
	s.Equal("Glory of the Pretenders", started.GameName)

	playing, ok := started.State.(*PlayingState)
	s.Require().True(ok)
	s.Equal(int32(12), playing.Turn)
	s.Equal(int32(2), playing.HoursRemaining)
	s.Equal(int32(3), playing.MinsRemaining)

	// Every registration and every live nation appears exactly once,
	// sorted by nation name: Abysia(13), Sauromatia(9), Ulm(7)
	s.Require().Len(playing.Players, 3)

	registeredOnly, ok := playing.Players[0].(RegisteredOnly)
	s.Require().True(ok)
	s.Equal("player-2", registeredOnly.Player)
	s.Equal(uint32(13), registeredOnly.Nation)
	s.Equal("Abysia", registeredOnly.Name)

	gameOnly, ok := playing.Players[1].(GameOnly)
	s.Require().True(ok)
	s.Equal(uint32(9), gameOnly.Details.NationID)
	s.Equal("Sauromatia", gameOnly.Details.NationName)
	_, hasPlayer := gameOnly.PlayerID()
	s.False(hasPlayer)

	matched, ok := playing.Players[2].(RegisteredAndGame)
	s.Require().True(ok)
	s.Equal("player-1", matched.Player)
	s.Equal(uint32(7), matched.Details.NationID)
	s.Equal(connection.SubmissionDone, matched.Details.Submitted)

	// The remote snapshot is always surfaced for started servers
	s.Require().NotNil(details.CacheEntry)
	s.Equal(s.testTime, details.CacheEntry.FetchedAt)
	s.NotNil(details.CacheEntry.GameData)
}

func (s *DetailsTestSuite) TestUploadingDetails() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{
			GameName: "Glory of the Pretenders",
			Turn:     -1, // between games: uploads in progress
			Nations: []connection.Nation{
				{ID: 13, Status: connection.NationStatusHuman},
				{ID: 9, Status: connection.NationStatusHuman},
			},
		}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, nil)
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7), // no pretender visible yet
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	started, ok := output.Details.Nations.(*StartedDetails)
	s.Require().True(ok)

	uploading, ok := started.State.(*UploadingState)
	s.Require().True(ok)

	// Sorted by name: Abysia(13), Sauromatia(9), Ulm(7). Nations the
	// live game reports have uploaded; registered-only ones have not.
	s.Require().Len(uploading.Players, 3)
	s.Equal("Abysia", uploading.Players[0].NationName())
	s.True(uploading.Players[0].Uploaded)
	s.Equal("Sauromatia", uploading.Players[1].NationName())
	s.True(uploading.Players[1].Uploaded)
	s.Equal("Ulm", uploading.Players[2].NationName())
	s.False(uploading.Players[2].Uploaded)

	registeredOnly, ok := uploading.Players[2].Player.(RegisteredOnly)
	s.Require().True(ok)
	s.Equal("player-1", registeredOnly.Player)
}

func (s *DetailsTestSuite) TestOverlayNamesPreferred() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{
			GameName: "Glory of the Pretenders",
			Turn:     3,
			Nations: []connection.Nation{
				{ID: 7, Status: connection.NationStatusHuman},
				{ID: 9, Status: connection.NationStatusHuman},
			},
		}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(&connection.OverlayStatus{
			Nations: map[uint32]connection.OverlayNation{
				7: {NationID: 7, Name: "Ulm Reforged"},
			},
		}, nil)
	s.expectRegistrations(
		registration(s.testAlias, "player-2", 13),
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	playing := output.Details.Nations.(*StartedDetails).State.(*PlayingState)
	s.Require().Len(playing.Players, 3)

	names := make(map[uint32]string)
	for _, player := range playing.Players {
		names[player.NationID()] = player.NationName()
	}

	// Overlay name wins for live nations it covers; the catalog names
	// the rest, including registered-only slots
	s.Equal("Ulm Reforged", names[7])
	s.Equal("Sauromatia", names[9])
	s.Equal("Abysia", names[13])
}

func (s *DetailsTestSuite) TestDuplicateNationRegistrationsCollapse() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{
			GameName: "Glory of the Pretenders",
			Turn:     3,
			Nations:  []connection.Nation{},
		}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, nil)

	// Two registrations claim the same nation; the later one wins
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7),
		registration(s.testAlias, "player-2", 7),
	)

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)

	playing := output.Details.Nations.(*StartedDetails).State.(*PlayingState)
	s.Require().Len(playing.Players, 1)

	registeredOnly, ok := playing.Players[0].(RegisteredOnly)
	s.Require().True(ok)
	s.Equal("player-2", registeredOnly.Player)
}

func (s *DetailsTestSuite) TestOwnerCarriedFromRetainedLobby() {
	s.expectGetServer(&models.GameServer{
		Alias: s.testAlias,
		State: models.StateStarted,
		Started: &models.StartedState{
			Address:      s.testAddress,
			LastSeenTurn: 1,
			Lobby: &models.LobbyState{
				Owner:       "owner-id",
				Description: "Was a lobby once",
				PlayerCount: 6,
			},
		},
	})
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{GameName: "g", Turn: 1}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, nil)
	s.expectRegistrations()

	output, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().NoError(err)
	s.Equal("owner-id", output.Details.Owner)
	s.Equal("Was a lobby once", output.Details.Description)
}

func (s *DetailsTestSuite) TestGetDetailsServerNotFound() {
	s.mockServerRepo.EXPECT().
		GetServer(s.ctx, &serverRepo.GetServerInput{Alias: s.testAlias}).
		Return(nil, serverRepo.ErrServerNotFound)

	_, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrServerNotFound))
}

func (s *DetailsTestSuite) TestGetDetailsConnectionFailure() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrServerUnreachable))
	s.False(errors.Is(err, ErrStoreFailure))
}

func (s *DetailsTestSuite) TestGetDetailsOverlayFailure() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{GameName: "g", Turn: 1}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, errors.New("overlay down"))

	_, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrServerUnreachable))
}

func (s *DetailsTestSuite) TestGetDetailsStoreFailure() {
	s.expectGetServer(s.startedServer)
	s.mockConnection.EXPECT().
		GetGameData(s.ctx, s.testAddress).
		Return(&connection.GameData{GameName: "g", Turn: 1}, nil)
	s.mockConnection.EXPECT().
		GetOverlayStatus(s.ctx, s.testAddress).
		Return(nil, nil)
	s.mockRegistrationRepo.EXPECT().
		GetRegistrationsForServer(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.GetDetails(s.ctx, &GetDetailsInput{Alias: s.testAlias})
	s.Require().Error(err)

	// Store failures are distinguishable from unreachable game servers
	s.True(errors.Is(err, ErrStoreFailure))
	s.False(errors.Is(err, ErrServerUnreachable))
}

func (s *DetailsTestSuite) TestGetDetailsWithSnapshot() {
	s.expectGetServer(s.startedServer)

	// Registrations are re-read fresh even on the cached path. No
	// connection expectations: the snapshot replaces the remote calls.
	s.expectRegistrations(
		registration(s.testAlias, "player-1", 7),
	)

	entry := &CacheEntry{
		GameData: &connection.GameData{
			GameName:  "Glory of the Pretenders",
			Turn:      12,
			TurnTimer: 7380000,
			Nations: []connection.Nation{
				{ID: 7, Submitted: connection.SubmissionPartial, Status: connection.NationStatusHuman},
			},
		},
		FetchedAt: s.testTime.Add(-time.Minute),
	}

	output, err := s.service.GetDetailsWithSnapshot(s.ctx, &GetDetailsWithSnapshotInput{
		Alias: s.testAlias,
		Entry: entry,
	})
	s.Require().NoError(err)

	playing := output.Details.Nations.(*StartedDetails).State.(*PlayingState)
	s.Require().Len(playing.Players, 1)

	matched, ok := playing.Players[0].(RegisteredAndGame)
	s.Require().True(ok)
	s.Equal("player-1", matched.Player)

	// The same entry flows back out unchanged
	s.Equal(entry, output.Details.CacheEntry)
}

func (s *DetailsTestSuite) TestGetDetailsWithSnapshotRequiresStarted() {
	s.expectGetServer(&models.GameServer{
		Alias: s.testAlias,
		State: models.StateLobby,
		Lobby: &models.LobbyState{Owner: "owner-id", PlayerCount: 4},
	})

	_, err := s.service.GetDetailsWithSnapshot(s.ctx, &GetDetailsWithSnapshotInput{
		Alias: s.testAlias,
		Entry: &CacheEntry{GameData: &connection.GameData{}},
	})
	s.Require().Error(err)
}

func (s *DetailsTestSuite) TestGetDetailsWithSnapshotRejectsNilEntry() {
	_, err := s.service.GetDetailsWithSnapshot(s.ctx, &GetDetailsWithSnapshotInput{
		Alias: s.testAlias,
	})
	s.Require().Error(err)
}
