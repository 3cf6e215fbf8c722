package registration

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRegistration() {
	out, err := s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
		NationID:    7,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Registration)
	s.NotEmpty(out.Registration.ID)
	s.Equal("midnight", out.Registration.ServerAlias)
	s.Equal("player-1", out.Registration.PlayerID)
	s.Equal(uint32(7), out.Registration.NationID)
	s.False(out.Registration.CreatedAt.IsZero())

	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Registrations, 1)
	s.Equal(out.Registration.ID, result.Registrations[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesPlayersOwnRegistration() {
	_, err := s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
		NationID:    7,
	})
	s.Require().NoError(err)

	// Re-registering switches the player's nation, not adds a second one
	_, err = s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
		NationID:    13,
	})
	s.Require().NoError(err)

	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Registrations, 1)
	s.Equal(uint32(13), result.Registrations[0].NationID)
}

func (s *RedisRepositoryTestSuite) TestRegistrationsAreScopedByServer() {
	_, err := s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
		NationID:    7,
	})
	s.Require().NoError(err)

	_, err = s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "daybreak",
		PlayerID:    "player-1",
		NationID:    13,
	})
	s.Require().NoError(err)

	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Registrations, 1)
	s.Equal(uint32(7), result.Registrations[0].NationID)
}

func (s *RedisRepositoryTestSuite) TestRemoveRegistration() {
	_, err := s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
		NationID:    7,
	})
	s.Require().NoError(err)

	_, err = s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-2",
		NationID:    13,
	})
	s.Require().NoError(err)

	err = s.repo.RemoveRegistration(context.Background(), &RemoveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
	})
	s.Require().NoError(err)

	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Registrations, 1)
	s.Equal("player-2", result.Registrations[0].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestRemoveRegistrationNotFound() {
	err := s.repo.RemoveRegistration(context.Background(), &RemoveRegistrationInput{
		ServerAlias: "midnight",
		PlayerID:    "player-1",
	})
	s.Require().Error(err)
	s.Equal(ErrRegistrationNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteRegistrationsForServer() {
	for _, playerID := range []string{"player-1", "player-2", "player-3"} {
		_, err := s.repo.SaveRegistration(context.Background(), &SaveRegistrationInput{
			ServerAlias: "midnight",
			PlayerID:    playerID,
			NationID:    7,
		})
		s.Require().NoError(err)
	}

	err := s.repo.DeleteRegistrationsForServer(context.Background(), &DeleteRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)

	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.Len(result.Registrations, 0)
}

func (s *RedisRepositoryTestSuite) TestGetRegistrationsForServerEmpty() {
	result, err := s.repo.GetRegistrationsForServer(context.Background(), &GetRegistrationsForServerInput{
		ServerAlias: "midnight",
	})
	s.Require().NoError(err)
	s.NotNil(result.Registrations)
	s.Len(result.Registrations, 0)
}
