package roster

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

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

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

func (s *RedisRepositoryTestSuite) TestGetPlayersEmpty() {
	output, err := s.repo.GetPlayers(context.Background(), &GetPlayersInput{})
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Empty(output.Players)
	s.NotNil(output.Players)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayers() {
	players := []string{"Alice", "Bob", "Carol"}

	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{
		Players: players,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetPlayers(context.Background(), &GetPlayersInput{})
	s.Require().NoError(err)

	// Order is the rotation order and must survive the round-trip
	s.Equal(players, output.Players)
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesRoster() {
	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{
		Players: []string{"Alice", "Bob"},
	})
	s.Require().NoError(err)

	err = s.repo.SavePlayers(context.Background(), &SavePlayersInput{
		Players: []string{"Bob"},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetPlayers(context.Background(), &GetPlayersInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Bob"}, output.Players)
}

func (s *RedisRepositoryTestSuite) TestSaveNilPlayers() {
	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{})
	s.Require().NoError(err)

	output, err := s.repo.GetPlayers(context.Background(), &GetPlayersInput{})
	s.Require().NoError(err)
	s.Empty(output.Players)
}
