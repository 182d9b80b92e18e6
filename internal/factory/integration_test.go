package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/palabras/internal/config"
	"github.com/mcoot/palabras/internal/model"
	redisstorage "github.com/mcoot/palabras/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// seed stores a game with chosen racks; the rest of the set goes into the bag
func (s *IntegrationSuite) seed(rackUser, rackCPU model.Rack) {
	bag := model.Rack(model.FullTileSet())
	for _, tile := range append(rackUser.Clone(), rackCPU...) {
		s.Require().True(bag.Remove(tile))
	}
	now := s.app.MockClock.Now()
	s.Require().NoError(s.app.Storage.SaveGame(s.ctx, &model.Game{
		ID:        model.DefaultGameID,
		Board:     model.NewBoard(),
		Bag:       model.Bag(bag),
		RackUser:  rackUser,
		RackCPU:   rackCPU,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func (s *IntegrationSuite) current() *model.Game {
	game, err := s.app.GameController.GetGame(s.ctx)
	s.Require().NoError(err)
	return game
}

// Test: a full game from the opening move through three passes and a reset
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.seed(model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	// Step 1: the human opens through the centre
	result, err := s.app.GameController.PlayMove(s.ctx, model.Move{
		Word:      "casa",
		Start:     model.Position{Row: 7, Col: 6},
		Direction: model.Horizontal,
	})
	s.Require().NoError(err)
	s.Equal(18, result.Points)
	s.Equal(model.TotalTiles, s.current().TileCount())

	// Step 2: the computer answers
	turn, err := s.app.GameController.ComputerMove(s.ctx)
	s.Require().NoError(err)
	game := s.current()
	switch turn.Action {
	case model.ComputerActionWord:
		s.Positive(turn.Points)
		s.Equal(turn.Points, game.ScoreCPU)
	case model.ComputerActionExchange:
		s.Zero(game.ScoreCPU)
	default:
		s.Failf("unexpected action", "%q", turn.Action)
	}
	s.Equal(model.TotalTiles, game.TileCount())

	// Step 3: exchanging a tile the human does not hold succeeds without effect
	rackBefore := game.RackUser.Clone()
	returned, err := s.app.GameController.ExchangeTiles(s.ctx, []string{"Z"})
	s.Require().NoError(err)
	s.Empty(returned)
	s.Equal(rackBefore, s.current().RackUser)

	// Step 4: three passes end the game
	for i := 1; i < model.MaxConsecutivePasses; i++ {
		pass, err := s.app.GameController.Pass(s.ctx)
		s.Require().NoError(err)
		s.False(pass.GameOver)
	}
	pass, err := s.app.GameController.Pass(s.ctx)
	s.Require().NoError(err)
	s.True(pass.GameOver)
	s.Equal(s.app.ScoringService.DetermineWinner(game.ScoreUser, game.ScoreCPU), pass.Outcome.Winner)

	_, err = s.app.GameController.PlayMove(s.ctx, model.Move{Word: "sol", Start: model.Position{Row: 8, Col: 6}, Direction: model.Horizontal})
	s.True(errors.Is(err, model.ErrGameOver))

	// Step 5: reset deals a fresh game
	fresh, err := s.app.GameController.Reset(s.ctx)
	s.Require().NoError(err)
	s.False(fresh.Over)
	s.Zero(fresh.ScoreUser)
	s.Zero(fresh.ScoreCPU)
	s.True(fresh.Board.IsBlank())
	s.Equal(model.TotalTiles, fresh.TileCount())
}

func (s *IntegrationSuite) TestStrictPolicyRejectsAbsentTile() {
	s.app = NewTestAppWithOptions(Options{ExchangePolicy: "strict"})
	s.Require().NoError(s.app.LoadTestDictionary())
	s.seed(model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	_, err := s.app.GameController.ExchangeTiles(s.ctx, []string{"z"})
	s.True(errors.Is(err, model.ErrTileNotInRack))
}

func (s *IntegrationSuite) TestDictionaryFallback() {
	err := s.app.DictionaryService.LoadWithFallback(s.ctx, "/nonexistent/words.txt")
	s.Require().NoError(err)
	s.True(s.app.DictionaryService.IsValidWord("perro"))
	s.False(s.app.DictionaryService.IsValidWord("calle"))
}

func TestNewRejectsBadConfig(t *testing.T) {
	suite.Run(t, new(factoryConfigSuite))
}

type factoryConfigSuite struct {
	suite.Suite
}

func (s *factoryConfigSuite) TestUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *factoryConfigSuite) TestRedisWithoutConfig() {
	_, err := New(Config{StorageType: config.StorageRedis})
	s.Error(err)
}

func (s *factoryConfigSuite) TestUnknownExchangePolicy() {
	_, err := New(Config{ExchangePolicy: "lenient"})
	s.Error(err)
}

func (s *factoryConfigSuite) TestUnknownBotStrategy() {
	_, err := New(Config{BotStrategy: "minimax"})
	s.Error(err)
}

func (s *factoryConfigSuite) TestSeededAppsDealTheSameGame() {
	ctx := context.Background()
	first, err := New(Config{Seed: 7})
	s.Require().NoError(err)
	second, err := New(Config{Seed: 7})
	s.Require().NoError(err)

	g1, err := first.GameController.NewGame(ctx)
	s.Require().NoError(err)
	g2, err := second.GameController.NewGame(ctx)
	s.Require().NoError(err)

	s.Equal(g1.RackUser, g2.RackUser)
	s.Equal(g1.RackCPU, g2.RackCPU)
	s.Equal(g1.Bag, g2.Bag)
}

func (s *factoryConfigSuite) TestConfigFromRedis() {
	cfg := ConfigFrom(&config.Config{
		StorageType: config.StorageRedis,
		RedisURL:    "redis://cache:6379/2",
		Seed:        3,
	}, nil)

	s.Require().NotNil(cfg.RedisConfig)
	s.Equal("redis://cache:6379/2", cfg.RedisConfig.URL)
	s.Equal(int64(3), cfg.Seed)
}

func (s *factoryConfigSuite) TestRedisBackedGame() {
	mini := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	ctx := context.Background()
	app, err := New(Config{StorageType: config.StorageRedis, RedisConfig: &redisCfg, Seed: 5})
	s.Require().NoError(err)
	s.Require().NoError(app.DictionaryService.LoadWithFallback(ctx, "/nonexistent/words.txt"))

	dealt, err := app.GameController.NewGame(ctx)
	s.Require().NoError(err)

	_, err = app.GameController.Pass(ctx)
	s.Require().NoError(err)

	loaded, err := app.GameController.GetGame(ctx)
	s.Require().NoError(err)
	s.Equal(dealt.RackUser, loaded.RackUser)
	s.Equal(1, loaded.ConsecutivePasses)
	s.Equal(model.TotalTiles, loaded.TileCount())

	// The fallback words were written through to redis
	words, err := app.Storage.GetDictionaryWords(ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CASA", "HOLA", "SOL", "PAPA", "MAMA", "GATO", "PERRO"}, words)
}
