package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/palabras/internal/config"
	"github.com/mcoot/palabras/internal/dependencies/clock"
	"github.com/mcoot/palabras/internal/dependencies/random"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/board"
	"github.com/mcoot/palabras/internal/services/bot"
	"github.com/mcoot/palabras/internal/services/dictionary"
	"github.com/mcoot/palabras/internal/services/game"
	"github.com/mcoot/palabras/internal/services/move"
	"github.com/mcoot/palabras/internal/services/scoring"
	"github.com/mcoot/palabras/internal/services/tiles"
	"github.com/mcoot/palabras/internal/storage"
	"github.com/mcoot/palabras/internal/storage/memory"
	redisstorage "github.com/mcoot/palabras/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	TileService       *tiles.Service
	MoveService       *move.Service
	BotService        *bot.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed seeds the random source; 0 uses an unseeded one
	Seed int64
	// ExchangePolicy names the exchange policy; empty means permissive
	ExchangePolicy string
	// BotStrategy names the computer's strategy; empty means greedy
	BotStrategy string
}

// Options are the service settings that do not depend on external resources
type Options struct {
	ExchangePolicy string
	BotStrategy    string
}

// ConfigFrom builds a factory Config from the server configuration
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	out := Config{
		Logger:         logger,
		StorageType:    cfg.StorageType,
		Seed:           cfg.Seed,
		ExchangePolicy: cfg.ExchangePolicy,
		BotStrategy:    cfg.BotStrategy,
	}
	if cfg.StorageType == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		out.RedisConfig = &redisCfg
	}
	return out
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(store, clock.New(), rnd, Options{
		ExchangePolicy: cfg.ExchangePolicy,
		BotStrategy:    cfg.BotStrategy,
	}, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, opts Options, logger *slog.Logger) (*App, error) {
	policy, err := tiles.PolicyByName(opts.ExchangePolicy)
	if err != nil {
		return nil, err
	}
	strategy := opts.BotStrategy
	if strategy == "" {
		strategy = model.BotStrategyGreedy
	}

	dictService := dictionary.New(store, logger)
	boardService := board.New(dictService, logger)
	scoringService := scoring.New()
	tileService := tiles.New(rnd, policy, logger)
	moveService := move.New(dictService, boardService, scoringService, tileService, logger)

	strategies := map[string]bot.Strategy{
		model.BotStrategyGreedy: bot.NewGreedyStrategy(dictService, moveService, rnd),
	}
	botService, err := bot.NewService(strategies, strategy, moveService, tileService, logger)
	if err != nil {
		return nil, err
	}

	gameController := game.NewController(store, tileService, moveService, botService, scoringService, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		TileService:       tileService,
		MoveService:       moveService,
		BotService:        botService,
		GameController:    gameController,
	}, nil
}
