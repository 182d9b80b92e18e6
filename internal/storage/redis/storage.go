package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// gameRecord is the stored shape of a game snapshot
type gameRecord struct {
	ID                model.GameID `json:"id"`
	Board             *model.Board `json:"board"`
	Bag               model.Bag    `json:"bag"`
	RackUser          model.Rack   `json:"rack_user"`
	RackCPU           model.Rack   `json:"rack_cpu"`
	ScoreUser         int          `json:"score_user"`
	ScoreCPU          int          `json:"score_cpu"`
	ConsecutivePasses int          `json:"consecutive_passes"`
	Over              bool         `json:"over"`
	Winner            model.Winner `json:"winner,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func toRecord(g *model.Game) gameRecord {
	return gameRecord{
		ID:                g.ID,
		Board:             g.Board,
		Bag:               g.Bag,
		RackUser:          g.RackUser,
		RackCPU:           g.RackCPU,
		ScoreUser:         g.ScoreUser,
		ScoreCPU:          g.ScoreCPU,
		ConsecutivePasses: g.ConsecutivePasses,
		Over:              g.Over,
		Winner:            g.Winner,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (r gameRecord) toGame() *model.Game {
	board := r.Board
	if board == nil {
		board = model.NewBoard()
	}
	return &model.Game{
		ID:                r.ID,
		Board:             board,
		Bag:               r.Bag.Clone(),
		RackUser:          r.RackUser.Clone(),
		RackCPU:           r.RackCPU.Clone(),
		ScoreUser:         r.ScoreUser,
		ScoreCPU:          r.ScoreCPU,
		ConsecutivePasses: r.ConsecutivePasses,
		Over:              r.Over,
		Winner:            r.Winner,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(toRecord(game))
	if err != nil {
		return err
	}

	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var record gameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record.toGame(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	// Replace the existing set in one round trip
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := lo.Map(words, func(w string, _ int) interface{} { return w })
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
