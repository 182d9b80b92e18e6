package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/palabras/internal/dependencies/clock"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/bot"
	"github.com/mcoot/palabras/internal/services/dictionary"
	"github.com/mcoot/palabras/internal/services/move"
	"github.com/mcoot/palabras/internal/services/scoring"
	"github.com/mcoot/palabras/internal/services/tiles"
	"github.com/mcoot/palabras/internal/storage"
)

// Controller owns the single game and serializes every state transition
type Controller struct {
	storage        storage.Storage
	tileService    *tiles.Service
	moveService    *move.Service
	botService     *bot.Service
	scoringService *scoring.Service
	clock          clock.Clock
	logger         *slog.Logger

	// Guards load, mutate and save of the game
	mu sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	tileService *tiles.Service,
	moveService *move.Service,
	botService *bot.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		tileService:    tileService,
		moveService:    moveService,
		botService:     botService,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame replaces any current game with a freshly dealt one
func (c *Controller) NewGame(ctx context.Context) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newGame(ctx)
}

func (c *Controller) newGame(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.DefaultGameID,
		Board:     model.NewBoard(),
		Bag:       c.tileService.NewBag(),
		RackUser:  model.Rack{},
		RackCPU:   model.Rack{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.tileService.Refill(&game.RackUser, &game.Bag)
	c.tileService.Refill(&game.RackCPU, &game.Bag)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("bag_remaining", len(game.Bag)),
	)
	return game, nil
}

// GetGame returns the current game, dealing a new one if none exists
func (c *Controller) GetGame(ctx context.Context) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Controller) load(ctx context.Context) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, model.DefaultGameID)
	if errors.Is(err, model.ErrGameNotFound) {
		c.logger.Info("no current game, dealing a new one")
		return c.newGame(ctx)
	}
	return game, err
}

// update loads the game, applies fn and saves the result if fn succeeds
func (c *Controller) update(ctx context.Context, fn func(game *model.Game) error) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := fn(game); err != nil {
		return nil, err
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return game, nil
}

// PlayMove plays a word for the human player
func (c *Controller) PlayMove(ctx context.Context, mv model.Move) (*model.PlayResult, error) {
	var result *model.PlayResult
	_, err := c.update(ctx, func(game *model.Game) error {
		if game.Over {
			return model.ErrGameOver
		}
		res, err := c.moveService.Execute(game, mv, model.PlayerUser)
		if err != nil {
			c.logger.Debug("move rejected",
				slog.String("word", mv.Word),
				slog.String("error", err.Error()),
			)
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ComputerMove lets the computer take its turn
func (c *Controller) ComputerMove(ctx context.Context) (*model.ComputerTurn, error) {
	var turn *model.ComputerTurn
	_, err := c.update(ctx, func(game *model.Game) error {
		if game.Over {
			return model.ErrGameOver
		}
		t, err := c.botService.TakeTurn(game)
		if err != nil {
			return err
		}
		turn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return turn, nil
}

// ExchangeTiles swaps the named tiles from the human rack for new ones
func (c *Controller) ExchangeTiles(ctx context.Context, requested []string) ([]model.Tile, error) {
	tilesToSwap := lo.Map(requested, func(t string, _ int) model.Tile {
		return model.Tile(dictionary.Normalize(t))
	})

	var returned []model.Tile
	_, err := c.update(ctx, func(game *model.Game) error {
		if game.Over {
			return model.ErrGameOver
		}
		rack := game.RackUser
		res, err := c.tileService.Exchange(&rack, &game.Bag, tilesToSwap)
		if err != nil {
			return err
		}
		game.RackUser = rack
		game.ConsecutivePasses = 0
		returned = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}

// Pass records a pass. The third consecutive pass ends the game; passing on a
// finished game reports the same result again.
func (c *Controller) Pass(ctx context.Context) (*model.PassResult, error) {
	game, err := c.update(ctx, func(game *model.Game) error {
		if game.Over {
			return nil
		}
		game.ConsecutivePasses++
		if game.ConsecutivePasses >= model.MaxConsecutivePasses {
			game.Over = true
			game.Winner = c.scoringService.DetermineWinner(game.ScoreUser, game.ScoreCPU)
			c.logger.Info("game over",
				slog.String("winner", string(game.Winner)),
				slog.Int("score_user", game.ScoreUser),
				slog.Int("score_cpu", game.ScoreCPU),
				slog.Duration("duration", c.clock.Since(game.CreatedAt)),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.PassResult{
		ConsecutivePasses: game.ConsecutivePasses,
		GameOver:          game.Over,
		Outcome:           game.Outcome(),
	}, nil
}

// Reset discards the current game and deals a new one
func (c *Controller) Reset(ctx context.Context) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("game reset")
	return c.newGame(ctx)
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context) (*model.Game, error)
	PlayMove(ctx context.Context, mv model.Move) (*model.PlayResult, error)
	ComputerMove(ctx context.Context) (*model.ComputerTurn, error)
	ExchangeTiles(ctx context.Context, requested []string) ([]model.Tile, error)
	Pass(ctx context.Context) (*model.PassResult, error)
	Reset(ctx context.Context) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
