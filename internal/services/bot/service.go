package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/move"
	"github.com/mcoot/palabras/internal/services/tiles"
)

// ExchangeMessage is reported when the computer swaps tiles instead of playing
const ExchangeMessage = "CPU exchanged tiles"

// Service plays the computer's turns
type Service struct {
	strategies map[string]Strategy
	strategy   string
	moves      *move.Service
	tiles      *tiles.Service
	logger     *slog.Logger
}

// NewService creates a new bot Service using the named strategy
func NewService(
	strategies map[string]Strategy,
	strategy string,
	moves *move.Service,
	tileService *tiles.Service,
	logger *slog.Logger,
) (*Service, error) {
	if _, ok := strategies[strategy]; !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", strategy)
	}
	return &Service{
		strategies: strategies,
		strategy:   strategy,
		moves:      moves,
		tiles:      tileService,
		logger:     logger.With(slog.String("component", "bot-service")),
	}, nil
}

// Strategy returns the name of the active strategy
func (s *Service) Strategy() string {
	return s.strategy
}

// TakeTurn asks the strategy for a move and applies it to the game
func (s *Service) TakeTurn(game *model.Game) (*model.ComputerTurn, error) {
	proposal := s.strategies[s.strategy].ProposeMove(game)

	if proposal.Move != nil {
		result := s.moves.Apply(game, proposal.Move)
		return &model.ComputerTurn{
			Action: model.ComputerActionWord,
			Word:   result.Word,
			Points: result.Points,
		}, nil
	}

	rack := game.RackCPU
	returned, err := s.tiles.Exchange(&rack, &game.Bag, proposal.Exchange)
	if err != nil {
		return nil, err
	}
	game.RackCPU = rack
	game.ConsecutivePasses = 0

	s.logger.Info("computer exchanged tiles",
		slog.Int("count", len(returned)),
		slog.String("strategy", s.strategy),
	)

	return &model.ComputerTurn{
		Action:    model.ComputerActionExchange,
		Exchanged: returned,
		Message:   ExchangeMessage,
	}, nil
}
