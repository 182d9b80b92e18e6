package scoring

import (
	"github.com/mcoot/palabras/internal/model"
)

// Service computes move scores and final results
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score returns the points for laying tokens from start along dir.
// Letter and word bonuses count only on cells that are empty on the given
// board, so it must be called before the move is committed. The board is
// not modified.
func (s *Service) Score(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction) int {
	sum := 0
	wordMultiplier := 1

	for i, tile := range tokens {
		pos := start.Advance(dir, i)
		value := tile.Value()
		if board.IsEmpty(pos) {
			bonus := board.Bonus(pos)
			value *= bonus.LetterMultiplier()
			wordMultiplier *= bonus.WordMultiplier()
		}
		sum += value
	}

	return sum * wordMultiplier
}

// DetermineWinner compares final scores; equal scores are a draw
func (s *Service) DetermineWinner(scoreUser, scoreCPU int) model.Winner {
	switch {
	case scoreUser > scoreCPU:
		return model.WinnerUser
	case scoreCPU > scoreUser:
		return model.WinnerCPU
	default:
		return model.WinnerDraw
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction) int
	DetermineWinner(scoreUser, scoreCPU int) model.Winner
}

var _ ServiceInterface = (*Service)(nil)
