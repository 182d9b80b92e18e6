package move

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/board"
	"github.com/mcoot/palabras/internal/services/dictionary"
	"github.com/mcoot/palabras/internal/services/scoring"
	"github.com/mcoot/palabras/internal/services/tiles"
)

// Service turns a move request into a board, rack and score change
type Service struct {
	dictionary board.WordChecker
	board      *board.Service
	scoring    *scoring.Service
	tiles      *tiles.Service
	logger     *slog.Logger
}

// New creates a new MoveService
func New(
	dictionary board.WordChecker,
	boardService *board.Service,
	scoringService *scoring.Service,
	tileService *tiles.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		dictionary: dictionary,
		board:      boardService,
		scoring:    scoringService,
		tiles:      tileService,
		logger:     logger.With(slog.String("component", "move")),
	}
}

// Prepared is a validated move that has not been committed yet
type Prepared struct {
	Player model.PlayerKind
	Move   model.Move
	Word   string
	Tokens []model.Tile
	Placed []model.Placement
	// Rack is the player's rack with the placed tiles removed
	Rack   model.Rack
	Points int
}

// Prepare runs every check for a move without touching the game.
// Failures wrap ErrNotInDictionary, ErrInvalidPlacement or ErrMissingTile.
func (s *Service) Prepare(game *model.Game, mv model.Move, player model.PlayerKind) (*Prepared, error) {
	word := dictionary.Normalize(mv.Word)
	if word == "" || !s.dictionary.IsValidWord(word) {
		return nil, fmt.Errorf("%w: %s", model.ErrNotInDictionary, word)
	}

	tokens := dictionary.Tokenize(word)
	validation, err := s.board.ValidatePlacement(game.Board, tokens, mv.Start, mv.Direction)
	if err != nil {
		return nil, err
	}

	rack := game.Rack(player).Clone()
	for _, placement := range validation.Placed {
		if !rack.Remove(placement.Tile) {
			return nil, &model.MissingTileError{Tile: placement.Tile}
		}
	}

	return &Prepared{
		Player: player,
		Move:   mv,
		Word:   word,
		Tokens: tokens,
		Placed: validation.Placed,
		Rack:   rack,
		Points: s.scoring.Score(game.Board, tokens, mv.Start, mv.Direction),
	}, nil
}

// Apply commits a prepared move: tiles go on the board, the rack is
// refilled, points are added and the pass counter resets
func (s *Service) Apply(game *model.Game, p *Prepared) *model.PlayResult {
	s.board.Place(game.Board, p.Tokens, p.Move.Start, p.Move.Direction)

	rack := p.Rack
	s.tiles.Refill(&rack, &game.Bag)
	game.SetRack(p.Player, rack)

	game.AddScore(p.Player, p.Points)
	game.ConsecutivePasses = 0

	s.logger.Info("word played",
		slog.String("player", string(p.Player)),
		slog.String("word", p.Word),
		slog.Int("row", p.Move.Start.Row),
		slog.Int("col", p.Move.Start.Col),
		slog.String("direction", string(p.Move.Direction)),
		slog.Int("points", p.Points),
	)

	return &model.PlayResult{Word: p.Word, Points: p.Points}
}

// Execute prepares and applies a move in one step
func (s *Service) Execute(game *model.Game, mv model.Move, player model.PlayerKind) (*model.PlayResult, error) {
	prepared, err := s.Prepare(game, mv, player)
	if err != nil {
		return nil, err
	}
	return s.Apply(game, prepared), nil
}
