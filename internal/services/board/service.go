package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/dictionary"
)

// WordChecker answers dictionary membership for normalized words
type WordChecker interface {
	IsValidWord(word string) bool
}

// Service validates and applies placements on a board
type Service struct {
	dictionary WordChecker
	logger     *slog.Logger
}

// New creates a new BoardService
func New(dictionary WordChecker, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger.With(slog.String("component", "board")),
	}
}

// Validation describes a legal placement
type Validation struct {
	// Extended is the full in-line word including adjoining board tiles
	Extended string
	// Placed lists the tiles that land on empty cells
	Placed []model.Placement
	// CrossWords lists the perpendicular words formed by new tiles
	CrossWords []string
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrInvalidPlacement, fmt.Sprintf(format, args...))
}

// ValidatePlacement checks that tokens laid from start along dir form a legal move.
// A move is legal when it places at least one new tile, every word it forms is in
// the dictionary, and it touches an existing tile (or covers the centre on an
// empty board). The board is never modified.
func (s *Service) ValidatePlacement(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction) (*Validation, error) {
	if !dir.IsValid() {
		return nil, invalid("direction %q must be H or V", dir)
	}
	if len(tokens) == 0 {
		return nil, invalid("no tiles to place")
	}

	blank := board.IsBlank()
	touches := false
	result := &Validation{}

	prefix, suffix := ExtendedWord(board, start, dir, len(tokens))
	word := dictionary.Join(tokens)
	result.Extended = prefix + word + suffix
	if len(result.Extended) > len(word) {
		if !s.dictionary.IsValidWord(result.Extended) {
			return nil, invalid("extended word %s is not in the dictionary", result.Extended)
		}
		touches = true
	}

	for i, tile := range tokens {
		pos := start.Advance(dir, i)
		if !board.IsValidPosition(pos) {
			return nil, invalid("tile %s at (%d,%d) is off the board", tile, pos.Row, pos.Col)
		}

		existing := board.Get(pos)
		switch {
		case existing == "":
			result.Placed = append(result.Placed, model.Placement{Position: pos, Tile: tile})
			if cross, ok := CrossWord(board, pos, dir, tile); ok {
				if !s.dictionary.IsValidWord(cross) {
					return nil, invalid("cross word %s is not in the dictionary", cross)
				}
				result.CrossWords = append(result.CrossWords, cross)
				touches = true
			}
		case existing != tile:
			return nil, invalid("cell (%d,%d) already holds %s", pos.Row, pos.Col, existing)
		default:
			touches = true
		}

		if blank && pos == model.Center() {
			touches = true
		}
	}

	if len(result.Placed) == 0 {
		return nil, invalid("no new tiles placed")
	}
	if !touches {
		if blank {
			return nil, invalid("first word must cover the centre cell")
		}
		return nil, invalid("word must connect to existing tiles")
	}
	return result, nil
}

// ExtendedWord returns the occupied run immediately before start and
// immediately after the last of length cells along dir
func ExtendedWord(board *model.Board, start model.Position, dir model.Direction, length int) (string, string) {
	prefix := ""
	for pos := start.Advance(dir, -1); board.IsValidPosition(pos) && !board.IsEmpty(pos); pos = pos.Advance(dir, -1) {
		prefix = string(board.Get(pos)) + prefix
	}

	suffix := ""
	for pos := start.Advance(dir, length); board.IsValidPosition(pos) && !board.IsEmpty(pos); pos = pos.Advance(dir, 1) {
		suffix += string(board.Get(pos))
	}
	return prefix, suffix
}

// CrossWord assembles the perpendicular word through pos as if tile sat there.
// It reports false when no adjoining tiles form a word longer than one tile.
func CrossWord(board *model.Board, pos model.Position, dir model.Direction, tile model.Tile) (string, bool) {
	perp := dir.Perpendicular()
	word := string(tile)
	length := 1

	for p := pos.Advance(perp, -1); board.IsValidPosition(p) && !board.IsEmpty(p); p = p.Advance(perp, -1) {
		word = string(board.Get(p)) + word
		length++
	}
	for p := pos.Advance(perp, 1); board.IsValidPosition(p) && !board.IsEmpty(p); p = p.Advance(perp, 1) {
		word += string(board.Get(p))
		length++
	}

	if length < 2 {
		return "", false
	}
	return word, true
}

// Place writes the tokens onto the board along dir
func (s *Service) Place(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction) {
	for i, tile := range tokens {
		board.Set(start.Advance(dir, i), tile)
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidatePlacement(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction) (*Validation, error)
	Place(board *model.Board, tokens []model.Tile, start model.Position, dir model.Direction)
}

var _ ServiceInterface = (*Service)(nil)
