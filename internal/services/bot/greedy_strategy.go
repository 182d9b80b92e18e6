package bot

import (
	"strings"
	"unicode/utf8"

	"github.com/mcoot/palabras/internal/dependencies/random"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/dictionary"
	"github.com/mcoot/palabras/internal/services/move"
)

// Search bounds for the greedy strategy
const (
	MinCandidateLength     = 2
	MaxCandidateLength     = 6
	MaxAnchors             = 15
	MaxCandidatesPerAnchor = 100
	MaxExchangeTiles       = 3
)

// CandidateSource lists dictionary words within a rune length range
type CandidateSource interface {
	Candidates(minLen, maxLen int) []string
}

// Preparer validates a move without applying it
type Preparer interface {
	Prepare(game *model.Game, mv model.Move, player model.PlayerKind) (*move.Prepared, error)
}

// GreedyStrategy plays the first legal word it finds in a shuffled,
// bounded search around existing tiles
type GreedyStrategy struct {
	words  CandidateSource
	moves  Preparer
	random random.Random
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(words CandidateSource, moves Preparer, rnd random.Random) *GreedyStrategy {
	return &GreedyStrategy{
		words:  words,
		moves:  moves,
		random: rnd,
	}
}

// ProposeMove returns the first legal placement found, or an exchange of up
// to three random rack tiles
func (s *GreedyStrategy) ProposeMove(game *model.Game) Proposal {
	candidates := s.words.Candidates(MinCandidateLength, MaxCandidateLength)
	random.ShuffleSlice(s.random, candidates)

	if game.Board.IsBlank() {
		if prepared := s.openingMove(game, candidates); prepared != nil {
			return Proposal{Move: prepared}
		}
	}

	if prepared := s.anchoredMove(game, candidates); prepared != nil {
		return Proposal{Move: prepared}
	}

	return Proposal{Exchange: s.sampleRack(game.RackCPU)}
}

// openingMove centres each candidate on the middle row
func (s *GreedyStrategy) openingMove(game *model.Game, candidates []string) *move.Prepared {
	for _, word := range candidates {
		start := model.Position{
			Row: model.CenterRow,
			Col: model.CenterCol - utf8.RuneCountInString(word)/2,
		}
		if prepared := s.try(game, word, start, model.Horizontal); prepared != nil {
			return prepared
		}
	}
	return nil
}

// anchoredMove threads candidates through occupied cells
func (s *GreedyStrategy) anchoredMove(game *model.Game, candidates []string) *move.Prepared {
	anchors := game.Board.Occupied()
	random.ShuffleSlice(s.random, anchors)
	anchors = anchors[:min(len(anchors), MaxAnchors)]

	limited := candidates[:min(len(candidates), MaxCandidatesPerAnchor)]

	for _, anchor := range anchors {
		letter := game.Board.Get(anchor)
		for _, word := range limited {
			if !strings.Contains(word, string(letter)) {
				continue
			}
			for idx, token := range dictionary.Tokenize(word) {
				if token != letter {
					continue
				}
				for _, dir := range []model.Direction{model.Horizontal, model.Vertical} {
					start := anchor.Advance(dir, -idx)
					if prepared := s.try(game, word, start, dir); prepared != nil {
						return prepared
					}
				}
			}
		}
	}
	return nil
}

func (s *GreedyStrategy) try(game *model.Game, word string, start model.Position, dir model.Direction) *move.Prepared {
	prepared, err := s.moves.Prepare(game, model.Move{Word: word, Start: start, Direction: dir}, model.PlayerCPU)
	if err != nil {
		return nil
	}
	return prepared
}

// sampleRack picks up to MaxExchangeTiles distinct rack tiles at random
func (s *GreedyStrategy) sampleRack(rack model.Rack) []model.Tile {
	pool := rack.Clone()
	n := min(len(pool), MaxExchangeTiles)
	sample := make([]model.Tile, 0, n)
	for len(sample) < n {
		i := s.random.Intn(len(pool))
		sample = append(sample, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return sample
}

var _ Strategy = (*GreedyStrategy)(nil)
