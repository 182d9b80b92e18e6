package tiles

import (
	"log/slog"

	"github.com/mcoot/palabras/internal/dependencies/random"
	"github.com/mcoot/palabras/internal/model"
)

// Service manages the tile bag and player racks
type Service struct {
	random random.Random
	policy ExchangePolicy
	logger *slog.Logger
}

// New creates a new TileService
func New(rnd random.Random, policy ExchangePolicy, logger *slog.Logger) *Service {
	if policy == nil {
		policy = PermissiveExchange
	}
	return &Service{
		random: rnd,
		policy: policy,
		logger: logger.With(slog.String("component", "tiles")),
	}
}

// NewBag returns the full tile set in shuffled order
func (s *Service) NewBag() model.Bag {
	bag := model.Bag(model.FullTileSet())
	s.Shuffle(bag)
	return bag
}

// Shuffle reorders the bag in place
func (s *Service) Shuffle(bag model.Bag) {
	random.ShuffleSlice(s.random, bag)
}

// Refill draws from the end of the bag until the rack is full or the bag
// is empty, returning the tiles drawn
func (s *Service) Refill(rack *model.Rack, bag *model.Bag) []model.Tile {
	var drawn []model.Tile
	for !rack.IsFull() {
		tile, ok := bag.Pop()
		if !ok {
			break
		}
		*rack = append(*rack, tile)
		drawn = append(drawn, tile)
	}
	return drawn
}

// Exchange returns the requested tiles to the bag, reshuffles it and refills
// the rack. Under the permissive policy tiles missing from the rack are
// skipped. It returns the tiles that actually went back into the bag.
func (s *Service) Exchange(rack *model.Rack, bag *model.Bag, requested []model.Tile) ([]model.Tile, error) {
	if err := s.policy(*rack, requested); err != nil {
		return nil, err
	}

	var returned []model.Tile
	for _, tile := range requested {
		if rack.Remove(tile) {
			bag.Push(tile)
			returned = append(returned, tile)
		}
	}

	s.Shuffle(*bag)
	s.Refill(rack, bag)

	s.logger.Debug("tiles exchanged",
		slog.Int("requested", len(requested)),
		slog.Int("returned", len(returned)),
		slog.Int("bag_remaining", len(*bag)),
	)
	return returned, nil
}
