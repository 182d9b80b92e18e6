package tiles

import (
	"fmt"

	"github.com/mcoot/palabras/internal/model"
)

// ExchangePolicy decides whether an exchange request is acceptable for a rack
type ExchangePolicy func(rack model.Rack, requested []model.Tile) error

// Exchange policy names
const (
	PolicyPermissive = "permissive"
	PolicyStrict     = "strict"
)

// PermissiveExchange accepts every request; tiles not in the rack are skipped
func PermissiveExchange(rack model.Rack, requested []model.Tile) error {
	return nil
}

// StrictExchange rejects requests naming tiles the rack does not hold,
// counting duplicates
func StrictExchange(rack model.Rack, requested []model.Tile) error {
	working := rack.Clone()
	for _, tile := range requested {
		if !working.Remove(tile) {
			return fmt.Errorf("%w: %s", model.ErrTileNotInRack, tile)
		}
	}
	return nil
}

// PolicyByName resolves a configured policy name; empty means permissive
func PolicyByName(name string) (ExchangePolicy, error) {
	switch name {
	case "", PolicyPermissive:
		return PermissiveExchange, nil
	case PolicyStrict:
		return StrictExchange, nil
	default:
		return nil, fmt.Errorf("unknown exchange policy %q", name)
	}
}
