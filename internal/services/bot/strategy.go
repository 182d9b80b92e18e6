package bot

import (
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/move"
)

// Proposal is a strategy's decision for the computer's turn.
// Exactly one of Move or Exchange is set.
type Proposal struct {
	// Move is a fully validated placement ready to be applied
	Move *move.Prepared
	// Exchange lists rack tiles to swap when no placement was found
	Exchange []model.Tile
}

// Strategy proposes the computer's next action for a game.
// It must not modify the game.
type Strategy interface {
	ProposeMove(game *model.Game) Proposal
}
