package response

import (
	"github.com/samber/lo"

	"github.com/mcoot/palabras/internal/model"
)

// Cell is a single board square: the placed tile (empty when free) and its premium
type Cell struct {
	Tile  string `json:"tile"`
	Bonus string `json:"bonus"`
}

// GameState is the view of the game shown to the human player.
// The computer's rack is never included.
type GameState struct {
	Board             [][]Cell `json:"board"`
	Rack              []string `json:"rack"`
	ScoreUser         int      `json:"score_user"`
	ScoreCPU          int      `json:"score_cpu"`
	BagRemaining      int      `json:"bag_remaining"`
	ConsecutivePasses int      `json:"consecutive_passes"`
	GameOver          bool     `json:"game_over"`
	Winner            *string  `json:"winner,omitempty"`
}

// GameStateFromModel converts model.Game to response GameState
func GameStateFromModel(g *model.Game) GameState {
	cells := make([][]Cell, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		cells[row] = make([]Cell, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			c := g.Board.Cell(model.Position{Row: row, Col: col})
			cells[row][col] = Cell{Tile: string(c.Tile()), Bonus: string(c.Bonus())}
		}
	}

	var winner *string
	if g.Over {
		w := string(g.Winner)
		winner = &w
	}

	return GameState{
		Board:             cells,
		Rack:              tileStrings(g.RackUser),
		ScoreUser:         g.ScoreUser,
		ScoreCPU:          g.ScoreCPU,
		BagRemaining:      len(g.Bag),
		ConsecutivePasses: g.ConsecutivePasses,
		GameOver:          g.Over,
		Winner:            winner,
	}
}

func tileStrings(tiles []model.Tile) []string {
	return lo.Map(tiles, func(t model.Tile, _ int) string { return string(t) })
}

// SuccessResponse acknowledges an operation with no further payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PlayResponse is the response after the human plays a word
type PlayResponse struct {
	Success bool   `json:"success"`
	Word    string `json:"word"`
	Points  int    `json:"points"`
}

// ComputerResponse is the response after the computer takes its turn
type ComputerResponse struct {
	Success   bool     `json:"success"`
	Action    string   `json:"action"`
	Word      string   `json:"word,omitempty"`
	Points    int      `json:"points,omitempty"`
	Exchanged []string `json:"exchanged,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// ComputerResponseFromModel converts model.ComputerTurn
func ComputerResponseFromModel(t *model.ComputerTurn) ComputerResponse {
	return ComputerResponse{
		Success:   true,
		Action:    string(t.Action),
		Word:      t.Word,
		Points:    t.Points,
		Exchanged: tileStrings(t.Exchanged),
		Message:   t.Message,
	}
}

// ExchangeResponse is the response after the human exchanges tiles
type ExchangeResponse struct {
	Success  bool     `json:"success"`
	Returned []string `json:"returned"`
}

// ExchangeResponseFromModel converts the tiles returned to the bag
func ExchangeResponseFromModel(returned []model.Tile) ExchangeResponse {
	return ExchangeResponse{Success: true, Returned: tileStrings(returned)}
}

// FinalScores holds both scores at the end of a game
type FinalScores struct {
	User int `json:"user"`
	CPU  int `json:"cpu"`
}

// PassResponse is the response after a pass. Once the game ends it carries
// the winner and final scores instead of the success flag.
type PassResponse struct {
	Success           bool         `json:"success,omitempty"`
	ConsecutivePasses int          `json:"consecutive_passes"`
	GameOver          bool         `json:"game_over,omitempty"`
	Winner            string       `json:"winner,omitempty"`
	FinalScores       *FinalScores `json:"final_scores,omitempty"`
}

// PassResponseFromModel converts model.PassResult
func PassResponseFromModel(r *model.PassResult) PassResponse {
	if !r.GameOver {
		return PassResponse{Success: true, ConsecutivePasses: r.ConsecutivePasses}
	}
	return PassResponse{
		ConsecutivePasses: r.ConsecutivePasses,
		GameOver:          true,
		Winner:            string(r.Outcome.Winner),
		FinalScores:       &FinalScores{User: r.Outcome.ScoreUser, CPU: r.Outcome.ScoreCPU},
	}
}
