package model

import "time"

// GameID uniquely identifies a game
type GameID string

// DefaultGameID is the identifier of the single game a process owns
const DefaultGameID GameID = "current"

// MaxConsecutivePasses ends the game when reached
const MaxConsecutivePasses = 3

// PlayerKind identifies one side of the game
type PlayerKind string

const (
	PlayerUser PlayerKind = "user"
	PlayerCPU  PlayerKind = "cpu"
)

// IsValid returns true for a known player kind
func (p PlayerKind) IsValid() bool {
	return p == PlayerUser || p == PlayerCPU
}

// Winner is the final result of a finished game
type Winner string

const (
	WinnerNone Winner = ""
	WinnerUser Winner = "USER"
	WinnerCPU  Winner = "CPU"
	WinnerDraw Winner = "DRAW"
)

// Game is the complete state of a human vs computer match
type Game struct {
	ID       GameID
	Board    *Board
	Bag      Bag
	RackUser Rack
	RackCPU  Rack

	ScoreUser int
	ScoreCPU  int

	// Pass tracking; reset by any successful placement or exchange
	ConsecutivePasses int

	Over   bool
	Winner Winner

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rack returns the rack of the given player
func (g *Game) Rack(player PlayerKind) Rack {
	if player == PlayerCPU {
		return g.RackCPU
	}
	return g.RackUser
}

// SetRack replaces the rack of the given player
func (g *Game) SetRack(player PlayerKind, rack Rack) {
	if player == PlayerCPU {
		g.RackCPU = rack
		return
	}
	g.RackUser = rack
}

// Score returns the score of the given player
func (g *Game) Score(player PlayerKind) int {
	if player == PlayerCPU {
		return g.ScoreCPU
	}
	return g.ScoreUser
}

// AddScore adds points to the given player's score
func (g *Game) AddScore(player PlayerKind, points int) {
	if player == PlayerCPU {
		g.ScoreCPU += points
		return
	}
	g.ScoreUser += points
}

// TileCount returns the number of tiles held by the bag, both racks and the board
func (g *Game) TileCount() int {
	return len(g.Bag) + len(g.RackUser) + len(g.RackCPU) + g.Board.TileCount()
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	clone.Board = g.Board.Clone()
	clone.Bag = g.Bag.Clone()
	clone.RackUser = g.RackUser.Clone()
	clone.RackCPU = g.RackCPU.Clone()
	return &clone
}

// GameOutcome is the result reported when a game finishes
type GameOutcome struct {
	Winner    Winner
	ScoreUser int
	ScoreCPU  int
}

// Outcome returns the final result of the game
func (g *Game) Outcome() GameOutcome {
	return GameOutcome{Winner: g.Winner, ScoreUser: g.ScoreUser, ScoreCPU: g.ScoreCPU}
}
