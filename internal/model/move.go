package model

// Move is a request to lay a word on the board
type Move struct {
	Word      string
	Start     Position
	Direction Direction
}

// Placement is a single tile laid by a move
type Placement struct {
	Position Position
	Tile     Tile
}

// PlayResult is returned after a successful placement
type PlayResult struct {
	Word   string
	Points int
}

// ComputerAction is what the computer did on its turn
type ComputerAction string

const (
	ComputerActionWord     ComputerAction = "word"
	ComputerActionExchange ComputerAction = "exchange"
)

// ComputerTurn describes the computer's turn
type ComputerTurn struct {
	Action    ComputerAction
	Word      string
	Points    int
	Exchanged []Tile
	Message   string
}

// PassResult is returned after a pass
type PassResult struct {
	ConsecutivePasses int
	GameOver          bool
	Outcome           GameOutcome
}
