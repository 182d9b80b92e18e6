package request

// PlayMoveRequest is the request body for playing a word
type PlayMoveRequest struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	// Direction is H or V; empty means H
	Direction string `json:"direction"`
}

// ExchangeRequest is the request body for exchanging rack tiles
type ExchangeRequest struct {
	Tiles []string `json:"tiles"`
}
