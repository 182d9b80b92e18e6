package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/palabras/internal/api"
	"github.com/mcoot/palabras/internal/api/response"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.errW, string(data))
		return
	}
	fmt.Fprintf(o.errW, "Error: %s\n", err)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GameState:
		o.printGameState(v)
	case response.PlayResponse:
		fmt.Fprintf(o.w, "Played %s for %d points\n", v.Word, v.Points)
	case response.ComputerResponse:
		o.printComputerTurn(v)
	case response.ExchangeResponse:
		o.printExchange(v)
	case response.PassResponse:
		o.printPass(v)
	case api.HealthResponse:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Dictionary: %d words\n", v.DictionaryWords)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) {
	o.printBoard(g.Board)
	fmt.Fprintln(o.w)
	fmt.Fprintf(o.w, "Rack: %s\n", strings.Join(g.Rack, " "))
	fmt.Fprintf(o.w, "Score: you %d, computer %d\n", g.ScoreUser, g.ScoreCPU)
	fmt.Fprintf(o.w, "Bag: %d tiles\n", g.BagRemaining)
	if g.ConsecutivePasses > 0 {
		fmt.Fprintf(o.w, "Consecutive passes: %d\n", g.ConsecutivePasses)
	}
	if g.GameOver {
		winner := ""
		if g.Winner != nil {
			winner = *g.Winner
		}
		fmt.Fprintf(o.w, "Game over. Winner: %s\n", winner)
	}
}

// printBoard draws the grid. Empty premium cells show their bonus in lower
// case so they cannot be confused with tiles.
func (o *Output) printBoard(cells [][]response.Cell) {
	if len(cells) == 0 {
		return
	}
	size := len(cells)
	border := "   +" + strings.Repeat("---", size) + "+"

	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, "%2d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(o.w, "%3s", cellText(cells[row][col]))
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}

func cellText(c response.Cell) string {
	switch {
	case c.Tile != "":
		return c.Tile
	case c.Bonus != "":
		return strings.ToLower(c.Bonus)
	default:
		return "."
	}
}

func (o *Output) printComputerTurn(t response.ComputerResponse) {
	if t.Action == "word" {
		fmt.Fprintf(o.w, "Computer played %s for %d points\n", t.Word, t.Points)
		return
	}
	fmt.Fprintln(o.w, t.Message)
}

func (o *Output) printExchange(e response.ExchangeResponse) {
	if len(e.Returned) == 0 {
		fmt.Fprintln(o.w, "No tiles exchanged")
		return
	}
	fmt.Fprintf(o.w, "Exchanged: %s\n", strings.Join(e.Returned, " "))
}

func (o *Output) printPass(p response.PassResponse) {
	if !p.GameOver {
		fmt.Fprintf(o.w, "Passed (%d in a row)\n", p.ConsecutivePasses)
		return
	}
	fmt.Fprintln(o.w, "Game over!")
	fmt.Fprintf(o.w, "Winner: %s\n", p.Winner)
	if p.FinalScores != nil {
		fmt.Fprintf(o.w, "Final scores: you %d, computer %d\n", p.FinalScores.User, p.FinalScores.CPU)
	}
}
