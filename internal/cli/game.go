package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/palabras/internal/api/request"
	"github.com/mcoot/palabras/internal/api/response"
)

func newGameCmds(a *app) []*cobra.Command {
	return []*cobra.Command{
		newStateCmd(a),
		newPlayCmd(a),
		newComputerCmd(a),
		newExchangeCmd(a),
		newPassCmd(a),
		newResetCmd(a),
	}
}

func newStateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "state",
		Aliases: []string{"board"},
		Short:   "Show the board, your rack and the scores",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState
			if err := a.client.Get(cmd.Context(), "/api/v1/game", &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}

// parseMove reads "<word> <row> <col> <H|V>"
func parseMove(args []string) (request.PlayMoveRequest, error) {
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return request.PlayMoveRequest{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return request.PlayMoveRequest{}, fmt.Errorf("invalid col: %w", err)
	}
	dir := strings.ToUpper(args[3])
	if dir != "H" && dir != "V" {
		return request.PlayMoveRequest{}, fmt.Errorf("direction must be H or V, got %q", args[3])
	}
	return request.PlayMoveRequest{Word: args[0], Row: row, Col: col, Direction: dir}, nil
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play <word> <row> <col> <H|V>",
		Short: "Play a word starting at row, col",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseMove(args)
			if err != nil {
				return err
			}

			var result response.PlayResponse
			if err := a.client.Post(cmd.Context(), "/api/v1/game/moves", req, &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}

func newComputerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "cpu",
		Aliases: []string{"computer"},
		Short:   "Let the computer take its turn",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ComputerResponse
			if err := a.client.Post(cmd.Context(), "/api/v1/game/computer", nil, &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}

func newExchangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <tile>...",
		Short: "Return tiles from your rack to the bag and draw new ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ExchangeResponse
			req := request.ExchangeRequest{Tiles: args}
			if err := a.client.Post(cmd.Context(), "/api/v1/game/exchange", req, &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}

func newPassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pass",
		Short: "Pass your turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PassResponse
			if err := a.client.Post(cmd.Context(), "/api/v1/game/pass", nil, &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Post(cmd.Context(), "/api/v1/game/reset", nil, nil); err != nil {
				return err
			}
			a.out.PrintMessage("New game dealt")
			return nil
		},
	}
}
