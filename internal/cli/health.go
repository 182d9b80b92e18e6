package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/palabras/internal/api"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result api.HealthResponse
			if err := a.client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}
			a.out.Print(result)
			return nil
		},
	}
}
