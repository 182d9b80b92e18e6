package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// app is the state shared by every command of one CLI invocation or shell session
type app struct {
	cfg    *Config
	client *Client
	out    *Output

	stdout io.Writer
	stderr io.Writer

	// set while the interactive shell is running
	inShell bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{cfg: DefaultConfig(), stdout: stdout, stderr: stderr}
}

// prepare builds the client and output from the current flags
func (a *app) prepare() {
	if a.client == nil || a.client.baseURL != trimURL(a.cfg.ServerURL) {
		a.client = NewClient(a.cfg.ServerURL)
	}
	a.out = NewOutput(a.cfg.Output, a.stdout, a.stderr)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp(os.Stdout, os.Stderr))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "Play Spanish Scrabble against the computer",
		Long: `scrabble is a client for the Scrabble game server.

Each game command maps to one API operation. Run "scrabble shell" for an
interactive session.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.prepare()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "Server URL (env: SCRABBLE_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newGameCmds(a)...)
	rootCmd.AddCommand(newHealthCmd(a))
	if !a.inShell {
		rootCmd.AddCommand(newShellCmd(a))
	}

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
