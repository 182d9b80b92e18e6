package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  state                        show the board, your rack and the scores
  play <word> <row> <col> <H|V> play a word
  cpu                          let the computer move
  exchange <tile>...           swap tiles from your rack
  pass                         pass your turn
  reset                        start a new game
  health                       check the server
  help                         show this message
  exit                         leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "scrabble> ",
				HistoryFile:     a.cfg.HistoryFile,
				AutoComplete:    shellCompleter(),
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",

				HistorySearchFold:   true,
				FuncFilterInputRune: filterInput,
			})
			if err != nil {
				return fmt.Errorf("failed to start shell: %w", err)
			}
			defer func() { _ = rl.Close() }()

			a.stdout = rl.Stdout()
			a.stderr = rl.Stderr()
			a.inShell = true
			a.prepare()

			return runShell(a, rl.Readline)
		},
	}
}

// runShell reads lines until exit or EOF and runs each as a CLI command
func runShell(a *app, readLine func() (string, error)) error {
	for {
		line, err := readLine()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		done, err := runShellLine(a, line)
		if err != nil {
			a.out.PrintError(err)
		}
		if done {
			return nil
		}
	}
}

// runShellLine executes one line; done is true when the session should end
func runShellLine(a *app, line string) (done bool, err error) {
	args, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return false, fmt.Errorf("could not parse line: %w", err)
	}
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "exit", "quit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(a.stdout, shellHelp)
		return false, nil
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SilenceErrors = true
	return false, cmd.Execute()
}

func shellCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("state"),
		readline.PcItem("play"),
		readline.PcItem("cpu"),
		readline.PcItem("exchange"),
		readline.PcItem("pass"),
		readline.PcItem("reset"),
		readline.PcItem("health"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
