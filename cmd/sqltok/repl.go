package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// newReplCmd builds the "repl" subcommand: an interactive line editor that
// tokenizes each submitted line. Grounded in
// firefly-research-flydb/cmd/flydb-shell/main.go's readline setup
// (createReadlineInstance, history file, Ctrl+C/Ctrl+D handling) and its
// runSimpleREPL fallback for non-TTY stdin — simplified since there is no
// multi-line statement buffering to do: every line is tokenized on its own.
func newReplCmd(flags *globalFlags) *cobra.Command {
	var skipTrivia bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively tokenize lines of input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger()
			if err != nil {
				return err
			}

			if !readline.DefaultIsTerminal() {
				return runSimpleREPL(cmd.InOrStdin(), cmd.OutOrStdout(), skipTrivia)
			}
			rl, err := newReplReadline()
			if err != nil {
				logger.Warn("advanced line editing unavailable, falling back to plain scanner", "err", err)
				return runSimpleREPL(cmd.InOrStdin(), cmd.OutOrStdout(), skipTrivia)
			}
			defer rl.Close()
			return runReadlineREPL(rl, cmd.OutOrStdout(), skipTrivia)
		},
	}

	cmd.Flags().BoolVar(&skipTrivia, "skip-trivia", false, "Elide Whitespace and Comment tokens.")
	return cmd
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.sqltok_history"
}

func newReplReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:      "sqltok> ",
		HistoryFile: historyFilePath(),
	})
}

func runReadlineREPL(rl *readline.Instance, w io.Writer, skipTrivia bool) error {
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
			// fall through to tokenize below
		case readline.ErrInterrupt:
			fmt.Fprintln(w, "(Ctrl-D to exit)")
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if err := tokenizeAndDump(w, []byte(line), dumpOptions{skipTrivia: skipTrivia}); err != nil {
			return err
		}
	}
}

// runSimpleREPL tokenizes r line by line without readline — used when
// stdin isn't a TTY (piped input) or readline construction fails.
func runSimpleREPL(r io.Reader, w io.Writer, skipTrivia bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := tokenizeAndDump(w, scanner.Bytes(), dumpOptions{skipTrivia: skipTrivia}); err != nil {
			return err
		}
	}
	return scanner.Err()
}
