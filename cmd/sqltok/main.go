// Command sqltok is a small CLI front-end over package sqltoken. It
// performs no SQL parsing: every subcommand only ever prints or reacts to
// the token stream the core scanner produces — spec.md's non-goals
// (keyword recognition, grammar, value parsing) bind this binary too.
//
// The subcommand shapes are grounded in the reference corpus: "tokens"
// mirrors oarkflow-sqlparser/examples/main.go's sample-dump loop, "repl"
// mirrors firefly-research-flydb/cmd/flydb-shell/main.go's readline setup
// and non-TTY fallback, and "watch" exercises fsnotify, a dependency
// promoted here from indirect (pulled in transitively by viper in the
// teacher lineage) to directly imported and used.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oarkflow/sqltoken/internal/config"
	"github.com/oarkflow/sqltoken/internal/logging"
)

// globalFlags holds the settings shared by every subcommand, bound via
// internal/config the way multigres-multigres/go/servenv binds its own
// cross-cutting flags.
type globalFlags struct {
	reg       *config.Registry
	logLevel  config.Value[string]
	logFormat config.Value[string]
	cfgFile   config.Value[string]
}

func registerGlobalFlags(fs *pflag.FlagSet) *globalFlags {
	reg := config.New()
	return &globalFlags{
		reg:       reg,
		logLevel:  reg.String(fs, "log.level", "log-level", "info", "Log level (debug, info, warn, error)."),
		logFormat: reg.String(fs, "log.format", "log-format", "text", "Log format (text, json)."),
		cfgFile:   reg.String(fs, "config", "config", "", "Path to an optional config file."),
	}
}

// logger builds this invocation's slog.Logger from the bound flags,
// loading the optional config file first so flag defaults it may override
// are already in place.
func (g *globalFlags) logger() (*slog.Logger, error) {
	if err := g.reg.LoadFile(g.cfgFile.Get()); err != nil {
		return nil, err
	}
	return logging.New(g.logLevel.Get(), g.logFormat.Get())
}

func main() {
	root := &cobra.Command{
		Use:           "sqltok",
		Short:         "Tokenize SQL-family source text.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := registerGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newTokensCmd(flags),
		newReplCmd(flags),
		newWatchCmd(flags),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sqltok:", err)
		os.Exit(1)
	}
}
