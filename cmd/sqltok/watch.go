package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newWatchCmd builds the "watch" subcommand: re-tokenize a file every time
// it is written. fsnotify is a teacher-lineage dependency (pulled in
// transitively by viper in multigres-multigres's go.mod) promoted here to
// a direct, directly-imported dependency. Cancellation is the trivial
// story spec.md §5 describes for the scanner itself: the caller just
// stops reading the event channel, here on SIGINT/SIGTERM, and no cleanup
// beyond closing the watcher is required.
func newWatchCmd(flags *globalFlags) *cobra.Command {
	var skipTrivia bool

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file every time it changes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return watchAndDump(ctx, cmd.OutOrStdout(), afero.NewOsFs(), args[0], skipTrivia, logger.Info)
		},
	}

	cmd.Flags().BoolVar(&skipTrivia, "skip-trivia", false, "Elide Whitespace and Comment tokens.")
	return cmd
}

// logFunc matches slog.Logger.Info's signature loosely enough to be
// passed either the real logger or a test double.
type logFunc func(msg string, args ...any)

func watchAndDump(ctx context.Context, w io.Writer, fs afero.Fs, path string, skipTrivia bool, logInfo logFunc) error {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := tokenizeAndDump(w, src, dumpOptions{skipTrivia: skipTrivia}); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	logInfo("watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logInfo("watch error", "err", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// fsnotify only watches real filesystem paths, so re-reads go
			// through os directly rather than the afero.Fs used for the
			// initial read (which exists to make that first read testable
			// against an in-memory filesystem without touching disk).
			src, err := os.ReadFile(path)
			if err != nil {
				logInfo("re-read failed", "err", err)
				continue
			}
			if err := tokenizeAndDump(w, src, dumpOptions{skipTrivia: skipTrivia}); err != nil {
				return err
			}
		}
	}
}
