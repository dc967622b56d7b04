package cmd

import (
	"log/slog"

	"github.com/dendrascience/fraghash/progress"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newLogger returns the stderr logger for one command run. Every record
// carries the run's id so interleaved runs can be told apart.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(h).With("cmd", cmd.Name(), "run_id", uuid.NewString())
}

// warnProgress logs a failed progress stream. Progress output is
// diagnostic, so the run itself still succeeds.
func warnProgress(logger *slog.Logger, r *progress.Reporter) {
	if err := r.Err(); err != nil {
		logger.Warn("progress output stopped", "err", err)
	}
}
