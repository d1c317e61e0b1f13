// SPDX-License-Identifier: MIT

// Package commands implements the algoshelf command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/internal/ctxlog"
)

var (
	errUnknownAlgorithm = errors.New("unknown algorithm")
	errBadFormat        = errors.New("unsupported output format")
	errBadLevel         = errors.New("unsupported log level")
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	format   string
	logLevel string
}

// Execute builds the command tree and runs it against os.Args, cancelling
// on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns a fresh command tree. Tests build one per case.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "algoshelf",
		Short: "Classic algorithms and data structures, one subcommand each",
		Long: `algoshelf runs graph traversals, sorts, searches, sequence routines
and small data structures on values given as arguments.

Examples:
  algoshelf graph dfs --shape binary-tree --size 8
  algoshelf graph bfs --edge a:b --edge a:c --edge b:d
  algoshelf sort quick 5 2 9 1
  algoshelf lcs AGGTAB GXTXAYB --format json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.installLogger(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.format, "format", formatAuto, "Output format: text, json, yaml, auto (text on a terminal, yaml otherwise)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level on stderr: debug, info, warn, error")

	root.AddCommand(
		newGraphCmd(opts),
		newSortCmd(opts),
		newSearchCmd(opts),
		newLCSCmd(opts),
		newDivergeCmd(opts),
		newSumCmd(opts),
		newTreeCmd(opts),
		newListCmd(opts),
		newDemoCmd(opts),
	)

	return root
}

// installLogger puts a stderr text logger, tagged with a run id, into the
// command context.
func (o *rootOptions) installLogger(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("%w: %q", errBadLevel, o.logLevel)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("run", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	logger.Debug("command started", "cmd", cmd.CommandPath())

	return nil
}
