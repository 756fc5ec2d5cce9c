package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/app"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// newEditCmd creates the edit subcommand
func newEditCmd() *cobra.Command {
	var (
		watch    bool
		stats    bool
		readOnly bool
	)
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the terminal editor",
		Long: `Open file in the terminal editor. A file that does not exist is created
on the first save. Without a file the editor starts with a scratch document.

Keys:
  ctrl+s save    ctrl+q quit    ctrl+t toggle flow
  ctrl+z undo    ctrl+c copy    ctrl+x cut    ctrl+v paste
  ctrl+b bold    alt+i italic   ctrl+u underline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd, path, watch, stats, readOnly)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch-config", true, "reload the config file when it changes")
	cmd.Flags().BoolVar(&stats, "stats", false, "print event loop statistics on exit")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "refuse edits to the document")
	return cmd
}

func runEditor(cmd *cobra.Command, path string, watch, stats, readOnly bool) error {
	cfg, over, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal owns stderr while the editor runs.
	logger := newLogger(cfg, io.Discard)
	defer logger.Close()

	application, err := app.New(app.Options{
		Config:      cfg,
		ConfigPath:  resolvedConfigPath(),
		WatchConfig: watch,
		Overrides:   over,
		Path:        path,
		Logger:      logger,
		ReadOnly:    readOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = application.Run(ctx)

	if stats {
		out := cmd.ErrOrStderr()
		fmt.Fprintln(out, application.Metrics().Snapshot())
		snap := application.Dispatcher().Metrics().Snapshot()
		fmt.Fprintf(out, "%d actions dispatched, %d errors\n", snap.TotalDispatches, snap.TotalErrors)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
