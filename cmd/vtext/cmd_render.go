package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/app"
	"github.com/dshills/vtext/internal/config"
	"github.com/dshills/vtext/internal/docfile"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/renderer"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// newRenderCmd creates the render subcommand
func newRenderCmd() *cobra.Command {
	var (
		width, height int
		flow          string
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print a frame of the document",
		Long: `Lay out the document on a character grid and print the frame. Without a
file, plain text is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			e, _, err := openEngine(cmd, cfg, args)
			if err != nil {
				return err
			}
			if err := applyFlowFlag(e, flow); err != nil {
				return err
			}

			b := backend.NewNullBackend(width, height)
			r := renderer.New(b, app.RendererOptions(cfg, renderer.DefaultOptions()))
			r.SetSource(e)
			r.SetCaretVisible(false)
			r.RenderNow()

			for _, line := range b.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(line, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "frame width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "frame height in cells")
	cmd.Flags().StringVar(&flow, "flow", "", "override the flow (vertical or horizontal)")
	return cmd
}

// openEngine creates an engine with the configured flow and format and
// loads the document named by args, or plain text from stdin when args is
// empty. It returns the document id.
func openEngine(cmd *cobra.Command, cfg *config.Config, args []string) (*engine.Engine, string, error) {
	e := newEngine(cfg)
	if len(args) == 0 || args[0] == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		e.SetText(strings.ReplaceAll(string(data), "\r\n", "\n"))
		return e, docfile.NewID(), nil
	}

	id, err := docfile.Load(args[0], e)
	if err != nil {
		return nil, "", err
	}
	return e, id, nil
}

// newEngine creates an empty engine with the configured flow and format.
func newEngine(cfg *config.Config) *engine.Engine {
	opts := []engine.Option{
		engine.WithFlow(cfg.Editor.FlowValue()),
		engine.WithFormat(cfg.Format.Style()),
	}
	if cfg.Editor.MaxUndo > 0 {
		opts = append(opts, engine.WithMaxUndoEntries(cfg.Editor.MaxUndo))
	}
	return engine.New(opts...)
}

// applyFlowFlag sets the flow from a --flow value. Empty keeps the current
// flow.
func applyFlowFlag(e *engine.Engine, flow string) error {
	if flow == "" {
		return nil
	}
	f, err := engine.ParseFlow(flow)
	if err != nil {
		return err
	}
	e.SetFlow(f)
	return nil
}
