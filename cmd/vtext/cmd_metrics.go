package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/renderer/layout"
	"github.com/dshills/vtext/internal/renderer/measure"
)

// newMetricsCmd creates the metrics subcommand
func newMetricsCmd() *cobra.Command {
	var (
		dpi  float64
		flow string
	)
	cmd := &cobra.Command{
		Use:   "metrics [file]",
		Short: "Print segment geometry measured with the Go fonts",
		Long: `Lay out the document with real font metrics and print, for every
segment, its cell size, its position across the flow and its extent along
the flow. Positions are in points at the given DPI.`,
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

			font, err := measure.NewFont()
			if err != nil {
				return fmt.Errorf("failed to load fonts: %w", err)
			}
			defer font.Close()
			if dpi > 0 {
				font.SetDPI(dpi)
			}

			lc := cfg.Editor.LayoutConfig()
			lc.Flow = e.Flow()
			frame := layout.NewLayoutEngine(font, lc).Layout(e.Segments())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flow %s, %d segments, bounds %s\n", frame.Flow(), frame.SegmentCount(), frame.Bounds())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEGMENT\tCELL\tPOSITION\tEXTENT\tTEXT")
			for i := 0; i < frame.SegmentCount(); i++ {
				fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%q\n",
					i, frame.CellSize(i), frame.Position(i), frame.SegmentExtent(i), frame.Segment(i).Text())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "font resolution (default 72)")
	cmd.Flags().StringVar(&flow, "flow", "", "override the flow (vertical or horizontal)")
	return cmd
}
