package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/docfile"
)

// newConvertCmd creates the convert subcommand
func newConvertCmd() *cobra.Command {
	var flow string
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a document between plain text and the rich format",
		Long: `Convert a document. The format of each side follows its extension:
.vtx files keep formatting and flow, anything else is plain text. A
plain text source gets the configured typing format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			e, id, err := openEngine(cmd, cfg, args[:1])
			if err != nil {
				return err
			}
			if err := applyFlowFlag(e, flow); err != nil {
				return err
			}
			if err := docfile.Save(args[1], e, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d segments (%s) -> %s (%s)\n",
				args[0], len(e.Segments()), docfile.KindFor(args[0]), args[1], docfile.KindFor(args[1]))
			return nil
		},
	}
	cmd.Flags().StringVar(&flow, "flow", "", "override the flow (vertical or horizontal)")
	return cmd
}
