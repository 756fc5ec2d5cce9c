package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/dispatcher"
	"github.com/dshills/vtext/internal/docfile"
	"github.com/dshills/vtext/internal/script"
)

// newScriptCmd creates the script subcommand
func newScriptCmd() *cobra.Command {
	var (
		input   string
		output  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script against a document",
		Long: `Run a Lua script against a document without opening the editor. The
script sees the "ed" module. Without --input the document starts empty.
Without --output the resulting text is printed after the script output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())
			defer logger.Close()

			e, id := newEngine(cfg), docfile.NewID()
			if input != "" {
				if e, id, err = openEngine(cmd, cfg, []string{input}); err != nil {
					return err
				}
			}

			d := dispatcher.New(dispatcher.DefaultConfig())
			dispatcher.RegisterDefaults(d)
			d.SetEngine(e)

			runner := script.New(e,
				script.WithDispatcher(d),
				script.WithLogger(logger),
				script.WithOutput(cmd.OutOrStdout()),
				script.WithTimeout(timeout),
			)
			if err := runner.RunFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), e.Text())
				return nil
			}
			return docfile.Save(output, e, id)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "document to load before running")
	cmd.Flags().StringVarP(&output, "output", "o", "", "document to write after running")
	cmd.Flags().DurationVar(&timeout, "timeout", script.DefaultTimeout, "abort the script after this long (0 disables)")
	return cmd
}
