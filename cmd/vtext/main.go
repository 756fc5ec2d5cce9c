// Package main is the entry point for the vtext editor.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/vtext/internal/config"
	"github.com/dshills/vtext/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
	settings   []string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vtext",
		Short: "Vertical and horizontal rich-text editor",
		Long: `vtext edits styled text laid out in vertical columns, read right to left,
or in horizontal rows.

Commands:
  vtext edit [file]               Open the terminal editor
  vtext render [file]             Print a frame of the document
  vtext metrics [file]            Print segment geometry measured with the Go fonts
  vtext script <file.lua>         Run a Lua script against a document
  vtext convert <in> <out>        Convert between plain text and .vtx

Documents ending in .vtx, .yaml or .yml keep formatting and flow. Any other
extension is read and written as plain text.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file")
	rootCmd.PersistentFlags().StringArrayVar(&settings, "set", nil, "override a setting, e.g. --set editor.flow=horizontal")

	rootCmd.AddCommand(
		newEditCmd(),
		newRenderCmd(),
		newMetricsCmd(),
		newScriptCmd(),
		newConvertCmd(),
	)
	return rootCmd
}

// resolvedConfigPath returns the --config value or the user config path.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// overrides collects --set, --log-level and --log-file as config settings.
func overrides() (map[string]string, error) {
	out := make(map[string]string, len(settings)+2)
	for _, s := range settings {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		out[key] = value
	}
	if logLevel != "" {
		if !logging.ValidLevel(logLevel) {
			return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", logLevel)
		}
		out["logging.level"] = logLevel
	}
	if logFile != "" {
		out["logging.file"] = logFile
	}
	return out, nil
}

// loadConfig reads the configuration and applies the command line
// overrides in sorted order.
func loadConfig() (*config.Config, map[string]string, error) {
	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	over, err := overrides()
	if err != nil {
		return nil, nil, err
	}

	keys := make([]string, 0, len(over))
	for k := range over {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, over[k]); err != nil {
			return nil, nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, over, nil
}

// newLogger builds the process logger. Without a log file records go to w.
func newLogger(cfg *config.Config, w io.Writer) *logging.Logger {
	lc := cfg.Logging.LoggerConfig()
	if lc.File == "" {
		lc.Output = w
	}
	logger := logging.New(lc)
	logging.SetDefault(logger)
	return logger
}
