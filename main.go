package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/config"
	"github.com/llehouerou/hymnchtv/internal/logging"
	"github.com/llehouerou/hymnchtv/internal/state"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	statePath  string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "hymnchtv",
		Short:         "Hymn lyrics, scores and media in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/hymnchtv/config.toml)")
	flags.StringVar(&opts.statePath, "state", "", "state database (default: $XDG_DATA_HOME/hymnchtv/state.db)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newValidateCmd(),
		newMediaCmd(opts),
		newUpdateCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *options) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFrom(o.configPath)
	}
	return config.Load()
}

func (o *options) openState() (*state.Manager, error) {
	if o.statePath != "" {
		return state.OpenAt(o.statePath)
	}
	return state.Open()
}

// consoleLogger is used by subcommands, which keep the terminal.
func (o *options) consoleLogger(cfg *config.Config) (*zap.Logger, error) {
	level := o.logLevel
	if level == "" {
		level = cfg.Log.Level
	}
	if level == "" {
		level = "warn"
	}
	return logging.New(logging.Options{Level: level, Console: true})
}
