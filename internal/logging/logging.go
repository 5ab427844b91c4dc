// Package logging builds the application's zap logger. While the TUI owns
// the terminal, log output goes to a file under the XDG state directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "hymnchtv"

// Options controls where and how much is logged.
type Options struct {
	Level string // debug, info, warn, error; empty means info
	File  string // log file path; empty means $XDG_STATE_HOME/hymnchtv/hymnchtv.log
	// Console logs to stderr instead of a file (CLI subcommands).
	Console bool
}

// DefaultFile returns the default log file location.
func DefaultFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil

	if opts.Console {
		config.Encoding = "console"
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		return config.Build()
	}

	path := opts.File
	if path == "" {
		var err error
		path, err = DefaultFile()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	return config.Build()
}
