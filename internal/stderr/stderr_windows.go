//go:build windows

// Package stderr is a no-op on Windows, whose audio backend does not
// write to fd 2.
package stderr

import (
	"os"

	"go.uber.org/zap"
)

func Start(_ *zap.Logger) error {
	return nil
}

func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

func Stop() {}
