//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA) that write
// directly to file descriptor 2, bypassing Go's os.Stderr. Captured lines
// are logged instead of corrupting the TUI layout.
package stderr

import (
	"os"
	"syscall"

	"go.uber.org/zap"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into a pipe whose lines go to logger and Messages.
// It must run before the audio backend initializes. On error the program
// continues with the original stderr.
func Start(logger *zap.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go forward(pipeRead, logger, Messages)
	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	pipeWrite.Close()
	pipeRead.Close()
	started = false
}
