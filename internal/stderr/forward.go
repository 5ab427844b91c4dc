package stderr

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Messages receives captured lines for display in the status bar.
var Messages = make(chan string, 100)

// forward logs each non-empty line of r and offers it on out without
// blocking. It returns when r is closed.
func forward(r io.Reader, logger *zap.Logger, out chan<- string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logger.Warn("captured stderr", zap.String("line", line))
		select {
		case out <- line:
		default:
		}
	}
}
