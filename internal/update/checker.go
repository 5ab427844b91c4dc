package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/config"
)

// DescriptorPath is the descriptor location relative to a mirror.
const DescriptorPath = "/releases/hymnchtv/versionupdate.properties"

const maxDescriptorSize = 64 << 10

// Result is the outcome of a check.
type Result struct {
	State   State
	Current Release
	Latest  Release
	Mirror  string
}

// Reached reports whether a mirror answered. A check that failed open has
// no latest release to match downloads against.
func (r Result) Reached() bool {
	return r.Mirror != ""
}

// Checker polls the release mirrors.
type Checker struct {
	client  *http.Client
	cfg     config.UpdateConfig
	current Release
	logger  *zap.Logger
}

// NewChecker creates a checker. A nil client uses http.DefaultClient.
func NewChecker(cfg config.UpdateConfig, client *http.Client, current Release, logger *zap.Logger) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{client: client, cfg: cfg, current: current, logger: logger}
}

// Check tries each mirror in order and compares the first descriptor
// fetched against the running build. When no mirror answers the result is
// UpToDate and the failure is only logged.
func (c *Checker) Check(ctx context.Context) Result {
	res := Result{State: UpToDate, Current: c.current}

	for _, mirror := range c.cfg.Mirrors {
		latest, err := c.fetch(ctx, mirror)
		if err != nil {
			c.logger.Warn("update mirror unavailable", zap.String("mirror", mirror), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		res.Latest = latest
		res.Mirror = mirror
		if latest.Code > c.current.Code {
			res.State = UpdateAvailable
		}
		c.logger.Info("update check complete",
			zap.String("mirror", mirror),
			zap.Stringer("current", c.current),
			zap.Stringer("latest", latest),
			zap.Stringer("state", res.State))
		return res
	}

	c.logger.Warn("could not retrieve update descriptor, assuming latest version")
	return res
}

func (c *Checker) fetch(ctx context.Context, mirror string) (Release, error) {
	timeout := c.cfg.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirror+DescriptorPath, http.NoBody)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return Release{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorSize))
	if err != nil {
		return Release{}, err
	}
	return ParseDescriptor(data, c.cfg.Debug)
}
