// Package launch carries out resolved media actions by starting the
// embedded player, the YouTube extractor, a MIME handler or the desktop
// opener.
package launch

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/config"
	"github.com/llehouerou/hymnchtv/internal/media"
)

const (
	anyMIME        = "*/*"
	extractTimeout = 30 * time.Second
	queryTimeout   = 5 * time.Second
)

// Dispatcher runs media actions.
type Dispatcher struct {
	cfg    config.PlayerConfig
	runner Runner
	logger *zap.Logger
}

// New creates a dispatcher. A nil runner uses ExecRunner; a nil logger
// disables logging.
func New(cfg config.PlayerConfig, runner Runner, logger *zap.Logger) *Dispatcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{cfg: cfg, runner: runner, logger: logger}
}

// Run performs action and returns the action actually taken. LocalAudio
// and NoAction are returned unchanged for the caller to handle; a YouTube
// link without a stream falls back to OpenExternal.
func (d *Dispatcher) Run(ctx context.Context, action media.Action) (media.Action, error) {
	switch a := action.(type) {
	case media.PlayEmbedded:
		return d.playEmbedded(ctx, a)
	case media.OpenExternal:
		return a, d.openExternal(ctx, a)
	default:
		return action, nil
	}
}

func (d *Dispatcher) playEmbedded(ctx context.Context, a media.PlayEmbedded) (media.Action, error) {
	target := a.URL
	if media.IsYouTube(a.URL) {
		stream := d.extract(ctx, a.URL)
		if stream == "" {
			d.logger.Warn("no stream extracted, opening link externally", zap.String("url", a.URL))
			fallback := media.OpenExternal{URI: a.URL, MIME: "text/html"}
			return fallback, d.openExternal(ctx, fallback)
		}
		target = stream
	}

	args := append(append([]string{}, d.cfg.EmbeddedArgs...), target)
	d.logger.Info("starting embedded player", zap.String("player", d.cfg.Embedded), zap.String("url", target))
	if err := d.runner.Start(d.cfg.Embedded, args...); err != nil {
		d.logger.Error("embedded player failed", zap.Error(err))
		return a, err
	}
	return media.PlayEmbedded{URL: target}, nil
}

// extract returns the first direct stream URL for a YouTube link, or ""
// when the extractor is missing or finds nothing.
func (d *Dispatcher) extract(ctx context.Context, link string) string {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	out, err := d.runner.Output(ctx, d.cfg.YtDlp, "-g", "--no-playlist", "-f", "best", link)
	if err != nil {
		d.logger.Warn("youtube extraction failed", zap.String("url", link), zap.Error(err))
		return ""
	}
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); media.IsRemoteURL(line) {
			return line
		}
	}
	return ""
}

// handler returns the desktop entry registered for mimeType, or "".
func (d *Dispatcher) handler(ctx context.Context, mimeType string) string {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := d.runner.Output(ctx, d.cfg.MimeQuery, "query", "default", mimeType)
	if err != nil {
		d.logger.Debug("mime handler query failed", zap.String("mime", mimeType), zap.Error(err))
		return ""
	}
	return out
}

// openExternal starts the desktop entry registered for the MIME type. When
// there is none, or it cannot be started, the type is widened to */* and the
// generic opener picks the application. A missing opener is logged and not
// reported as an error.
func (d *Dispatcher) openExternal(ctx context.Context, a media.OpenExternal) error {
	if a.MIME != "" {
		if entry := d.handler(ctx, a.MIME); entry != "" {
			err := d.runner.Start(d.cfg.Launcher, entry, a.URI)
			if err == nil {
				d.logger.Info("opened externally",
					zap.String("uri", a.URI), zap.String("mime", a.MIME), zap.String("handler", entry))
				return nil
			}
			d.logger.Warn("media handler failed to start",
				zap.String("handler", entry), zap.String("uri", a.URI), zap.Error(err))
		}
	}

	d.logger.Info("no handler for media type, using "+anyMIME,
		zap.String("mime", a.MIME), zap.String("uri", a.URI))
	err := d.runner.Start(d.cfg.Opener, a.URI)
	if err == nil {
		d.logger.Info("opened externally", zap.String("uri", a.URI), zap.String("mime", anyMIME))
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		d.logger.Warn("no external opener available",
			zap.String("opener", d.cfg.Opener), zap.String("uri", a.URI))
		return nil
	}
	d.logger.Error("external open failed", zap.String("uri", a.URI), zap.Error(err))
	return err
}
