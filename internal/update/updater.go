package update

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

var (
	ErrNoLink          = errors.New("release has no download link")
	ErrAlreadyRunning  = errors.New("download already running")
	ErrVersionMismatch = errors.New("package version mismatch")
	ErrClosed          = errors.New("updater closed")
)

const (
	progressInterval = 500 * time.Millisecond
	progressBytes    = 256 << 10
)

// Outcome reports the end of a download.
type Outcome struct {
	JobID int64
	Path  string
	Err   error
}

// Updater downloads release packages in the background and tracks them in
// the update_downloads table.
type Updater struct {
	store      *Store
	client     *http.Client
	dir        string
	logger     *zap.Logger
	onProgress func(id, done, total int64)

	mu      sync.Mutex
	active  map[int64]context.CancelFunc
	closing bool
	wg      sync.WaitGroup
}

// DefaultDir is where packages are downloaded.
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "hymnchtv", "updates")
}

// NewUpdater creates an updater storing packages in dir.
func NewUpdater(db *sql.DB, client *http.Client, dir string, logger *zap.Logger) *Updater {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Updater{
		store:  NewStore(db),
		client: client,
		dir:    dir,
		logger: logger,
		active: make(map[int64]context.CancelFunc),
	}
}

// Store exposes the job store.
func (u *Updater) Store() *Store { return u.store }

// OnProgress registers a callback for byte progress. It runs on the
// download goroutine.
func (u *Updater) OnProgress(fn func(id, done, total int64)) {
	u.mu.Lock()
	u.onProgress = fn
	u.mu.Unlock()
}

// Download starts fetching rel's package. The returned channel receives a
// single Outcome and is then closed.
func (u *Updater) Download(ctx context.Context, rel Release) (int64, <-chan Outcome, error) {
	if rel.Link == "" {
		return 0, nil, ErrNoLink
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return 0, nil, fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(u.dir, packageName(rel))
	id, err := u.store.Create(ctx, rel.Link, path, rel.Code)
	if err != nil {
		return 0, nil, fmt.Errorf("record download: %w", err)
	}

	u.logger.Info("downloading update", zap.String("url", rel.Link), zap.String("path", path), zap.Int64("job", id))
	ch, err := u.start(ctx, Job{ID: id, URL: rel.Link, Path: path, VersionCode: rel.Code}, 0)
	if err != nil {
		return 0, nil, err
	}
	return id, ch, nil
}

// Resume continues an interrupted running job from the bytes already on
// disk.
func (u *Updater) Resume(ctx context.Context, job Job) (<-chan Outcome, error) {
	var offset int64
	if info, err := os.Stat(job.Path); err == nil {
		offset = info.Size()
	}
	u.logger.Info("resuming update download", zap.Int64("job", job.ID), zap.Int64("offset", offset))
	return u.start(ctx, job, offset)
}

// Active reports whether job id is being downloaded by this process.
func (u *Updater) Active(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.active[id]
	return ok
}

func (u *Updater) start(ctx context.Context, job Job, offset int64) (<-chan Outcome, error) {
	u.mu.Lock()
	if u.closing {
		u.mu.Unlock()
		return nil, ErrClosed
	}
	if _, ok := u.active[job.ID]; ok {
		u.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	u.active[job.ID] = cancel
	u.wg.Add(1)
	u.mu.Unlock()

	ch := make(chan Outcome, 1)
	go func() {
		defer u.wg.Done()
		defer close(ch)

		err := u.fetch(ctx, job, offset)

		u.mu.Lock()
		delete(u.active, job.ID)
		interrupted := err != nil && u.closing && ctx.Err() != nil
		u.mu.Unlock()
		cancel()

		// Shutting down: the row stays running and the partial file is
		// kept so the next start resumes it.
		if interrupted {
			u.logger.Info("update download interrupted", zap.Int64("job", job.ID), zap.String("path", job.Path))
			ch <- Outcome{JobID: job.ID, Path: job.Path, Err: err}
			return
		}

		if ferr := u.store.Finish(context.WithoutCancel(ctx), job.ID, err); ferr != nil {
			u.logger.Error("failed to record download status", zap.Int64("job", job.ID), zap.Error(ferr))
		}
		if err != nil {
			u.logger.Warn("update download failed", zap.Int64("job", job.ID), zap.Error(err))
		} else {
			u.logger.Info("update download complete", zap.Int64("job", job.ID), zap.String("path", job.Path))
		}
		ch <- Outcome{JobID: job.ID, Path: job.Path, Err: err}
	}()
	return ch, nil
}

func (u *Updater) fetch(ctx context.Context, job Job, offset int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.URL, http.NoBody)
	if err != nil {
		return err
	}
	if offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	flags := os.O_CREATE | os.O_WRONLY
	switch {
	case resp.StatusCode == http.StatusPartialContent && offset > 0:
		flags |= os.O_APPEND
	case resp.StatusCode == http.StatusOK:
		flags |= os.O_TRUNC
		offset = 0
	default:
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.OpenFile(job.Path, flags, 0o644)
	if err != nil {
		return err
	}

	total := int64(0)
	if resp.ContentLength > 0 {
		total = offset + resp.ContentLength
	}
	w := &progressWriter{u: u, ctx: ctx, id: job.ID, done: offset, total: total}

	_, err = io.Copy(io.MultiWriter(f, w), resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	w.flush()
	if err != nil {
		return err
	}
	if total > 0 && w.done < total {
		return fmt.Errorf("incomplete download: %d of %d bytes", w.done, total)
	}
	return nil
}

type progressWriter struct {
	u         *Updater
	ctx       context.Context
	id        int64
	done      int64
	total     int64
	lastBytes int64
	lastTime  time.Time
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.done += int64(len(p))
	if w.done-w.lastBytes >= progressBytes || time.Since(w.lastTime) >= progressInterval {
		w.flush()
	}
	return len(p), nil
}

func (w *progressWriter) flush() {
	w.lastBytes, w.lastTime = w.done, time.Now()
	if err := w.u.store.Progress(context.WithoutCancel(w.ctx), w.id, w.done, w.total); err != nil {
		w.u.logger.Debug("failed to record progress", zap.Error(err))
	}
	w.u.mu.Lock()
	fn := w.u.onProgress
	w.u.mu.Unlock()
	if fn != nil {
		fn(w.id, w.done, w.total)
	}
}

// Recovery is the state restored from the recorded jobs.
type Recovery struct {
	State   State
	Job     *Job
	Err     error
	Removed int // stale jobs deleted
}

// Recover matches the recorded jobs against the release the mirrors
// announce. While latest is newer than current the newest job for latest
// is restored, and a finished package must carry latest's version code to
// be offered for install. Every other job is stale and is deleted with its
// package unless this process is still downloading it.
func (u *Updater) Recover(ctx context.Context, current, latest Release) (Recovery, error) {
	jobs, err := u.store.List(ctx)
	if err != nil {
		return Recovery{}, err
	}

	newer := latest.Code > current.Code
	rec := Recovery{State: UpToDate}
	if newer {
		rec.State = UpdateAvailable
	}

	for i := range jobs {
		job := &jobs[i]
		if newer && rec.Job == nil && job.VersionCode == latest.Code {
			rec = u.restore(job, latest)
			continue
		}
		if u.Active(job.ID) {
			continue
		}
		keepFile := rec.Job != nil && rec.Job.Path == job.Path
		if err := u.discard(ctx, *job, keepFile); err != nil {
			return Recovery{}, err
		}
		rec.Removed++
	}
	if rec.Removed > 0 {
		u.logger.Info("removed stale update downloads",
			zap.Int("count", rec.Removed), zap.Stringer("current", current), zap.Stringer("latest", latest))
	}
	return rec, nil
}

func (u *Updater) restore(job *Job, latest Release) Recovery {
	switch job.Status {
	case StatusRunning:
		return Recovery{State: Downloading, Job: job}
	case StatusFailed:
		return Recovery{State: Failed, Job: job, Err: errors.New(job.Err)}
	}

	code, err := PackageVersionCode(job.Path)
	if err != nil {
		u.logger.Warn("downloaded package unreadable", zap.String("path", job.Path), zap.Error(err))
		return Recovery{State: Failed, Job: job, Err: err}
	}
	if code != latest.Code {
		err := fmt.Errorf("%w: package %d, expected %d", ErrVersionMismatch, code, latest.Code)
		u.logger.Warn("downloaded package rejected", zap.Error(err))
		return Recovery{State: Failed, Job: job, Err: err}
	}
	return Recovery{State: InstallPrompt, Job: job}
}

func (u *Updater) discard(ctx context.Context, job Job, keepFile bool) error {
	if err := u.store.Delete(ctx, job.ID); err != nil {
		return err
	}
	if keepFile {
		return nil
	}
	if err := os.Remove(job.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		u.logger.Warn("failed to remove package", zap.String("path", job.Path), zap.Error(err))
	}
	return nil
}

// RemoveOldDownloads deletes finished jobs and their package files.
func (u *Updater) RemoveOldDownloads(ctx context.Context) (int, error) {
	jobs, err := u.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, j := range jobs {
		if err := os.Remove(j.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			u.logger.Warn("failed to remove package", zap.String("path", j.Path), zap.Error(err))
		}
	}
	return len(jobs), nil
}

// Close stops running downloads and waits for their goroutines. Their jobs
// stay running so Recover resumes them on the next start.
func (u *Updater) Close() {
	u.mu.Lock()
	u.closing = true
	for _, cancel := range u.active {
		cancel()
	}
	u.mu.Unlock()
	u.wg.Wait()
}

// FormatProgress renders byte progress for the status line.
func FormatProgress(done, total int64) string {
	if total <= 0 {
		return humanize.Bytes(uint64(max(done, 0)))
	}
	pct := float64(done) / float64(total) * 100
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.Bytes(uint64(done)), humanize.Bytes(uint64(total)), pct)
}

func packageName(rel Release) string {
	v := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, rel.Version)
	return fmt.Sprintf("hymnchtv-%s-%d.zip", v, rel.Code)
}
