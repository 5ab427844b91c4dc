// Package app is the root bubbletea model of the hymn viewer.
package app

import (
	"time"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/update"
)

// TickMsg refreshes the player bar once per second while audio plays.
type TickMsg time.Time

// HymnLoadedMsg carries the text and media of a hymn. Messages for a hymn
// that is no longer current are dropped.
type HymnLoadedMsg struct {
	Ref       hymnal.Ref
	Lyrics    string
	LyricsErr error
	Media     map[media.Kind]media.Record
	MediaErr  error
}

// PlaybackResolvedMsg reports what happened to a play request.
type PlaybackResolvedMsg struct {
	Key    media.Key
	Action media.Action // action actually taken
	Err    error
}

// PlaybackFinishedMsg is sent when local audio reaches its end.
type PlaybackFinishedMsg struct{}

// StatusClearMsg clears the status message if nothing newer replaced it.
type StatusClearMsg struct {
	Version int
}

// StderrMsg is a line captured from the audio backend.
type StderrMsg struct {
	Line string
}

// UpdateCheckedMsg carries the result of a mirror check.
type UpdateCheckedMsg struct {
	Result update.Result
	Manual bool // the user asked; report "up to date" too
}

// UpdateRecoveredMsg carries the state restored from the recorded
// downloads for the release in Result.
type UpdateRecoveredMsg struct {
	Recovery update.Recovery
	Result   update.Result
	Manual   bool
	Err      error
}

// DownloadStartedMsg reports a started (or resumed) package download.
type DownloadStartedMsg struct {
	JobID   int64
	Release update.Release
	Outcome <-chan update.Outcome
	Err     error
}

// DownloadProgressMsg is a byte count from the running download.
type DownloadProgressMsg struct {
	JobID int64
	Done  int64
	Total int64
}

// DownloadDoneMsg reports the end of a download.
type DownloadDoneMsg struct {
	Outcome update.Outcome
}

// InstalledMsg reports the end of an install.
type InstalledMsg struct {
	Target string
	Err    error
}

// downloadPrompt and installPrompt are the contexts of the update
// confirmations.
type downloadPrompt struct {
	Release update.Release
}

type installPrompt struct {
	Job update.Job
}
