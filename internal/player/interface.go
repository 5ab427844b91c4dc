package player

import "time"

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	Seek(delta time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	OnFinished(fn func())
	FinishedChan() <-chan struct{}
	Done() <-chan struct{}
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
