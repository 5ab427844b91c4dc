package player

import (
	"path/filepath"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	trackInfo  *TrackInfo
	volume     float64
	muted      bool
	playErr    error
	playCalls  []string
	seekCalls  []time.Duration
	finishedCh chan struct{}
	done       chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1,
		finishedCh: make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.trackInfo = &TrackInfo{Path: path, Title: baseName(filepath.Base(path)), Duration: m.duration}
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.trackInfo = nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *TrackInfo { return m.trackInfo }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Seek(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
}

func (m *Mock) SetVolume(level float64) { m.volume = ClampVolume(level) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) OnFinished(_ func()) {}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) Done() <-chan struct{} {
	return m.done
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPosition(pos, dur time.Duration) {
	m.position = pos
	m.duration = dur
}

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// SimulateFinished signals end of track.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}
