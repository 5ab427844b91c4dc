// Package player plays local hymn audio files through the system speaker.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extOGA  = ".oga"
)

// ErrUnsupportedFormat is returned for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player plays one local file at a time.
type Player struct {
	mu         sync.Mutex
	state      State
	ctrl       *beep.Ctrl
	volume     *effects.Volume
	streamer   beep.StreamSeekCloser
	format     beep.Format
	file       *os.File
	trackInfo  *TrackInfo
	done       chan struct{}
	finishedCh chan struct{}
	onFinished func()

	volumeLevel float64
	muted       bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// New creates a stopped player at full volume.
func New() *Player {
	done := make(chan struct{})
	close(done)
	return &Player{
		state:       Stopped,
		done:        done,
		finishedCh:  make(chan struct{}, 1),
		volumeLevel: 1,
	}
}

// IsAudioFile reports whether path has an extension the player can decode.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extOGA:
		return true
	}
	return false
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		return flac.Decode(f)
	case extWAV:
		return wav.Decode(f)
	case extOGG, extOGA:
		return vorbis.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerErr
}

// Play stops any current track and starts path.
func (p *Player) Play(path string) error {
	p.Stop()

	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, ext)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	var source beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		source = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	info, err := ReadTrackInfo(path)
	if err != nil {
		info = &TrackInfo{Path: path, Title: filepath.Base(path)}
	}
	info.Duration = format.SampleRate.D(streamer.Len())

	p.mu.Lock()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: source}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}
	p.trackInfo = info
	p.state = Playing
	done := make(chan struct{})
	p.done = done
	vol := p.volume
	p.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		go p.finished(done)
	})))

	return nil
}

func (p *Player) finished(done chan struct{}) {
	p.mu.Lock()
	if p.done != done {
		p.mu.Unlock()
		return
	}
	p.release()
	fn := p.onFinished
	p.mu.Unlock()

	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
	if fn != nil {
		fn()
	}
}

// release closes the decoder and file. Callers hold p.mu.
func (p *Player) release() {
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.state = Stopped

	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	speaker.Clear()

	p.mu.Lock()
	p.release()
	p.mu.Unlock()
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

// Seek moves the position by delta, clamped to the track bounds.
func (p *Player) Seek(delta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	target := p.streamer.Position() + p.format.SampleRate.N(delta)
	target = max(0, min(target, p.streamer.Len()-1))
	_ = p.streamer.Seek(target)
}

// OnFinished registers a callback run when a track ends on its own.
func (p *Player) OnFinished(fn func()) {
	p.mu.Lock()
	p.onFinished = fn
	p.mu.Unlock()
}

// FinishedChan receives once per track that reached its end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// Done is closed when the current track stops for any reason.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}
