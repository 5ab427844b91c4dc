package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/ui/statusbar"
)

const (
	statusDuration = 4 * time.Second
	mediaTimeout   = 5 * time.Second
	launchTimeout  = 30 * time.Second
	updateTimeout  = time.Minute
)

const (
	levelInfo    = statusbar.LevelInfo
	levelWarning = statusbar.LevelWarning
	levelError   = statusbar.LevelError
)

// setStatus shows text on the status line and schedules its removal.
func (m *Model) setStatus(text string, level statusbar.Level) tea.Cmd {
	m.statusV++
	m.status.Message = text
	m.status.Level = level
	return StatusClearCmd(m.statusV)
}

func (m *Model) setError(op errmsg.Op, err error) tea.Cmd {
	return m.setStatus(errmsg.Format(op, err), levelError)
}

func (m *Model) clearStatus(version int) {
	if version == m.statusV {
		m.status.Message = ""
		m.status.Level = levelInfo
	}
}

// StatusClearCmd sends StatusClearMsg after the status display time.
func StatusClearCmd(version int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return StatusClearMsg{Version: version}
	})
}
