package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
)

// saveScale stores the current lyrics scale for the terminal's shape.
func (m *Model) saveScale() tea.Cmd {
	if Wide(m.width, m.height) {
		m.settings.LyricsScaleWide = m.lyrics.Scale()
	} else {
		m.settings.LyricsScaleNarrow = m.lyrics.Scale()
	}
	return m.saveSettings()
}

func (m *Model) saveSettings() tea.Cmd {
	if err := m.deps.State.SaveViewerSettings(m.settings); err != nil {
		m.logger.Error("failed to save viewer settings", zap.Error(err))
		return m.setError(errmsg.OpSettingsSave, err)
	}
	return nil
}
