package app

import (
	"github.com/llehouerou/hymnchtv/internal/ui/headerbar"
	"github.com/llehouerou/hymnchtv/internal/ui/mediapanel"
	"github.com/llehouerou/hymnchtv/internal/ui/playerbar"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/statusbar"
)

const (
	// sideBySideWidth is the narrowest terminal that fits the media panel
	// beside the body.
	sideBySideWidth = 70
	// stackedPanelHeight fits the title, one row per kind and the hint.
	stackedPanelHeight = 11
	popupMaxWidth      = 72
)

// Wide reports whether the terminal is at least twice as wide as tall, the
// equivalent of a landscape screen. Lyrics zoom is kept per shape.
func Wide(width, height int) bool {
	return width >= 2*height
}

func (m Model) headerHeight() int {
	if m.width < 20 {
		return 1
	}
	return headerbar.Height
}

func (m Model) playerHeight() int {
	if playerbar.NewState(m.deps.Player).Visible() {
		return playerbar.Height
	}
	return 0
}

func (m Model) sideBySide() bool {
	return m.mediaVisible && m.width >= sideBySideWidth
}

// bodyHeight is what is left between the header and the bottom bars.
func (m Model) bodyHeight() int {
	return max(m.height-m.headerHeight()-m.playerHeight()-statusbar.Height, 0)
}

// resize hands every component its share of the screen.
func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyW, bodyH := m.width, m.bodyHeight()

	switch {
	case !m.mediaVisible:
		m.mediaPanel.SetSize(0, 0)
	case m.sideBySide():
		bodyW = m.width - mediapanel.Width
		m.mediaPanel.SetSize(mediapanel.Width, bodyH)
	default:
		panelH := min(stackedPanelHeight, bodyH/2)
		bodyH -= panelH
		m.mediaPanel.SetSize(m.width, panelH)
	}
	m.mediaPanel.SetFocused(m.mediaVisible)

	m.lyrics.SetSize(bodyW, bodyH)
	m.score.SetSize(bodyW, bodyH)
	m.lyrics.SetScale(m.scaleSetting())

	if m.popup != nil {
		m.popup.SetSize(popup.InnerSize(m.width, m.height, popupMaxWidth))
	}
}

// scaleSetting returns the saved lyrics scale for the current shape.
func (m Model) scaleSetting() float64 {
	if Wide(m.width, m.height) {
		return m.settings.LyricsScaleWide
	}
	return m.settings.LyricsScaleNarrow
}

func (m *Model) openPopup(p popup.Popup) {
	m.popup = p
	if m.width > 0 && m.height > 0 {
		p.SetSize(popup.InnerSize(m.width, m.height, popupMaxWidth))
	}
}
