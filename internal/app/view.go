package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/keymap"
	"github.com/llehouerou/hymnchtv/internal/ui/headerbar"
	"github.com/llehouerou/hymnchtv/internal/ui/helpbindings"
	"github.com/llehouerou/hymnchtv/internal/ui/kittyimg"
	"github.com/llehouerou/hymnchtv/internal/ui/playerbar"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/statusbar"
)

const imageStart = "\x1b_G"

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := headerbar.Render(m.ref, m.score.Page(), m.score.Pages(), m.width)

	// An image stays on screen until deleted. The deletion rides on a line
	// that changes whenever the picture does.
	body, image := m.renderBody()
	if !image && m.deps.Graphics {
		header = kittyimg.DeleteAll + header
	}

	if m.mediaVisible {
		panel := m.mediaPanel.View()
		if m.sideBySide() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, panel)
		}
	}

	sections := []string{header, body}
	if bar := playerbar.Render(playerbar.NewState(m.deps.Player), m.width); bar != "" {
		sections = append(sections, bar)
	}
	st := m.status
	st.Hint = m.hint()
	sections = append(sections, statusbar.Render(st, m.width))

	view := strings.Join(sections, "\n")
	if m.popup != nil {
		overlay := popup.RenderBordered(m.popup.View(), m.width, m.height)
		view = popup.Compose(view, overlay, m.width)
	}
	return fitHeight(view, m.height)
}

// renderBody returns the lyrics or score area, padded to its full size,
// and whether it places an image.
func (m Model) renderBody() (string, bool) {
	w, h := m.lyrics.Size()
	box := lipgloss.NewStyle().Width(w).Height(h)
	if m.viewMode == ViewLyrics {
		return box.Render(m.lyrics.View()), false
	}
	// Images are drawn above text, so they would hide an open popup.
	if m.popup != nil && m.deps.Graphics {
		return box.Render(""), false
	}
	v := m.score.View()
	if !strings.HasPrefix(v, imageStart) {
		return box.Render(v), false
	}
	lines := strings.Split(v, "\n")
	blank := strings.Repeat(" ", w)
	for i := range lines {
		lines[i] += blank
	}
	lines[0] = kittyimg.DeleteAll + lines[0]
	return strings.Join(lines, "\n"), true
}

func (m Model) hint() string {
	keys := func(a keymap.Action) string {
		ks := m.resolver.KeysFor(a)
		if len(ks) == 0 {
			return ""
		}
		return helpbindings.KeyLabel(ks[:1])
	}
	return keys(keymap.ActionHelp) + " help  " +
		keys(keymap.ActionEnterNumber) + " number  " +
		keys(keymap.ActionToggleView) + " lyrics/score  " +
		keys(keymap.ActionToggleMedia) + " media"
}

// fitHeight pads or cuts view to exactly height lines.
func fitHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
