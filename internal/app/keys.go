package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/keymap"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/player"
	"github.com/llehouerou/hymnchtv/internal/ui/helpbindings"
	"github.com/llehouerou/hymnchtv/internal/ui/numberentry"
	"github.com/llehouerou/hymnchtv/internal/update"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
	jumpStep   = 10
)

var hymnalActions = map[keymap.Action]hymnal.Type{
	keymap.ActionHymnalDB: hymnal.DB,
	keymap.ActionHymnalBB: hymnal.BB,
	keymap.ActionHymnalXB: hymnal.XB,
	keymap.ActionHymnalER: hymnal.ER,
}

var playActions = map[keymap.Action]media.Kind{
	keymap.ActionPlayBanzou:    media.KindAccompaniment,
	keymap.ActionPlayChangshi:  media.KindSinging,
	keymap.ActionPlayJiaochang: media.KindTeaching,
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	act := m.resolver.Resolve(key)

	if t, ok := hymnalActions[act]; ok {
		return m, m.switchHymnal(t)
	}
	if k, ok := playActions[act]; ok {
		m.mediaPanel.Select(k)
		return m, m.mediaPanel.PlayKind(k)
	}

	switch act {
	case keymap.ActionQuit:
		m.deps.Player.Stop()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.openPopup(helpbindings.New(m.hymnal))
		return m, m.popup.Init()
	case keymap.ActionToggleView:
		m.toggleView()
		return m, nil
	case keymap.ActionToggleMedia:
		m.mediaVisible = !m.mediaVisible
		m.resize()
		return m, nil
	case keymap.ActionCheckUpdate:
		return m.startUpdateCheck()

	case keymap.ActionNextHymn:
		return m, m.move(1)
	case keymap.ActionPrevHymn:
		return m, m.move(-1)
	case keymap.ActionNextHymn10:
		return m, m.move(jumpStep)
	case keymap.ActionPrevHymn10:
		return m, m.move(-jumpStep)
	case keymap.ActionFirstHymn:
		return m, m.goToIndex(0)
	case keymap.ActionLastHymn:
		return m, m.goToIndex(hymnal.IndexMax(m.hymnal) - 1)
	case keymap.ActionScrollDown:
		m.scroll(1)
		return m, nil
	case keymap.ActionScrollUp:
		m.scroll(-1)
		return m, nil
	case keymap.ActionNextPage:
		m.score.NextPage()
		return m, nil
	case keymap.ActionPrevPage:
		m.score.PrevPage()
		return m, nil
	case keymap.ActionZoomIn:
		if m.lyrics.ZoomIn() {
			return m, m.saveScale()
		}
		return m, nil
	case keymap.ActionZoomOut:
		if m.lyrics.ZoomOut() {
			return m, m.saveScale()
		}
		return m, nil
	case keymap.ActionEnterNumber:
		initial := ""
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			initial = key
		}
		m.openPopup(numberentry.New(m.hymnal, initial))
		return m, m.popup.Init()

	case keymap.ActionPlayMedia:
		return m, m.mediaPanel.Activate()
	case keymap.ActionMediaDown:
		m.mediaPanel.MoveDown()
		return m, nil
	case keymap.ActionMediaUp:
		m.mediaPanel.MoveUp()
		return m, nil

	case keymap.ActionPlayPause:
		m.deps.Player.Toggle()
		if m.deps.Player.State() == player.Playing {
			return m, TickCmd()
		}
		return m, nil
	case keymap.ActionStop:
		m.deps.Player.Stop()
		m.resize()
		return m, nil
	case keymap.ActionSeekBack:
		m.deps.Player.Seek(-seekStep)
		return m, nil
	case keymap.ActionSeekForward:
		m.deps.Player.Seek(seekStep)
		return m, nil
	case keymap.ActionVolumeUp:
		return m, m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		return m, m.changeVolume(-volumeStep)
	case keymap.ActionMute:
		m.deps.Player.SetMuted(!m.deps.Player.Muted())
		m.settings.Muted = m.deps.Player.Muted()
		return m, m.saveSettings()
	}
	return m, nil
}

// scroll moves the lyrics by lines, or the score by pages.
func (m *Model) scroll(delta int) {
	if m.viewMode == ViewScore {
		if delta > 0 {
			m.score.NextPage()
		} else {
			m.score.PrevPage()
		}
		return
	}
	if delta > 0 {
		m.lyrics.ScrollDown(delta)
	} else {
		m.lyrics.ScrollUp(-delta)
	}
}

func (m *Model) changeVolume(delta float64) tea.Cmd {
	m.deps.Player.SetVolume(m.deps.Player.Volume() + delta)
	m.settings.Volume = m.deps.Player.Volume()
	return m.saveSettings()
}

func (m Model) startUpdateCheck() (tea.Model, tea.Cmd) {
	if m.deps.Checker == nil {
		return m, m.setStatus("Update check disabled", levelInfo)
	}
	if m.updateState.Busy() {
		return m, m.setStatus("Update "+m.updateState.String(), levelInfo)
	}
	m.updateState = update.Checking
	return m, tea.Batch(m.setStatus("Checking for updates…", levelInfo), m.checkUpdateCmd(true))
}
