package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/content"
	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/state"
)

func clampIndex(t hymnal.Type, index int) int {
	return max(min(index, hymnal.IndexMax(t)-1), 0)
}

// setIndex points the model at index of the current hymnal without
// loading anything.
func (m *Model) setIndex(index int) {
	index = clampIndex(m.hymnal, index)
	ref, err := hymnal.NumberAt(m.hymnal, index)
	if err != nil {
		m.logger.Error("index has no hymn", zap.Stringer("hymnal", m.hymnal), zap.Int("index", index), zap.Error(err))
		return
	}
	m.indexes[m.hymnal] = index
	m.ref = ref
	m.score.SetHymn(ref)
}

// goToIndex shows the hymn at index and loads its content.
func (m *Model) goToIndex(index int) tea.Cmd {
	prev := m.ref
	m.setIndex(index)
	if m.ref == prev {
		return nil
	}
	m.saveNavigation()
	return m.loadHymnCmd(m.ref)
}

// move shifts the index by delta, stopping at the ends.
func (m *Model) move(delta int) tea.Cmd {
	return m.goToIndex(m.indexes[m.hymnal] + delta)
}

// goToRef shows a validated hymn number.
func (m *Model) goToRef(ref hymnal.Ref) tea.Cmd {
	index, err := hymnal.IndexOf(ref)
	if err != nil {
		m.logger.Warn("hymn has no page", zap.Stringer("hymn", ref), zap.Error(err))
		return m.setStatus(err.Error(), levelWarning)
	}
	m.hymnal = ref.Type
	prev := m.ref
	m.setIndex(index)
	if m.ref == prev {
		return nil
	}
	m.saveNavigation()
	return m.loadHymnCmd(m.ref)
}

// switchHymnal shows t at the position last used in it.
func (m *Model) switchHymnal(t hymnal.Type) tea.Cmd {
	if t == m.hymnal {
		return nil
	}
	m.hymnal = t
	m.setIndex(m.indexes[t])
	m.saveNavigation()
	return m.loadHymnCmd(m.ref)
}

func (m *Model) toggleView() {
	if m.viewMode == ViewLyrics {
		m.viewMode = ViewScore
	} else {
		m.viewMode = ViewLyrics
	}
	m.saveNavigation()
}

func (m *Model) saveNavigation() {
	m.deps.State.SaveNavigation(state.NavigationState{
		Hymnal:   m.hymnal.String(),
		Index:    m.indexes[m.hymnal],
		ViewMode: string(m.viewMode),
	})
}

// loadHymnCmd reads the lyrics and the stored media of ref.
func (m Model) loadHymnCmd(ref hymnal.Ref) tea.Cmd {
	lib := m.deps.Content
	store := m.deps.Media
	return func() tea.Msg {
		msg := HymnLoadedMsg{Ref: ref}
		msg.Lyrics, msg.LyricsErr = lib.Lyrics(ref)

		ctx, cancel := context.WithTimeout(context.Background(), mediaTimeout)
		defer cancel()
		msg.Media, msg.MediaErr = store.ForHymn(ctx, ref)
		return msg
	}
}

func (m Model) handleHymnLoaded(msg HymnLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Ref != m.ref {
		return m, nil
	}

	var cmds []tea.Cmd
	switch {
	case msg.LyricsErr == nil:
		m.lyrics.SetText(msg.Lyrics)
	case errors.Is(msg.LyricsErr, content.ErrNotFound):
		m.lyrics.SetText("")
	default:
		m.lyrics.SetText("")
		m.logger.Error("failed to load lyrics", zap.Stringer("hymn", msg.Ref), zap.Error(msg.LyricsErr))
		cmds = append(cmds, m.setError(errmsg.OpLyricsLoad, msg.LyricsErr))
	}

	if msg.MediaErr != nil {
		m.logger.Error("failed to load hymn media", zap.Stringer("hymn", msg.Ref), zap.Error(msg.MediaErr))
		cmds = append(cmds, m.setError(errmsg.OpMediaLoad, msg.MediaErr))
	}
	m.mediaPanel.SetHymn(msg.Ref, msg.Media)
	return m, tea.Batch(cmds...)
}
