// Package mediapanel lists the media stored for the current hymn, one row
// per media kind.
package mediapanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

// Width is the preferred panel width including the border.
const Width = 34

const labelWidth = 6

// Model is the media panel.
type Model struct {
	ui.Base
	ref     hymnal.Ref
	records map[media.Kind]media.Record
	cursor  int
}

// New creates an empty panel.
func New() *Model {
	return &Model{records: map[media.Kind]media.Record{}}
}

// SetHymn shows the records of ref. The cursor stays on the same kind.
func (m *Model) SetHymn(ref hymnal.Ref, records map[media.Kind]media.Record) {
	m.ref = ref
	if records == nil {
		records = map[media.Kind]media.Record{}
	}
	m.records = records
}

// Hymn returns the hymn being shown.
func (m *Model) Hymn() hymnal.Ref { return m.ref }

// Record returns the stored record of kind k.
func (m *Model) Record(k media.Kind) (media.Record, bool) {
	rec, ok := m.records[k]
	return rec, ok
}

// Count returns how many kinds have something stored.
func (m *Model) Count() int { return len(m.records) }

// Selected returns the kind under the cursor.
func (m *Model) Selected() media.Kind { return media.Kinds[m.cursor] }

// MoveDown moves the cursor to the next kind, wrapping at the end.
func (m *Model) MoveDown() {
	m.cursor = (m.cursor + 1) % len(media.Kinds)
}

// MoveUp moves the cursor to the previous kind, wrapping at the start.
func (m *Model) MoveUp() {
	m.cursor = (m.cursor + len(media.Kinds) - 1) % len(media.Kinds)
}

// Select moves the cursor to kind k.
func (m *Model) Select(k media.Kind) {
	for i, kind := range media.Kinds {
		if kind == k {
			m.cursor = i
			return
		}
	}
}

// Activate plays the selected kind.
func (m *Model) Activate() tea.Cmd {
	return m.PlayKind(m.Selected())
}

// PlayKind selects k and returns the command asking the app to play it.
func (m *Model) PlayKind(k media.Kind) tea.Cmd {
	m.Select(k)
	rec, ok := m.records[k]
	if !ok || (rec.URI == "" && rec.FilePath == "") {
		key := media.Key{Hymn: m.ref, Kind: k}
		return func() tea.Msg { return ActionMsg(Missing{Key: key}) }
	}
	return func() tea.Msg { return ActionMsg(Play{Record: rec}) }
}

// Location returns what a row displays for a record: the local file when
// set, otherwise the URI.
func Location(rec media.Record) string {
	if rec.FilePath != "" {
		return rec.FilePath
	}
	return rec.URI
}

// View renders the panel with its border.
func (m *Model) View() string {
	w, h := m.Size()
	if w < 4 || h < 3 {
		return ""
	}
	inner := w - 2
	t := styles.T()

	lines := []string{
		t.S().Title.Render(render.TruncateEllipsis("媒体 · "+m.ref.String(), inner)),
		t.S().Subtle.Render(render.Separator(inner)),
	}
	for i, k := range media.Kinds {
		lines = append(lines, m.row(i, k, inner))
	}
	lines = append(lines, "", t.S().Subtle.Render(render.TruncateEllipsis("enter 播放  b/c/t 快捷", inner)))

	if len(lines) > h-2 {
		lines = lines[:h-2]
	}
	content := strings.Join(lines, "\n")
	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Height(h - 2).
		Render(content)
}

func (m *Model) row(i int, k media.Kind, width int) string {
	t := styles.T()
	label := render.Pad(k.Label(), labelWidth)

	rec, ok := m.records[k]
	var loc string
	style := t.S().Base
	if ok {
		loc = render.TruncateEllipsis(render.Sanitize(Location(rec)), max(width-labelWidth-2, 1))
	} else {
		loc = "未设置"
		style = t.S().Muted
	}

	marker := "  "
	if i == m.cursor {
		marker = "> "
	}
	line := render.Pad(marker+label+loc, width)
	if i == m.cursor {
		return t.S().Cursor.Render(line)
	}
	return style.Render(line)
}
