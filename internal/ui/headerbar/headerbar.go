// Package headerbar renders the hymnal tabs and the current hymn title.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

// Height is the fixed height of the header (tabs + title line).
const Height = 2

// tabKeys pairs each hymnal with its function key, in tab order.
var tabKeys = []struct {
	key  string
	kind hymnal.Type
}{
	{"F1", hymnal.DB},
	{"F2", hymnal.BB},
	{"F3", hymnal.XB},
	{"F4", hymnal.ER},
}

func keyStyle(active bool) lipgloss.Style {
	if active {
		return styles.T().S().Active
	}
	return styles.T().S().Subtle
}

func nameStyle(active bool) lipgloss.Style {
	if active {
		return styles.T().S().Active
	}
	return styles.T().S().Muted
}

// Tabs renders the hymnal tab row centered in width.
func Tabs(current hymnal.Type, width int) string {
	parts := make([]string, 0, len(tabKeys))
	for _, t := range tabKeys {
		active := t.kind == current
		parts = append(parts, keyStyle(active).Render(t.key)+" "+nameStyle(active).Render(t.kind.Title()))
	}
	sep := styles.T().S().Subtle.Render(" │ ")
	return render.Center(strings.Join(parts, sep), width)
}

// Title renders the hymn heading, e.g. "大本诗歌 第 12 首" or "大本诗歌 补 3".
func Title(ref hymnal.Ref, page, pages, width int) string {
	heading := ref.Type.Title() + " " + Label(ref)
	title := styles.HymnalTitle(ref.Type, heading)
	if pages > 1 {
		title += styles.T().S().Subtle.Render("  (" + strconv.Itoa(page+1) + "/" + strconv.Itoa(pages) + ")")
	}
	return render.Center(title, width)
}

// Label names a hymn number in the hymnal's own numbering.
func Label(ref hymnal.Ref) string {
	if ref.Fu {
		return "补 " + strconv.Itoa(ref.No)
	}
	return "第 " + strconv.Itoa(ref.No) + " 首"
}

// Render returns both header lines.
func Render(ref hymnal.Ref, page, pages, width int) string {
	if width < 20 {
		return Title(ref, page, pages, width)
	}
	return Tabs(ref.Type, width) + "\n" + Title(ref, page, pages, width)
}
