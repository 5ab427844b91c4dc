// Package scoreview shows the pages of a hymn's score. Pages are drawn
// with the Kitty graphics protocol when the terminal supports it, and as a
// labelled placeholder otherwise.
package scoreview

import (
	"fmt"
	"image"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/kittyimg"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

const maxCached = 16

// Source provides the score pages of a hymn.
type Source interface {
	ScorePages(ref hymnal.Ref) []string
	ReadScore(name string) ([]byte, error)
}

type cacheKey struct {
	name       string
	cols, rows int
}

// Model is the score page view.
type Model struct {
	ui.Base
	source   Source
	logger   *zap.Logger
	graphics bool

	ref   hymnal.Ref
	pages []string
	page  int

	images  map[string]image.Image
	encoded map[cacheKey]string
	order   []cacheKey
}

// New creates a score view. graphics selects Kitty output; pass
// kittyimg.Supported() in the app.
func New(source Source, graphics bool, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		source:   source,
		logger:   logger,
		graphics: graphics,
		images:   make(map[string]image.Image),
		encoded:  make(map[cacheKey]string),
	}
}

// SetHymn switches to ref and shows its first page.
func (m *Model) SetHymn(ref hymnal.Ref) {
	if ref == m.ref && m.pages != nil {
		return
	}
	m.ref = ref
	m.pages = m.source.ScorePages(ref)
	if m.pages == nil {
		m.pages = []string{}
	}
	m.page = 0
	if len(m.pages) == 0 {
		m.logger.Info("no score for hymn", zap.Stringer("hymn", ref))
	}
}

// Pages returns the number of pages of the current hymn.
func (m *Model) Pages() int { return len(m.pages) }

// Page returns the 0-based page being shown.
func (m *Model) Page() int { return m.page }

// NextPage moves forward one page. It reports whether the page changed.
func (m *Model) NextPage() bool {
	if m.page+1 >= len(m.pages) {
		return false
	}
	m.page++
	return true
}

// PrevPage moves back one page. It reports whether the page changed.
func (m *Model) PrevPage() bool {
	if m.page == 0 {
		return false
	}
	m.page--
	return true
}

// Graphics reports whether pages are drawn as images.
func (m *Model) Graphics() bool { return m.graphics }

// View renders the current page into the component's area.
func (m *Model) View() string {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return ""
	}
	if len(m.pages) == 0 {
		return m.placeholder("乐谱不存在")
	}

	name := m.pages[m.page]
	if !m.graphics {
		return m.placeholder(fmt.Sprintf("%s (%d/%d)", pageLabel(name), m.page+1, len(m.pages)))
	}

	seq, err := m.encode(name, w, h)
	if err != nil {
		m.logger.Warn("render score page", zap.String("page", name), zap.Error(err))
		return m.placeholder("乐谱无法显示")
	}

	// The escape sequence places the image at the cursor; the blank lines
	// reserve the area it covers.
	lines := make([]string, h)
	lines[0] = seq
	return strings.Join(lines, "\n")
}

func (m *Model) placeholder(text string) string {
	w, h := m.Size()
	box := kittyimg.Placeholder(text, w, h)
	return styles.T().S().Muted.Render(box)
}

func (m *Model) encode(name string, cols, rows int) (string, error) {
	key := cacheKey{name: name, cols: cols, rows: rows}
	if seq, ok := m.encoded[key]; ok {
		return seq, nil
	}

	img, err := m.image(name)
	if err != nil {
		return "", err
	}
	seq, err := kittyimg.Encode(img, cols, rows)
	if err != nil {
		return "", err
	}

	m.encoded[key] = seq
	m.order = append(m.order, key)
	if len(m.order) > maxCached {
		delete(m.encoded, m.order[0])
		m.order = m.order[1:]
	}
	return seq, nil
}

func (m *Model) image(name string) (image.Image, error) {
	if img, ok := m.images[name]; ok {
		return img, nil
	}
	data, err := m.source.ReadScore(name)
	if err != nil {
		return nil, err
	}
	img, err := kittyimg.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if len(m.images) >= maxCached {
		clear(m.images)
	}
	m.images[name] = img
	return img, nil
}

// Cached reports how many encoded pages are held.
func (m *Model) Cached() int { return len(m.encoded) }

// pageLabel turns "lyrics_db_score/db12a.png" into "db12a".
func pageLabel(name string) string {
	base := name[strings.LastIndex(name, "/")+1:]
	return render.Sanitize(strings.TrimSuffix(base, ".png"))
}
