// Package content locates the lyric score images and lyric text files of a
// hymn inside the content directory.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// MaxPages is the most score pages a hymn can have: the main page plus
// the a, b, c and d continuation pages.
const MaxPages = 5

var pageSuffixes = []string{"", "a", "b", "c", "d"}

// Entry is one browsable page of a hymnal.
type Entry struct {
	Index int
	Ref   hymnal.Ref
	Pages int
}

// Library reads hymn assets from a filesystem rooted at the content directory.
type Library struct {
	fsys   fs.FS
	logger *zap.Logger
}

// New creates a Library over fsys. A nil logger disables logging.
func New(fsys fs.FS, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{fsys: fsys, logger: logger}
}

// ScorePrefix returns the score file path without page suffix and extension.
func ScorePrefix(ref hymnal.Ref) (string, error) {
	no := strconv.Itoa(ref.Absolute())
	switch ref.Type {
	case hymnal.ER:
		return "lyrics_er_score/" + no, nil
	case hymnal.XB:
		return "lyrics_xb_score/xb" + no, nil
	case hymnal.BB:
		return "lyrics_bb_score/bb" + no, nil
	case hymnal.DB:
		return "lyrics_db_score/db" + no, nil
	default:
		return "", fmt.Errorf("%w: %s", hymnal.ErrUnsupportedType, ref.Type)
	}
}

// TextPath returns the lyrics text file path of ref.
func TextPath(ref hymnal.Ref) (string, error) {
	no := strconv.Itoa(ref.Absolute())
	switch ref.Type {
	case hymnal.ER:
		return "lyrics_er_text/er" + no + ".txt", nil
	case hymnal.XB:
		return "lyrics_xb_text/xb" + no + ".txt", nil
	case hymnal.BB:
		return "lyrics_bbs_text/" + no + ".txt", nil
	case hymnal.DB:
		return "lyrics_dbs_text/" + no + ".txt", nil
	default:
		return "", fmt.Errorf("%w: %s", hymnal.ErrUnsupportedType, ref.Type)
	}
}

// Entry resolves a page index of hymnal t to its hymn and page count.
func (l *Library) Entry(t hymnal.Type, index int) (Entry, error) {
	ref, err := hymnal.NumberAt(t, index)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Index: index, Ref: ref, Pages: l.Pages(ref)}, nil
}

// ScorePages returns the paths of the existing score pages of ref in page order.
func (l *Library) ScorePages(ref hymnal.Ref) []string {
	prefix, err := ScorePrefix(ref)
	if err != nil {
		l.logger.Error("unsupported content type", zap.Stringer("hymnal", ref.Type))
		return nil
	}

	var pages []string
	for _, suffix := range pageSuffixes {
		name := prefix + suffix + ".png"
		if _, err := fs.Stat(l.fsys, name); err != nil {
			if suffix == "" {
				l.logger.Warn("score image missing", zap.String("file", name))
			}
			break
		}
		pages = append(pages, name)
	}
	return pages
}

// Pages returns the number of score pages of ref.
func (l *Library) Pages(ref hymnal.Ref) int {
	return len(l.ScorePages(ref))
}

// ReadScore returns the raw image data of a score page.
func (l *Library) ReadScore(name string) ([]byte, error) {
	return fs.ReadFile(l.fsys, name)
}

// Lyrics returns the lyrics text of ref with normalized line endings.
// A missing file yields ErrNotFound.
func (l *Library) Lyrics(ref hymnal.Ref) (string, error) {
	name, err := TextPath(ref)
	if err != nil {
		return "", err
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("lyrics text missing", zap.String("file", name))
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		b.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		l.logger.Warn("error reading lyrics", zap.String("file", name), zap.Error(err))
		return "", err
	}
	return b.String(), nil
}

// ErrNotFound is returned when an asset file does not exist.
var ErrNotFound = errors.New("content not found")
