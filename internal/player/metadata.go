package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the file being played.
type TrackInfo struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     int
	Track    int
	Duration time.Duration
}

// Label is the text shown in the player bar.
func (t *TrackInfo) Label() string {
	if t == nil {
		return ""
	}
	if t.Artist != "" {
		return t.Artist + " - " + t.Title
	}
	return t.Title
}

// ReadTrackInfo reads the embedded tags of path. Files without a title tag
// use the file name without extension.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = baseName(path)
	}
	track, _ := m.Track()

	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
		Year:   m.Year(),
		Track:  track,
	}, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
