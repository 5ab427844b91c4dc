package state

import (
	"database/sql"
	"errors"
)

// ViewerSettings holds the lyrics zoom per terminal shape and the audio volume.
type ViewerSettings struct {
	LyricsScaleNarrow float64
	LyricsScaleWide   float64
	Volume            float64
	Muted             bool
}

// DefaultViewerSettings is used until the user changes anything.
var DefaultViewerSettings = ViewerSettings{
	LyricsScaleNarrow: 1.0,
	LyricsScaleWide:   1.0,
	Volume:            1.0,
}

// GetViewerSettings returns the saved settings or the defaults.
func (m *Manager) GetViewerSettings() (ViewerSettings, error) {
	var s ViewerSettings
	row := m.db.QueryRow(`
		SELECT lyrics_scale_narrow, lyrics_scale_wide, volume, muted
		FROM viewer_settings WHERE id = 1
	`)
	err := row.Scan(&s.LyricsScaleNarrow, &s.LyricsScaleWide, &s.Volume, &s.Muted)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultViewerSettings, nil
	}
	if err != nil {
		return DefaultViewerSettings, err
	}
	return s, nil
}

// SaveViewerSettings persists the settings.
func (m *Manager) SaveViewerSettings(s ViewerSettings) error {
	_, err := m.db.Exec(`
		INSERT INTO viewer_settings (id, lyrics_scale_narrow, lyrics_scale_wide, volume, muted)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			lyrics_scale_narrow = excluded.lyrics_scale_narrow,
			lyrics_scale_wide = excluded.lyrics_scale_wide,
			volume = excluded.volume,
			muted = excluded.muted
	`, s.LyricsScaleNarrow, s.LyricsScaleWide, s.Volume, s.Muted)
	return err
}
