package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/hymnchtv/internal/db"
)

// NavigationState is the last page the user was looking at.
type NavigationState struct {
	Hymnal   string // hymnal short code, see hymnal.ParseType
	Index    int    // 0-based page index within the hymnal
	ViewMode string // "lyrics" or "score"
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT hymnal, page_index, view_mode
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var viewMode sql.NullString

	err := row.Scan(&state.Hymnal, &state.Index, &viewMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.ViewMode = dbutil.NullStringValue(viewMode)
	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, hymnal, page_index, view_mode)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hymnal = excluded.hymnal,
			page_index = excluded.page_index,
			view_mode = excluded.view_mode
	`, state.Hymnal, state.Index, state.ViewMode)

	return err
}
