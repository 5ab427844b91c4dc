package state

import (
	"database/sql"
	"strings"
)

const currentSchemaVersion = 1

// One media table per hymnal. A hymn has at most one record per media kind.
const hymnMediaTable = `
		CREATE TABLE IF NOT EXISTS %s (
			hymn_no INTEGER NOT NULL,
			hymn_fu BOOL NOT NULL DEFAULT 0,
			media_type TEXT NOT NULL,
			media_uri TEXT,
			media_file_path TEXT,
			UNIQUE(hymn_no, hymn_fu, media_type) ON CONFLICT REPLACE
		);
		CREATE INDEX IF NOT EXISTS idx_%s_no ON %s(hymn_no);
`

// MediaTables lists the per-hymnal media tables created by the schema.
var MediaTables = []string{"hymn_db", "hymn_bb", "hymn_xb", "hymn_er"}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			hymnal TEXT NOT NULL,
			page_index INTEGER NOT NULL DEFAULT 0,
			view_mode TEXT DEFAULT 'lyrics'
		);

		CREATE TABLE IF NOT EXISTS viewer_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			lyrics_scale_narrow REAL NOT NULL DEFAULT 1.0,
			lyrics_scale_wide REAL NOT NULL DEFAULT 1.0,
			volume REAL NOT NULL DEFAULT 1.0,
			muted INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS update_downloads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL,
			path TEXT NOT NULL,
			version_code INTEGER NOT NULL,
			status TEXT NOT NULL,
			bytes_total INTEGER NOT NULL DEFAULT 0,
			bytes_done INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	for _, table := range MediaTables {
		if _, err := db.Exec(strings.ReplaceAll(hymnMediaTable, "%s", table)); err != nil {
			return err
		}
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
