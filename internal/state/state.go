// Package state owns the application's SQLite database: schema, saved
// navigation and viewer settings. Domain stores (media records, update
// downloads) share the same connection through DB().
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "hymnchtv"
	dbFileName   = "dbHymnApp.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens (and creates if needed) the database at path.
// ":memory:" gives a private in-memory database.
func OpenAt(path string) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer keeps ON CONFLICT REPLACE and in-memory databases consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveNavigation(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation stores the navigation state after a short debounce so
// rapid paging does not hit the disk on every key press.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveNavigation(m.db, *pending)
		}
	})
}
