package state

import "database/sql"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	GetViewerSettings() (ViewerSettings, error)
	SaveViewerSettings(s ViewerSettings) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
