package state

import "database/sql"

// Mock is a test double for Manager.
type Mock struct {
	navState *NavigationState
	settings ViewerSettings
	saved    []NavigationState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{settings: DefaultViewerSettings}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.saved = append(m.saved, state)
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) GetViewerSettings() (ViewerSettings, error) {
	return m.settings, nil
}

func (m *Mock) SaveViewerSettings(s ViewerSettings) error {
	m.settings = s
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) SavedNavigation() []NavigationState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
