package state

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenAt(":memory:")
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	return m
}

func TestGetNavigation_Empty(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	nav, err := m.GetNavigation()
	if err != nil {
		t.Fatalf("GetNavigation failed: %v", err)
	}
	if nav != nil {
		t.Errorf("expected nil navigation on empty db, got %+v", nav)
	}
}

func TestSaveAndGetNavigation(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	want := NavigationState{Hymnal: "bb", Index: 42, ViewMode: "score"}
	if err := saveNavigation(m.db, want); err != nil {
		t.Fatalf("saveNavigation failed: %v", err)
	}

	got, err := m.GetNavigation()
	if err != nil {
		t.Fatalf("GetNavigation failed: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("GetNavigation = %+v, want %+v", got, want)
	}

	// Update overwrites the single row.
	want.Index = 7
	if err := saveNavigation(m.db, want); err != nil {
		t.Fatalf("saveNavigation failed: %v", err)
	}
	got, _ = m.GetNavigation()
	if got.Index != 7 {
		t.Errorf("Index = %d, want 7", got.Index)
	}
}

func TestSaveNavigation_DebouncedAndFlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	m, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}

	m.SaveNavigation(NavigationState{Hymnal: "db", Index: 1})
	m.SaveNavigation(NavigationState{Hymnal: "db", Index: 2})

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = OpenAt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	nav, err := m.GetNavigation()
	if err != nil {
		t.Fatalf("GetNavigation failed: %v", err)
	}
	if nav == nil || nav.Index != 2 {
		t.Errorf("GetNavigation = %+v, want index 2", nav)
	}
}

func TestSaveNavigation_AfterDebounce(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	m.SaveNavigation(NavigationState{Hymnal: "xb", Index: 3, ViewMode: "lyrics"})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if nav, _ := m.GetNavigation(); nav != nil {
			if nav.Index != 3 {
				t.Errorf("Index = %d, want 3", nav.Index)
			}
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("navigation state was never saved")
}

func TestViewerSettings(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	got, err := m.GetViewerSettings()
	if err != nil {
		t.Fatalf("GetViewerSettings failed: %v", err)
	}
	if got != DefaultViewerSettings {
		t.Errorf("defaults = %+v, want %+v", got, DefaultViewerSettings)
	}

	want := ViewerSettings{LyricsScaleNarrow: 1.5, LyricsScaleWide: 0.8, Volume: 0.5, Muted: true}
	if err := m.SaveViewerSettings(want); err != nil {
		t.Fatalf("SaveViewerSettings failed: %v", err)
	}
	got, err = m.GetViewerSettings()
	if err != nil {
		t.Fatalf("GetViewerSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSchema_MediaTablesExist(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	for _, table := range MediaTables {
		var name string
		err := m.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	if err := initSchema(m.db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SaveNavigation(NavigationState{Hymnal: "er", Index: 9})
	nav, _ := m.GetNavigation()
	if nav == nil || nav.Index != 9 {
		t.Errorf("mock navigation = %+v", nav)
	}
	if len(m.SavedNavigation()) != 1 {
		t.Errorf("saved = %d, want 1", len(m.SavedNavigation()))
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("mock should be closed")
	}
}
