package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{GameID: "termtris", Seed: 1, Pieces: 3}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions("termtris", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", len(sessions))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Session{
		GameID:   "termtris",
		Seed:     -42,
		Pieces:   17,
		Ticks:    3600,
		Duration: 61500 * time.Millisecond,
	}
	id, err := store.SaveSession(want)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions("termtris", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.ID != id {
		t.Errorf("ID = %d, expected %d", got.ID, id)
	}
	if got.Seed != want.Seed || got.Pieces != want.Pieces || got.Ticks != want.Ticks {
		t.Errorf("Session = %+v, expected %+v", got, want)
	}
	if got.Duration != 61*time.Second {
		t.Errorf("Duration = %v, expected whole seconds 1m1s", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveSession(Session{GameID: "termtris", Pieces: i})
	}
	store.SaveSession(Session{GameID: "termtris_debug", Pieces: 99})

	sessions, err := store.RecentSessions("termtris", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	// Newest first: 5, 4, 3
	for i, want := range []int{5, 4, 3} {
		if sessions[i].Pieces != want {
			t.Errorf("sessions[%d].Pieces = %d, expected %d", i, sessions[i].Pieces, want)
		}
	}

	all, _ := store.RecentSessions("termtris", 0)
	if len(all) != 5 {
		t.Errorf("Default limit should return all 5 sessions, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("termtris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSession(Session{GameID: "termtris", Pieces: 10, Duration: 30 * time.Second})
	store.SaveSession(Session{GameID: "termtris", Pieces: 25, Duration: 90 * time.Second})
	store.SaveSession(Session{GameID: "termtris_debug", Pieces: 100})

	stats, err = store.Stats("termtris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.TotalPieces != 35 {
		t.Errorf("TotalPieces = %d, expected 35", stats.TotalPieces)
	}
	if stats.MostPieces != 25 {
		t.Errorf("MostPieces = %d, expected 25", stats.MostPieces)
	}
	if stats.TotalTime != 2*time.Minute {
		t.Errorf("TotalTime = %v, expected 2m0s", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "termtris", Pieces: 1})
	store.SaveSession(Session{GameID: "termtris", Pieces: 2})
	store.SaveSession(Session{GameID: "termtris_debug", Pieces: 3})

	if err := store.ClearSessions("termtris"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	cleared, _ := store.RecentSessions("termtris", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(cleared))
	}

	other, _ := store.RecentSessions("termtris_debug", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite string", "2024-03-01 12:30:00", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
