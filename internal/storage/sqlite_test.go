package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := s.SaveScore(gameID, sc); err != nil {
			t.Fatalf("SaveScore(%s, %d) failed: %v", gameID, sc, err)
		}
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "mrpig", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("mrpig")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() = %d after reopen, want 12", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)
	save(t, store, "breaker", 100, 50, 200, 75, 150)
	save(t, store, "mrpig", 500)

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"limit 3", 3, []int{200, 150, 100}},
		{"limit larger than rows", 10, []int{200, 150, 100, 75, 50}},
		{"zero limit means default", 0, []int{200, 150, 100, 75, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("breaker", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, w := range tt.want {
				if scores[i].Score != w || scores[i].GameID != "breaker" {
					t.Errorf("scores[%d] = %s/%d, want breaker/%d", i, scores[i].GameID, scores[i].Score, w)
				}
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("marblemaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no rows = %d, want 0", high)
	}

	save(t, store, "marblemaze", 4, 9, 2)
	high, err = store.HighScore("marblemaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("HighScore() = %d, want 9", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	save(t, store, "geometryfighter", 10, 20)
	save(t, store, "breaker", 30)

	if err := store.ClearScores("geometryfighter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	gf, _ := store.AllScores("geometryfighter")
	if len(gf) != 0 {
		t.Errorf("geometryfighter has %d scores after clear, want 0", len(gf))
	}
	br, _ := store.AllScores("breaker")
	if len(br) != 1 {
		t.Errorf("breaker has %d scores, clear must not touch other games", len(br))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GameStats("mrpig")
	if err != nil {
		t.Fatalf("GameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "mrpig", 2, 4, 6)
	stats, err := store.GameStats("mrpig")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 6 || stats.TotalScore != 12 {
		t.Errorf("stats = %+v, want 3 games, high 6, total 12", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %.2f, want 4", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTemp(t)
	save(t, store, "breaker", 3)
	save(t, store, "mrpig", 1, 5)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() has %d games, want 2", len(all))
	}
	if all["mrpig"].GamesCount != 2 || all["mrpig"].HighScore != 5 {
		t.Errorf("mrpig stats = %+v", all["mrpig"])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
