package cache

import (
	"path/filepath"
	"testing"

	"yomistat/internal/stats"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBookRoundTrip(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "cache.db"))

	if got, err := store.LoadBook("missing"); err != nil || got != nil {
		t.Fatalf("expected nil, nil for missing record, got %+v, %v", got, err)
	}

	bs := stats.BookStats{
		Name: "v1", Title: "第一巻", Characters: 12345,
		UniqueKanji: 321, KanjiUsedOnce: 100,
		HasWords: true, Words: 4000, UniqueWords: 900, WordsUsedOnce: 300,
	}
	if err := store.SaveBook(bs); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.LoadBook("v1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || *got != bs {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// upsert replaces
	bs.Characters = 99
	if err := store.SaveBook(bs); err != nil {
		t.Fatalf("resave failed: %v", err)
	}
	got, _ = store.LoadBook("v1")
	if got.Characters != 99 {
		t.Fatalf("expected updated record, got %+v", got)
	}
}

func TestSeriesRoundTrip(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "cache.db"))

	ss := stats.SeriesStats{
		Name: "シリーズ", Characters: 222, UniqueKanji: 50,
		Books: []stats.BookStats{{Name: "v1"}, {Name: "v2"}},
	}
	if err := store.SaveSeries(ss); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.LoadSeries("シリーズ")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || len(got.Books) != 2 || got.Books[1].Name != "v2" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store := openStore(t, path)
	if err := store.SaveBook(stats.BookStats{Name: "v1", Characters: 7}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	store.Close()

	store = openStore(t, path)
	got, err := store.LoadBook("v1")
	if err != nil || got == nil || got.Characters != 7 {
		t.Fatalf("record lost across reopen: %+v, %v", got, err)
	}
}

func TestVersionMismatchWipes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store := openStore(t, path)
	if err := store.SaveBook(stats.BookStats{Name: "v1"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.db.Exec(`UPDATE meta SET value = 'stale' WHERE key = 'schema_version'`); err != nil {
		t.Fatalf("stamp stale version: %v", err)
	}
	store.Close()

	store = openStore(t, path)
	got, err := store.LoadBook("v1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Fatalf("stale cache should have been wiped, got %+v", got)
	}

	var version string
	if err := store.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if version != stats.SchemaVersion {
		t.Fatalf("expected restamped version %q, got %q", stats.SchemaVersion, version)
	}
}
