package stats

import (
	"fmt"
	"sort"

	"yomistat/internal/scan"
)

// Store is the cache the runner consults before recomputing. A nil *Store
// value from a Load means "not cached".
type Store interface {
	LoadBook(name string) (*BookStats, error)
	SaveBook(bs BookStats) error
	LoadSeries(name string) (*SeriesStats, error)
	SaveSeries(ss SeriesStats) error
}

// Run processes every discovered book, standalone books first, then series
// in order, strictly sequentially. Any extraction failure aborts the whole
// batch: a malformed book is a data-integrity problem, not something to
// skip past.
func Run(lib *scan.Library, opt Options, store Store) ([]BookStats, []SeriesStats, error) {
	var books []BookStats
	for _, b := range lib.Books {
		bs, err := runBook(b, opt, store)
		if err != nil {
			return nil, nil, err
		}
		books = append(books, bs)
	}

	var series []SeriesStats
	for _, s := range lib.Series {
		ss, err := runSeries(s, opt, store)
		if err != nil {
			return nil, nil, err
		}
		series = append(series, ss)
	}
	return books, series, nil
}

func runBook(b scan.Book, opt Options, store Store) (BookStats, error) {
	if store != nil {
		cached, err := store.LoadBook(b.Name)
		if err != nil {
			return BookStats{}, fmt.Errorf("load cached stats for %s: %w", b.Name, err)
		}
		if reusableBook(cached, opt) {
			return *cached, nil
		}
	}
	bs, err := ComputeBook(b.Path, opt, nil)
	if err != nil {
		return BookStats{}, err
	}
	if store != nil {
		if err := store.SaveBook(bs); err != nil {
			return BookStats{}, fmt.Errorf("cache stats for %s: %w", b.Name, err)
		}
	}
	return bs, nil
}

// reusableBook: a persisted record is taken verbatim unless word statistics
// are required and the record predates them.
func reusableBook(cached *BookStats, opt Options) bool {
	if cached == nil {
		return false
	}
	return opt.Analyzer == nil || cached.HasWords
}

func runSeries(s scan.Series, opt Options, store Store) (SeriesStats, error) {
	if store != nil {
		cached, err := store.LoadSeries(s.Name)
		if err != nil {
			return SeriesStats{}, fmt.Errorf("load cached stats for series %s: %w", s.Name, err)
		}
		if reusableSeries(cached, s, opt) {
			return *cached, nil
		}
	}

	// Series members always recompute together: the series-scope indexes
	// must see every member's events, which a per-book cache hit would skip.
	acc := NewAccumulator()
	ss := SeriesStats{Name: s.Name, HasWords: opt.Analyzer != nil}
	for _, b := range s.Books {
		bs, err := ComputeBook(b.Path, opt, acc)
		if err != nil {
			return SeriesStats{}, err
		}
		ss.Books = append(ss.Books, bs)
		ss.Characters += bs.Characters
		ss.Words += bs.Words
	}
	ss.UniqueKanji = acc.Kanji.Size()
	ss.KanjiUsedOnce = acc.Kanji.UsedOnce()
	if ss.HasWords {
		ss.UniqueWords = acc.Words.Size()
		ss.WordsUsedOnce = acc.Words.UsedOnce()
	}

	if store != nil {
		if err := store.SaveSeries(ss); err != nil {
			return SeriesStats{}, fmt.Errorf("cache stats for series %s: %w", s.Name, err)
		}
	}
	return ss, nil
}

// reusableSeries: a persisted series is discarded wholesale when its
// recorded book set differs from the discovered one.
func reusableSeries(cached *SeriesStats, s scan.Series, opt Options) bool {
	if cached == nil {
		return false
	}
	if opt.Analyzer != nil && !cached.HasWords {
		return false
	}
	recorded := make([]string, 0, len(cached.Books))
	for _, b := range cached.Books {
		recorded = append(recorded, b.Name)
	}
	discovered := append([]string(nil), s.BookNames()...)
	sort.Strings(recorded)
	sort.Strings(discovered)
	if len(recorded) != len(discovered) {
		return false
	}
	for i := range recorded {
		if recorded[i] != discovered[i] {
			return false
		}
	}
	return true
}
