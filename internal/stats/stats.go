// Package stats computes per-book reading statistics and rolls them into
// series totals. Series uniqueness is recomputed from series-scope frequency
// indexes fed by every member book, never by summing per-book uniques.
package stats

import (
	"regexp"
	"strings"

	"yomistat/internal/freq"
	"yomistat/internal/token"
)

// SchemaVersion keys the persisted cache shape. Any mismatch invalidates
// the whole cache.
const SchemaVersion = "3"

// BookStats is one book's persisted record. Word fields are meaningful only
// when HasWords is set; a run without an analyzer leaves them zero.
type BookStats struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Characters    int    `json:"characters"`
	UniqueKanji   int    `json:"unique_kanji"`
	KanjiUsedOnce int    `json:"kanji_used_once"`
	HasWords      bool   `json:"has_words"`
	Words         int    `json:"words,omitempty"`
	UniqueWords   int    `json:"unique_words,omitempty"`
	WordsUsedOnce int    `json:"words_used_once,omitempty"`
}

// SeriesStats nests the member books and carries series-scope uniqueness.
// Characters and Words are additive across members; the unique and
// used-once fields come from indexes every member fed.
type SeriesStats struct {
	Name          string      `json:"name"`
	Characters    int         `json:"characters"`
	UniqueKanji   int         `json:"unique_kanji"`
	KanjiUsedOnce int         `json:"kanji_used_once"`
	HasWords      bool        `json:"has_words"`
	Words         int         `json:"words,omitempty"`
	UniqueWords   int         `json:"unique_words,omitempty"`
	WordsUsedOnce int         `json:"words_used_once,omitempty"`
	Books         []BookStats `json:"books"`
}

// Accumulator is the series-scope state threaded explicitly through each
// member book's computation and read out once the series completes.
type Accumulator struct {
	Kanji freq.Index
	Words freq.Index
}

func NewAccumulator() *Accumulator {
	return &Accumulator{Kanji: freq.NewIndex(), Words: freq.NewIndex()}
}

// Word keys keep only kanji, kana, digits, latin and their full-width forms;
// anything else is script the word index should not see.
var unrelatedPattern = regexp.MustCompile(
	`[^a-zA-Z0-9\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}\x{FF21}-\x{FF3A}\x{FF41}-\x{FF5A}\x{FF10}-\x{FF19}\x{3005}．]`,
)

// countWords feeds consolidated tokens into the book index and, when given,
// the series index. It returns the number of retained words.
func countWords(tokens []*token.Token, book, series freq.Index) int {
	kept := 0
	for _, t := range tokens {
		surface := unrelatedPattern.ReplaceAllString(t.Surface, "")
		if surface == "" {
			continue
		}
		// analyzer artifact that breaks downstream lookups
		surface = strings.ReplaceAll(surface, "ッー", "")
		kept++

		key := t.Dictionary
		if key == "" {
			key = surface
		}
		book.Increment(key)
		if series != nil {
			series.Increment(key)
		}
	}
	return kept
}
