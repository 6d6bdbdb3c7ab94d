package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"yomistat/internal/analyze"
	"yomistat/internal/charcount"
	"yomistat/internal/epub"
	"yomistat/internal/freq"
	"yomistat/internal/ingest"
	"yomistat/internal/section"
	"yomistat/internal/token"
)

// Options configures a run. The analyzer is decided once up front; nil means
// word statistics are omitted everywhere.
type Options struct {
	Analyzer   analyze.Analyzer
	ExportText bool
}

// ComputeBook derives one book's statistics. When acc is non-nil the book's
// kanji and word events also feed the series-scope indexes.
func ComputeBook(path string, opt Options, acc *Accumulator) (BookStats, error) {
	name := bookName(path)
	bs := BookStats{Name: name, Title: name}

	var text string
	switch {
	case strings.EqualFold(filepath.Ext(path), ".epub"):
		book, err := epub.Open(path)
		if err != nil {
			return bs, fmt.Errorf("%s: %w", name, err)
		}
		if book.Title != "" {
			bs.Title = book.Title
		}
		result, err := section.Build(book)
		if err != nil {
			return bs, fmt.Errorf("%s: %w", name, err)
		}
		bs.Characters = result.Characters
		text = result.Text
		if opt.ExportText {
			if err := exportText(path, result); err != nil {
				return bs, fmt.Errorf("%s: %w", name, err)
			}
		}
	default:
		parsed, err := ingest.ParseFile(path)
		if err != nil {
			return bs, fmt.Errorf("%s: %w", name, err)
		}
		bs.Title = parsed.Title
		text = parsed.Text
		bs.Characters = charcount.Runes(text)
	}

	kanji := freq.NewIndex()
	var seriesKanji freq.Index
	if acc != nil {
		seriesKanji = acc.Kanji
	}
	freq.CollectKanji(text, kanji, seriesKanji)
	bs.UniqueKanji = kanji.Size()
	bs.KanjiUsedOnce = kanji.UsedOnce()

	if opt.Analyzer != nil {
		raw, err := opt.Analyzer.Tokenize(text)
		if err != nil {
			return bs, fmt.Errorf("%s: analyze: %w", name, err)
		}
		consolidated := token.Consolidate(raw)
		words := freq.NewIndex()
		var seriesWords freq.Index
		if acc != nil {
			seriesWords = acc.Words
		}
		bs.Words = countWords(consolidated, words, seriesWords)
		bs.UniqueWords = words.Size()
		bs.WordsUsedOnce = words.UsedOnce()
		bs.HasWords = true
	}
	return bs, nil
}

func bookName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func exportText(path string, result *section.Result) error {
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create text export: %w", err)
	}
	defer f.Close()
	if len(result.Sections) == 0 {
		_, err := f.WriteString(result.Text)
		return err
	}
	return section.ExportText(f, result.Sections)
}
