// Command yomistat derives reading-difficulty and vocabulary statistics
// from e-books: character counts, unique kanji, word counts and used-once
// counts, per book and per series directory.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"yomistat/internal/analyze"
	"yomistat/internal/cache"
	"yomistat/internal/scan"
	"yomistat/internal/stats"
)

func main() {
	csvOut := flag.Bool("csv", false, "emit CSV instead of an aligned table")
	outputText := flag.Bool("output-text", false, "write a plain-text reconstruction next to each epub")
	tokenizer := flag.String("tokenizer", "auto", "word analyzer: auto, sudachi, kagome or none")
	cachePath := flag.String("cache", "", "stats cache file (default <library>/yomistat-cache.db)")
	noCache := flag.Bool("no-cache", false, "recompute everything, ignoring the cache")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: yomistat [flags] <library-dir | book files...>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	analyzer, err := analyze.Detect(*tokenizer)
	if err != nil {
		log.Fatalf("tokenizer setup failed: %v", err)
	}
	if analyzer == nil && *tokenizer != "none" {
		log.Printf("no analyzer available, word statistics omitted")
	}

	lib, root, err := discover(flag.Args())
	if err != nil {
		log.Fatalf("%v", err)
	}

	var store stats.Store
	if !*noCache && root != "" {
		path := *cachePath
		if path == "" {
			path = root + string(os.PathSeparator) + "yomistat-cache.db"
		}
		s, err := cache.Open(path)
		if err != nil {
			log.Fatalf("cache unusable: %v", err)
		}
		defer s.Close()
		store = s
	}

	opt := stats.Options{Analyzer: analyzer, ExportText: *outputText}
	books, series, err := stats.Run(lib, opt, store)
	if err != nil {
		log.Fatalf("%v", err)
	}

	rows := buildRows(books, series)
	if *csvOut {
		if err := writeCSV(os.Stdout, rows, analyzer != nil); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		return
	}
	writeTable(os.Stdout, rows, analyzer != nil)
}

// discover treats a single directory argument as a library root and any
// other argument list as explicit book files.
func discover(args []string) (*scan.Library, string, error) {
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			lib, err := scan.Dir(args[0])
			return lib, args[0], err
		}
	}
	return scan.Files(args), "", nil
}

type row struct {
	title string
	book  stats.BookStats
}

func buildRows(books []stats.BookStats, series []stats.SeriesStats) []row {
	var rows []row
	for _, b := range books {
		rows = append(rows, row{title: b.Title, book: b})
	}
	for _, s := range series {
		for _, b := range s.Books {
			rows = append(rows, row{title: s.Name + "/" + b.Title, book: b})
		}
		rows = append(rows, row{title: s.Name, book: stats.BookStats{
			Characters:    s.Characters,
			UniqueKanji:   s.UniqueKanji,
			KanjiUsedOnce: s.KanjiUsedOnce,
			HasWords:      s.HasWords,
			Words:         s.Words,
			UniqueWords:   s.UniqueWords,
			WordsUsedOnce: s.WordsUsedOnce,
		}})
	}
	return rows
}

func headers(words bool) []string {
	h := []string{"title", "characters", "unique kanji", "kanji used once", "kanji used once (%)"}
	if words {
		h = append(h, "words", "unique words", "words used once")
	}
	return h
}

func cells(r row, words bool) []string {
	b := r.book
	out := []string{
		r.title,
		strconv.Itoa(b.Characters),
		strconv.Itoa(b.UniqueKanji),
		strconv.Itoa(b.KanjiUsedOnce),
		percent(b.KanjiUsedOnce, b.UniqueKanji),
	}
	if words {
		out = append(out,
			strconv.Itoa(b.Words),
			strconv.Itoa(b.UniqueWords),
			strconv.Itoa(b.WordsUsedOnce),
		)
	}
	return out
}

func percent(part, whole int) string {
	if whole == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(part)/float64(whole)*100)
}

func writeCSV(w io.Writer, rows []row, words bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(words)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(cells(r, words)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTable pads with display width, not byte length, so CJK titles line up.
func writeTable(w io.Writer, rows []row, words bool) {
	const spacing = 4
	head := headers(words)
	widths := make([]int, len(head))
	for i, h := range head {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, c := range cells(r, words) {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cols []string) {
		var b strings.Builder
		for i, c := range cols {
			b.WriteString(c)
			if i < len(cols)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(c)+spacing))
			}
		}
		fmt.Fprintln(w, b.String())
	}

	writeRow(head)
	total := 0
	for i, width := range widths {
		total += width
		if i < len(widths)-1 {
			total += spacing
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", total))
	for _, r := range rows {
		writeRow(cells(r, words))
	}
}
