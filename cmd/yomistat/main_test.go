package main

import (
	"strings"
	"testing"

	"yomistat/internal/stats"
)

func sampleRows() []row {
	books := []stats.BookStats{
		{Name: "solo", Title: "独立本", Characters: 1000, UniqueKanji: 200, KanjiUsedOnce: 50},
	}
	series := []stats.SeriesStats{{
		Name: "連作", Characters: 3000, UniqueKanji: 400, KanjiUsedOnce: 80,
		Books: []stats.BookStats{
			{Name: "v1", Title: "一巻", Characters: 1500},
			{Name: "v2", Title: "二巻", Characters: 1500},
		},
	}}
	return buildRows(books, series)
}

func TestBuildRows(t *testing.T) {
	rows := sampleRows()
	if len(rows) != 4 {
		t.Fatalf("expected standalone + members + summary, got %d rows", len(rows))
	}
	if rows[0].title != "独立本" {
		t.Fatalf("unexpected first row %q", rows[0].title)
	}
	if rows[1].title != "連作/一巻" || rows[2].title != "連作/二巻" {
		t.Fatalf("members must be prefixed with the series name, got %q, %q", rows[1].title, rows[2].title)
	}
	if rows[3].title != "連作" || rows[3].book.Characters != 3000 {
		t.Fatalf("unexpected summary row %+v", rows[3])
	}
}

func TestPercent(t *testing.T) {
	if got := percent(50, 200); got != "25%" {
		t.Fatalf("got %q", got)
	}
	if got := percent(1, 0); got != "0%" {
		t.Fatalf("division by zero must degrade, got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := writeCSV(&b, sampleRows(), false); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "title,characters") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[0], "words") {
		t.Fatal("word columns must be absent without an analyzer")
	}
}

func TestWriteTableAlignment(t *testing.T) {
	var b strings.Builder
	writeTable(&b, sampleRows(), true)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header, rule and 4 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Fatalf("expected separator rule, got %q", lines[1])
	}
	if !strings.Contains(lines[0], "words used once") {
		t.Fatal("word columns must be present with an analyzer")
	}
}
