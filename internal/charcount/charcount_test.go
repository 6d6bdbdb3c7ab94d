package charcount

import (
	"strings"
	"testing"
)

func TestRunesPolicy(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"こんにちは", 5},
		{"カタカナー", 5},
		{"漢字", 2},
		{"abc XYZ", 6}, // ASCII letters count, spaces do not
		{"１２３123", 6},  // digits in both widths
		{"。、！？「」", 0},  // punctuation is excluded
		{"々〆〇ゝゞ〻", 6}, // iteration marks and circles
		{"○◯", 2},
		{"⺀⽀", 2}, // radicals
	}
	for _, c := range cases {
		if got := Runes(c.in); got != c.want {
			t.Fatalf("Runes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func mustParse(t *testing.T, doc string) *Result {
	t.Helper()
	body, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	r := Count(body)
	return &r
}

func TestCountPrunesRuby(t *testing.T) {
	r := mustParse(t, `<html><body><p>「<ruby>漢字<rt>かんじ</rt></ruby>」</p></body></html>`)
	if r.Characters != 2 {
		t.Fatalf("expected 2 characters, got %d", r.Characters)
	}
	if strings.Contains(r.Text, "かんじ") {
		t.Fatalf("ruby reading leaked into text: %q", r.Text)
	}
}

func TestCountPrunesHidden(t *testing.T) {
	r := mustParse(t, `<html><body><p>本文</p><div aria-hidden="true">注記</div><span hidden>奥付</span></body></html>`)
	if r.Characters != 2 {
		t.Fatalf("expected 2 characters, got %d", r.Characters)
	}
	if strings.Contains(r.Text, "注記") || strings.Contains(r.Text, "奥付") {
		t.Fatalf("hidden text leaked: %q", r.Text)
	}
}

func TestCountGaiji(t *testing.T) {
	r := mustParse(t, `<html><body><p>魚<img class="gaiji-line" src="i.png"/>図</p><img src="cover.png"/></body></html>`)
	if r.Characters != 3 {
		t.Fatalf("expected glyph image to count as one character, got %d", r.Characters)
	}
}

func TestCountTextNewlines(t *testing.T) {
	r := mustParse(t, `<html><body><h1>序章</h1><p>一行目</p><p>二行目</p></body></html>`)
	lines := strings.Split(r.Text, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected block elements to break lines, got %q", r.Text)
	}
	if lines[0] != "序章" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestParseDocumentXHTML(t *testing.T) {
	doc := `<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"><body><p>縦書き&nbsp;本文</p></body></html>`
	body, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	r := Count(body)
	if r.Characters != 5 {
		t.Fatalf("expected 5 characters, got %d", r.Characters)
	}
}

func TestParseDocumentNoBody(t *testing.T) {
	if _, err := ParseDocument([]byte(`<html><body></body></html>`)); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestParseXMLDocument(t *testing.T) {
	doc, err := ParseXMLDocument([]byte(`<NAV id="TOC"><A href="c1.xhtml">第一章</A></NAV>`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	nav := FindElement(doc, "nav")
	if nav == nil {
		t.Fatal("element names should be lower-cased")
	}
	if a := FindElement(nav, "a"); a == nil || a.Attr[0].Key != "href" {
		t.Fatal("attribute keys should be lower-cased")
	}
}
