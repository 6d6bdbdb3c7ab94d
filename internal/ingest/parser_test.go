package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "吾輩は猫である.txt")
	content := "  第一章  \n\n\n吾輩は猫である。\n  名前はまだ無い。  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Title != "吾輩は猫である" {
		t.Fatalf("unexpected title %q", parsed.Title)
	}
	want := "第一章\n吾輩は猫である。\n名前はまだ無い。"
	if parsed.Text != want {
		t.Fatalf("whitespace not normalized:\n%q\nwant:\n%q", parsed.Text, want)
	}
}

func TestParseFileUnsupported(t *testing.T) {
	if _, err := ParseFile("book.mobi"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.PDF") || !Supported("a.txt") {
		t.Fatal("pdf and txt must be supported")
	}
	if Supported("a.epub") {
		t.Fatal("epub is handled by its own package")
	}
}
