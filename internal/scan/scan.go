// Package scan discovers books in a library directory. Top-level files are
// standalone books; each sub-directory is a series whose members' uniqueness
// statistics are computed jointly.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"yomistat/internal/ingest"
)

// Book is one discovered source file.
type Book struct {
	Name string
	Path string
}

// Series is one sub-directory of books, members name-sorted.
type Series struct {
	Name  string
	Books []Book
}

// Library holds everything discovered under a root. Books come before
// Series so progress reporting stays deterministic.
type Library struct {
	Books  []Book
	Series []Series
}

// BookNames returns the member names, for cache-validity comparison.
func (s Series) BookNames() []string {
	names := make([]string, 0, len(s.Books))
	for _, b := range s.Books {
		names = append(names, b.Name)
	}
	return names
}

func supported(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".epub") || ingest.Supported(path)
}

// Dir scans root one level deep.
func Dir(root string) (*Library, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}

	lib := &Library{}
	for _, e := range entries {
		full := filepath.Join(root, e.Name())
		if e.IsDir() {
			members, err := seriesBooks(full)
			if err != nil {
				return nil, err
			}
			if len(members) > 0 {
				lib.Series = append(lib.Series, Series{Name: e.Name(), Books: members})
			}
			continue
		}
		if supported(full) {
			lib.Books = append(lib.Books, newBook(full))
		}
	}
	sort.Slice(lib.Books, func(i, j int) bool { return lib.Books[i].Name < lib.Books[j].Name })
	sort.Slice(lib.Series, func(i, j int) bool { return lib.Series[i].Name < lib.Series[j].Name })
	return lib, nil
}

// Files builds a library from explicit paths, preserving argument order.
func Files(paths []string) *Library {
	lib := &Library{}
	for _, p := range paths {
		lib.Books = append(lib.Books, newBook(p))
	}
	return lib
}

func seriesBooks(dir string) ([]Book, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan series %s: %w", dir, err)
	}
	var books []Book
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if supported(full) {
			books = append(books, newBook(full))
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Name < books[j].Name })
	return books, nil
}

func newBook(path string) Book {
	base := filepath.Base(path)
	return Book{Name: strings.TrimSuffix(base, filepath.Ext(base)), Path: path}
}
