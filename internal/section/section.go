// Package section derives a book's ordered narrative sections from its
// spine and table of contents.
package section

// RefPrefix marks sections this package synthesized; references are built
// from it plus the spine item's manifest id.
const RefPrefix = "yomi-"

// Section is one weighted slice of the book's linear reading order. A
// section without a Label continues the chapter named by ParentChapter.
type Section struct {
	Reference        string
	Label            string
	CharactersWeight int
	StartCharacter   int
	Characters       int
	ParentChapter    string
	Text             string
}

// Chapter reports whether the section opens a chapter rather than
// continuing one.
func (s Section) Chapter() bool {
	return s.ParentChapter == ""
}

// TocEntry is one outline entry from the navigation document or NCX.
type TocEntry struct {
	Reference string
	Label     string
	Weight    int
}

// Result carries the built sections plus the whole-book totals the
// statistics stage needs.
type Result struct {
	Sections   []Section
	Characters int
	// Text is every spine item's extracted text, including items that fell
	// outside any chapter, joined in reading order.
	Text string
}
