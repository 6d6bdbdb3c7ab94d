package section

import (
	"fmt"
	"path"
	"strings"

	"yomistat/internal/charcount"
	"yomistat/internal/epub"
)

// cursor is the fold state threaded through the spine walk.
type cursor struct {
	chapterIndex int    // index into the sections slice
	chapterID    string // reference of the open chapter, "" before the first
	total        int    // running character total across all spine items
}

// Build walks the spine in reading order, cross-references each item against
// the table of contents and produces the weighted section list. A spine item
// whose document has no parseable body aborts the whole book.
func Build(book *epub.Book) (*Result, error) {
	idToHref := make(map[string]string)
	fallbacks := make(map[string]string)
	for _, item := range book.Manifest {
		if item.Fallback != "" {
			fallbacks[item.ID] = item.Fallback
		}
		if htmlType(item.MediaType) {
			idToHref[item.ID] = item.HREF
		}
	}

	var toc []TocEntry
	if src, ok := findToc(book); ok {
		toc = parseToc(src)
	}

	if len(toc) > 0 && len(book.Spine) > 0 {
		_, firstHref := resolve(book.Spine[0], idToHref, fallbacks)
		if !refMatches(toc[0].Reference, firstHref) {
			toc = append([]TocEntry{{
				Reference: firstHref,
				Label:     "Preface",
				Weight:    1,
			}}, toc...)
		}
	}

	result := &Result{}
	var texts []string
	cur := cursor{}
	var sections []Section

	for _, idref := range book.Spine {
		id, href := resolve(idref, idToHref, fallbacks)
		data, ok := book.File(href)
		if !ok {
			return nil, fmt.Errorf("spine item %s: payload %s missing", idref, href)
		}
		body, err := charcount.ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("spine item %s: %w", idref, err)
		}
		counted := charcount.Count(body)
		previous := cur.total
		cur.total += counted.Characters
		delta := cur.total - previous
		texts = append(texts, counted.Text)

		entry, matched := matchToc(toc, href)
		switch {
		case matched:
			start := 0
			if len(sections) > 0 && cur.chapterID != "" {
				old := sections[cur.chapterIndex]
				start = old.StartCharacter + old.Characters
			}
			cur.chapterIndex = len(sections)
			cur.chapterID = RefPrefix + id
			sections = append(sections, Section{
				Reference:        cur.chapterID,
				Label:            entry.Label,
				CharactersWeight: weight(delta),
				StartCharacter:   start,
				Characters:       delta,
				Text:             counted.Text,
			})
		case cur.chapterID != "":
			sections[cur.chapterIndex].Characters += delta
			sections = append(sections, Section{
				Reference:        RefPrefix + id,
				CharactersWeight: weight(delta),
				ParentChapter:    cur.chapterID,
				Text:             counted.Text,
			})
		}
	}

	result.Sections = sections
	result.Characters = cur.total
	result.Text = strings.Join(texts, "\n")
	return result, nil
}

// resolve turns a spine idref into its manifest id and href, following at
// most one fallback hop when the primary id has no HTML href. The hop count
// is capped so a malformed fallback chain cannot loop.
func resolve(idref string, idToHref, fallbacks map[string]string) (string, string) {
	if href, ok := idToHref[idref]; ok {
		return idref, href
	}
	if fb, ok := fallbacks[idref]; ok {
		if href, ok := idToHref[fb]; ok {
			return fb, href
		}
	}
	return idref, ""
}

// refMatches reports whether a toc reference points at href, compared by
// basename containment since toc hrefs often carry directories or fragments.
func refMatches(tocRef, href string) bool {
	if href == "" {
		return false
	}
	base := path.Base(href)
	return base != "" && strings.Contains(tocRef, base)
}

func matchToc(toc []TocEntry, href string) (TocEntry, bool) {
	for _, entry := range toc {
		if refMatches(entry.Reference, href) {
			return entry, true
		}
	}
	return TocEntry{}, false
}

// weight floors at 1 so an empty spine item never yields a degenerate
// zero-weight section.
func weight(delta int) int {
	if delta == 0 {
		return 1
	}
	return delta
}
