package section

import (
	"bytes"
	"encoding/xml"
	"strings"

	"golang.org/x/net/html"

	"yomistat/internal/charcount"
	"yomistat/internal/epub"
)

type tocSource struct {
	kind string // "nav" or "ncx"
	data []byte
}

// findToc selects the table-of-contents source: the manifest item marked as
// the navigation document when present, otherwise any .ncx payload.
func findToc(book *epub.Book) (tocSource, bool) {
	for _, item := range book.Manifest {
		if !htmlType(item.MediaType) || !hasProperty(item.Properties, "nav") {
			continue
		}
		if data, ok := book.File(item.HREF); ok {
			return tocSource{kind: "nav", data: data}, true
		}
	}
	for name, data := range book.Files {
		if strings.HasSuffix(name, ".ncx") {
			return tocSource{kind: "ncx", data: data}, true
		}
	}
	return tocSource{}, false
}

func htmlType(mediaType string) bool {
	return mediaType == "application/xhtml+xml" || mediaType == "text/html"
}

func hasProperty(properties, want string) bool {
	for _, p := range strings.Fields(properties) {
		if p == want {
			return true
		}
	}
	return false
}

// parseToc turns the chosen source into the ordered outline. Every entry
// starts with weight 1.
func parseToc(src tocSource) []TocEntry {
	if src.kind == "ncx" {
		return parseNCX(src.data)
	}
	return parseNav(src.data)
}

// parseNav collects every anchor under the toc navigation element. If the
// lenient HTML parse exposes no such element the content is re-parsed as
// generic XML before giving up.
func parseNav(data []byte) []TocEntry {
	var entries []TocEntry
	doc, err := html.Parse(bytes.NewReader(data))
	nav := (*html.Node)(nil)
	if err == nil {
		nav = findTocNav(doc)
	}
	if nav == nil {
		if xdoc, xerr := charcount.ParseXMLDocument(data); xerr == nil {
			nav = findTocNav(xdoc)
		}
	}
	if nav == nil {
		return nil
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			entries = append(entries, TocEntry{
				Reference: attr(n, "href"),
				Label:     strings.TrimSpace(textContent(n)),
				Weight:    1,
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nav)
	return entries
}

func findTocNav(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "nav" {
		if attr(n, "epub:type") == "toc" || attr(n, "type") == "toc" || attr(n, "id") == "toc" {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTocNav(c); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

type ncx struct {
	NavMap struct {
		NavPoints []navPoint `xml:"navPoint"`
	} `xml:"navMap"`
}

type navPoint struct {
	Label struct {
		Text string `xml:"text"`
	} `xml:"navLabel"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Children []navPoint `xml:"navPoint"`
}

func parseNCX(data []byte) []TocEntry {
	var toc ncx
	if err := xml.Unmarshal(data, &toc); err != nil {
		return nil
	}
	var entries []TocEntry
	var flatten func(points []navPoint)
	flatten = func(points []navPoint) {
		for _, np := range points {
			entries = append(entries, TocEntry{
				Reference: np.Content.Src,
				Label:     strings.TrimSpace(np.Label.Text),
				Weight:    1,
			})
			flatten(np.Children)
		}
	}
	flatten(toc.NavMap.NavPoints)
	return entries
}
