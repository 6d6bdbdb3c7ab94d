// Package charcount classifies and counts readable characters in a book's
// content tree. The count policy is Japanese-script specific and deliberately
// narrower than the text it returns: counting drops punctuation and symbols,
// while the extracted text keeps them for downstream tokenization.
package charcount

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"yomistat/internal/freq"
)

// Result is the outcome of counting one content tree.
type Result struct {
	Text       string
	Characters int
}

var policyRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x25CB, Hi: 0x25CB, Stride: 1}, // ○
		{Lo: 0x25EF, Hi: 0x25EF, Stride: 1}, // ◯
		{Lo: 0x2E80, Hi: 0x2EF3, Stride: 1}, // CJK radicals supplement
		{Lo: 0x2F00, Hi: 0x2FD5, Stride: 1}, // Kangxi radicals
		{Lo: 0x3005, Hi: 0x3007, Stride: 1}, // 々〆〇
		{Lo: 0x303B, Hi: 0x303B, Stride: 1}, // 〻
		{Lo: 0x3041, Hi: 0x3096, Stride: 1}, // Hiragana
		{Lo: 0x309D, Hi: 0x309E, Stride: 1}, // ゝゞ
		{Lo: 0x30A1, Hi: 0x30FA, Stride: 1}, // Katakana
		{Lo: 0x30FC, Hi: 0x30FC, Stride: 1}, // prolonged sound mark
		{Lo: 0xFF10, Hi: 0xFF19, Stride: 1}, // full-width digits
		{Lo: 0xFF21, Hi: 0xFF3A, Stride: 1}, // full-width Latin
		{Lo: 0xFF41, Hi: 0xFF5A, Stride: 1},
		{Lo: 0xFF66, Hi: 0xFF9D, Stride: 1}, // half-width katakana
	},
}

func isCounted(r rune) bool {
	return unicode.Is(policyRanges, r) || freq.IsKanji(r)
}

// Runes counts the codepoints of s that satisfy the character policy.
func Runes(s string) int {
	n := 0
	for _, r := range s {
		if isCounted(r) {
			n++
		}
	}
	return n
}

// Count prunes ruby annotations and hidden nodes out of the tree, then
// counts readable characters and collects the remaining text content.
// Pruning is destructive so removed nodes cannot resurface through an
// ancestor's aggregated text.
func Count(root *html.Node) Result {
	prune(root)

	var b strings.Builder
	count := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			if strings.TrimSpace(n.Data) != "" {
				count += Runes(n.Data)
			}
			return
		}
		if isGaiji(n) {
			// an embedded glyph image substitutes for exactly one character
			count++
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(root)

	return Result{Text: strings.TrimSpace(b.String()), Characters: count}
}

var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func prune(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && (c.Data == "rt" || isHidden(c)) {
			n.RemoveChild(c)
		} else {
			prune(c)
		}
		c = next
	}
}

func isHidden(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key == "hidden" || a.Key == "aria-hidden" {
			return true
		}
	}
	return false
}

func isGaiji(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "img" {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if strings.Contains(class, "gaiji") {
				return true
			}
		}
	}
	return false
}
