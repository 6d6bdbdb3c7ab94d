package charcount

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseDocument parses one spine document and returns its body element.
// Lenient HTML parsing is tried first; when that produces an empty body the
// same bytes are re-parsed as generic XML. A document with no usable body
// after both attempts is unrecoverable.
func ParseDocument(data []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err == nil {
		if body := FindElement(doc, "body"); body != nil && body.FirstChild != nil {
			return body, nil
		}
	}

	doc, xmlErr := parseXML(bytes.NewReader(data))
	if xmlErr == nil {
		if body := FindElement(doc, "body"); body != nil && body.FirstChild != nil {
			return body, nil
		}
	}
	return nil, fmt.Errorf("unable to find valid body content")
}

// ParseXMLDocument parses bytes as generic XML into an html.Node tree. It
// backs the fallback reparse used for spine documents and navigation
// documents the HTML parser cannot make sense of.
func ParseXMLDocument(data []byte) (*html.Node, error) {
	return parseXML(bytes.NewReader(data))
}

// FindElement returns the first element named tag in document order.
func FindElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// parseXML builds an html.Node tree out of an XML token stream so that the
// same counting walk works on documents the HTML parser gave up on.
func parseXML(r io.Reader) (*html.Node, error) {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.AutoClose = xml.HTMLAutoClose
	d.Entity = xml.HTMLEntity

	root := &html.Node{Type: html.DocumentNode}
	current := root
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &html.Node{
				Type: html.ElementNode,
				Data: strings.ToLower(t.Name.Local),
			}
			for _, a := range t.Attr {
				node.Attr = append(node.Attr, html.Attribute{
					Key: strings.ToLower(a.Name.Local),
					Val: a.Value,
				})
			}
			current.AppendChild(node)
			current = node
		case xml.EndElement:
			if current.Parent != nil {
				current = current.Parent
			}
		case xml.CharData:
			current.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
		}
	}
	return root, nil
}
