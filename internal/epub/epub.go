// Package epub unpacks an epub container into structured manifest, spine and
// metadata records plus a raw payload map. It reads the OPF with the xml
// decoder so namespace-prefixed (opf:) packages parse the same as plain ones.
package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// ManifestItem is one resource declaration from the OPF manifest.
type ManifestItem struct {
	ID         string `xml:"id,attr"`
	HREF       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Fallback   string `xml:"fallback,attr"`
	Properties string `xml:"properties,attr"`
}

// Book is the unpacked container: ordered spine idrefs, the manifest, the
// title and every payload keyed by its archive path.
type Book struct {
	Title    string
	Manifest []ManifestItem
	Spine    []string
	Files    map[string][]byte

	contentDir string
}

type container struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type opf struct {
	Title    string         `xml:"metadata>title"`
	Manifest []ManifestItem `xml:"manifest>item"`
	Spine    []struct {
		IDRef string `xml:"idref,attr"`
	} `xml:"spine>itemref"`
}

// Open reads the container at path. Any manifest or spine parse failure is
// fatal for the book.
func Open(name string) (*Book, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("open epub container: %w", err)
	}
	defer zr.Close()

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		files[f.Name] = data
	}

	rootPath, err := rootfilePath(files)
	if err != nil {
		return nil, err
	}
	opfData, ok := files[rootPath]
	if !ok {
		return nil, fmt.Errorf("rootfile %s missing from archive", rootPath)
	}

	var pkg opf
	if err := xml.Unmarshal(opfData, &pkg); err != nil {
		return nil, fmt.Errorf("parse package document: %w", err)
	}
	if len(pkg.Manifest) == 0 {
		return nil, fmt.Errorf("package document has no manifest items")
	}
	if len(pkg.Spine) == 0 {
		return nil, fmt.Errorf("package document has no spine")
	}

	book := &Book{
		Title:      strings.TrimSpace(pkg.Title),
		Manifest:   pkg.Manifest,
		Files:      files,
		contentDir: path.Dir(rootPath),
	}
	for _, ref := range pkg.Spine {
		book.Spine = append(book.Spine, ref.IDRef)
	}
	return book, nil
}

func rootfilePath(files map[string][]byte) (string, error) {
	data, ok := files["META-INF/container.xml"]
	if !ok {
		return "", fmt.Errorf("container.xml missing from archive")
	}
	var c container
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("parse container.xml: %w", err)
	}
	if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
		return "", fmt.Errorf("container.xml names no rootfile")
	}
	return c.Rootfiles[0].FullPath, nil
}

// File resolves a manifest href to its payload, trying the path relative to
// the package document first and falling back to suffix matching the way
// sloppy containers require.
func (b *Book) File(href string) ([]byte, bool) {
	href = strings.SplitN(href, "#", 2)[0]
	for _, candidate := range []string{path.Join(b.contentDir, href), href} {
		if data, ok := b.Files[candidate]; ok {
			return data, true
		}
	}
	for name, data := range b.Files {
		if strings.HasSuffix(name, "/"+href) {
			return data, true
		}
	}
	return nil, false
}
