package section

import (
	"fmt"
	"io"
)

// ExportText writes a plain-text reconstruction of the book: each chapter's
// label on its own line followed by its text, continuation sections appended
// without a leading label.
func ExportText(w io.Writer, sections []Section) error {
	for _, s := range sections {
		if s.Chapter() && s.Label != "" {
			if _, err := fmt.Fprintf(w, "%s\n\n", s.Label); err != nil {
				return err
			}
		}
		if s.Text == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", s.Text); err != nil {
			return err
		}
	}
	return nil
}
