package token

import (
	"bufio"
	"io"
	"strings"
)

// Token is one morpheme from the analyzer's output. Surface and POS are
// rewritten in place while the consolidation cascade merges neighbours.
type Token struct {
	Surface    string
	POS        PartOfSpeech
	Sub1       SubTag
	Sub2       SubTag
	Sub3       SubTag
	Dictionary string
	Reading    string
	Invalid    bool
}

// New builds a token from an analyzer tag path. tags holds the comma-split
// part-of-speech path; only the first four segments are significant.
func New(surface string, tags []string, dictionary, reading string) *Token {
	t := &Token{
		Surface:    surface,
		Dictionary: dictionary,
		Reading:    reading,
	}
	if len(tags) < 4 {
		t.Invalid = true
		return t
	}
	t.POS = ParsePOS(tags[0])
	t.Sub1 = ParseSubTag(tags[1])
	t.Sub2 = ParseSubTag(tags[2])
	t.Sub3 = ParseSubTag(tags[3])
	return t
}

// HasSub reports whether any of the token's three sub-tags equals sub.
func (t *Token) HasSub(sub SubTag) bool {
	return t.Sub1 == sub || t.Sub2 == sub || t.Sub3 == sub
}

// ParseLine decodes one tab-separated analyzer record: surface, tag path,
// normalized form (unused), dictionary form, reading. Records with fewer
// than six fields or fewer than four tag segments come back Invalid.
func ParseLine(line string) *Token {
	parts := strings.Split(line, "\t")
	if len(parts) < 6 {
		return &Token{Invalid: true}
	}
	return New(parts[0], strings.Split(parts[1], ","), parts[3], parts[4])
}

// ParseLines reads newline-delimited analyzer output. "EOS" sentence markers
// and invalid records are dropped, never fatal.
func ParseLines(r io.Reader) ([]*Token, error) {
	var tokens []*Token
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line == "EOS" {
			continue
		}
		if t := ParseLine(line); !t.Invalid {
			tokens = append(tokens, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

var halfToFullDigit = map[rune]rune{
	'0': '０', '1': '１', '2': '２', '3': '３', '4': '４',
	'5': '５', '6': '６', '7': '７', '8': '８', '9': '９',
}

// ToFullWidthDigits rewrites ASCII digits to their full-width forms, the
// shape the amount-combination table is keyed on.
func ToFullWidthDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if fw, ok := halfToFullDigit[r]; ok {
			b.WriteRune(fw)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
