// Package freq tracks occurrence counts keyed by identity: one kanji
// character or one dictionary form per key. Indexes merge across scopes by
// being handed to every producer that should feed them.
package freq

import "unicode"

// Index maps a key to its occurrence count.
type Index map[string]int

func NewIndex() Index {
	return make(Index)
}

func (x Index) Increment(key string) {
	x[key]++
}

// Size is the number of distinct keys.
func (x Index) Size() int {
	return len(x)
}

// UsedOnce is the number of keys seen exactly one time.
func (x Index) UsedOnce() int {
	n := 0
	for _, count := range x {
		if count == 1 {
			n++
		}
	}
	return n
}

var unifiedIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // extension B
		{Lo: 0x2A700, Hi: 0x2EBEF, Stride: 1}, // extensions C-F
		{Lo: 0x30000, Hi: 0x3134F, Stride: 1}, // extension G
	},
}

// IsKanji reports whether r is a CJK unified ideograph. Radicals and
// compatibility ideographs do not qualify.
func IsKanji(r rune) bool {
	return unicode.Is(unifiedIdeographs, r)
}

// CollectKanji feeds every kanji occurrence in text into the given indexes.
// A nil index is skipped, so callers pass the series-scope index only when
// one is in play.
func CollectKanji(text string, indexes ...Index) {
	for _, r := range text {
		if !IsKanji(r) {
			continue
		}
		key := string(r)
		for _, x := range indexes {
			if x != nil {
				x.Increment(key)
			}
		}
	}
}
