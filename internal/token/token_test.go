package token

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	got := ParseLine("食べ\t動詞,自立,*,*\t食べ\t食べる\tタベ\t食べ")
	if got.Invalid {
		t.Fatal("expected valid token")
	}
	if got.Surface != "食べ" || got.POS != Verb || got.Sub1 != SubIndependant {
		t.Fatalf("unexpected token %+v", got)
	}
	if got.Dictionary != "食べる" || got.Reading != "タベ" {
		t.Fatalf("unexpected dictionary/reading %q/%q", got.Dictionary, got.Reading)
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"食べ",
		"食べ\t動詞,自立\tx\t食べる\tタベ\t食べ", // short tag path
		"a\tb\tc",
	} {
		if got := ParseLine(line); !got.Invalid {
			t.Fatalf("expected invalid token for %q, got %+v", line, got)
		}
	}
}

func TestParseLines(t *testing.T) {
	input := strings.Join([]string{
		"猫\t名詞,一般,*,*\t猫\t猫\tネコ\t猫",
		"EOS",
		"",
		"broken line",
		"が\t助詞,格助詞,一般,*\tが\tが\tガ\tが",
		"EOS",
	}, "\n")
	tokens, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Surface != "猫" || tokens[1].Surface != "が" {
		t.Fatalf("unexpected tokens %v", surfaces(tokens))
	}
	if tokens[1].Sub1 != SubCaseMarkingParticle {
		t.Fatalf("expected case-marking particle, got %v", tokens[1].Sub1)
	}
}

func TestParsePOS(t *testing.T) {
	cases := map[string]PartOfSpeech{
		"名詞":   Noun,
		"動詞":   Verb,
		"助動詞":  Auxiliary,
		"接頭詞":  Prefix,
		"接頭辞":  Prefix,
		"名":    Name,
		"なんらか": Unknown,
	}
	for tag, want := range cases {
		if got := ParsePOS(tag); got != want {
			t.Fatalf("ParsePOS(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestParseSubTag(t *testing.T) {
	if got := ParseSubTag("名"); got != SubName {
		t.Fatalf("expected SubName, got %v", got)
	}
	if got := ParseSubTag("*"); got != SubNone {
		t.Fatalf("expected SubNone for placeholder, got %v", got)
	}
	if got := ParseSubTag("非自立可能"); got != SubPossibleDependant {
		t.Fatalf("expected SubPossibleDependant, got %v", got)
	}
}

func TestToFullWidthDigits(t *testing.T) {
	if got := ToFullWidthDigits("12人と3匹"); got != "１２人と３匹" {
		t.Fatalf("got %q", got)
	}
	if got := ToFullWidthDigits("一"); got != "一" {
		t.Fatalf("non-digit text should pass through, got %q", got)
	}
}
