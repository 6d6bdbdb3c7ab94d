package analyze

import "testing"

func TestDetectNone(t *testing.T) {
	a, err := Detect("none")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if a != nil {
		t.Fatalf("expected no analyzer, got %s", a.Name())
	}
}

func TestDetectUnknownMode(t *testing.T) {
	if _, err := Detect("mecab"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestKagomeTokenize(t *testing.T) {
	if testing.Short() {
		t.Skip("embedded dictionary init is slow")
	}
	a, err := Detect("kagome")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	tokens, err := a.Tokenize("猫が走る")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	for _, tok := range tokens {
		if tok.Invalid {
			t.Fatalf("unexpected invalid token %+v", tok)
		}
		if tok.Dictionary == "" {
			t.Fatalf("dictionary form must fall back to surface: %+v", tok)
		}
	}
}
