package analyze

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"yomistat/internal/token"
)

// Kagome is the embedded fallback analyzer. Its ipa dictionary uses the same
// tag vocabulary the external analyzer emits, so the downstream consolidation
// rules apply unchanged.
type Kagome struct {
	t *tokenizer.Tokenizer
}

func newKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init embedded tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

func (k *Kagome) Name() string { return "kagome" }

func (k *Kagome) Tokenize(text string) ([]*token.Token, error) {
	raw := k.t.Tokenize(text)
	tokens := make([]*token.Token, 0, len(raw))
	for _, kt := range raw {
		tags := kt.POS()
		for len(tags) < 4 {
			tags = append(tags, "*")
		}
		dict, ok := kt.BaseForm()
		if !ok || dict == "" {
			dict = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		t := token.New(kt.Surface, tags, dict, reading)
		if !t.Invalid {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}
