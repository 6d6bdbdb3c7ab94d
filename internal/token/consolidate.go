package token

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// The analyzer splits aggressively; these passes stitch its morphemes back
// into word units worth counting. Order matters: every pass assumes the
// granularity left behind by the ones before it, so running the cascade on
// already-consolidated tokens is not supported.

type special3 struct {
	a, b, c string
	pos     PartOfSpeech
}

type special2 struct {
	a, b string
	pos  PartOfSpeech
}

var specialCases3 = []special3{
	{"な", "の", "で", Expression},
	{"で", "は", "ない", Expression},
	{"それ", "で", "も", Conjunction},
	{"なく", "なっ", "た", Verb},
}

var specialCases2 = []special2{
	{"じゃ", "ない", Expression},
	{"に", "しろ", Expression},
	{"だ", "けど", Conjunction},
	{"だ", "が", Conjunction},
	{"で", "さえ", Expression},
	{"で", "すら", Expression},
	{"と", "いう", Expression},
	{"と", "か", Conjunction},
	{"だ", "から", Conjunction},
	{"これ", "まで", Expression},
	{"それ", "も", Conjunction},
	{"それ", "だけ", Noun},
	{"くせ", "に", Conjunction},
	{"の", "で", Particle},
	{"誰", "も", Expression},
	{"誰", "か", Expression},
	{"すぐ", "に", Adverb},
	{"なん", "か", Particle},
	{"だっ", "た", Expression},
	{"だっ", "たら", Conjunction},
	{"よう", "に", Expression},
	{"ん", "です", Expression},
	{"ん", "だ", Expression},
	{"です", "か", Expression},
}

// Auxiliaries that behave as independent verbs and must not be absorbed.
var independentAuxiliaries = map[string]struct{}{
	"ござる": {}, "かける": {}, "あげる": {}, "くれる": {}, "終わる": {},
	"欲しい": {}, "始める": {}, "下さる": {}, "貰う": {}, "貰える": {},
	"まくる": {}, "なる": {}, "行く": {}, "やる": {}, "いい": {},
	"もらえる": {}, "来る": {}, "出す": {},
}

var standaloneSuffixes = map[string]struct{}{
	"っぽい": {}, "にくい": {}, "事": {}, "っぷり": {}, "ごと": {},
}

var honorifics = []string{"さん", "ちゃん", "くん"}

//go:embed amounts.json
var amountsJSON []byte

var amountCombinations = loadAmountCombinations()

func loadAmountCombinations() map[string]struct{} {
	var raw []string
	_ = json.Unmarshal(amountsJSON, &raw)
	set := make(map[string]struct{}, len(raw))
	for _, c := range raw {
		set[c] = struct{}{}
	}
	return set
}

var passes = []func([]*Token) []*Token{
	combineSpecialCases,
	fixMisclassified,
	combinePrefixes,
	combineAmounts,
	combineSmallTsuTe,
	combineDependants,
	combinePotentialSuru,
	combineProgressive,
	combineAdverbialParticles,
	combineConjunctiveParticles,
	combineAuxiliaryVerbStems,
	combineAuxiliaries,
	combineSuffixes,
	combineParticlePairs,
	combineTrailingBa,
	separateHonorifics,
}

// Consolidate runs the full rewrite cascade over a raw token sequence and
// returns the same slice storage reduced to word units. Deterministic:
// identical input always yields identical output.
func Consolidate(tokens []*Token) []*Token {
	for _, pass := range passes {
		tokens = pass(tokens)
	}
	return tokens
}

func cut(tokens []*Token, i, n int) []*Token {
	return append(tokens[:i], tokens[i+n:]...)
}

func combineSpecialCases(tokens []*Token) []*Token {
	for i := 0; i+2 < len(tokens); i++ {
		// causative-polite contraction: stem + て + polite imperative
		if tokens[i].Dictionary == "する" && tokens[i+1].Surface == "て" && tokens[i+2].Dictionary == "くださる" {
			tokens[i].Surface += tokens[i+1].Surface + tokens[i+2].Surface
			tokens = cut(tokens, i+1, 2)
			i--
			continue
		}
		for _, sc := range specialCases3 {
			if tokens[i].Surface == sc.a && tokens[i+1].Surface == sc.b && tokens[i+2].Surface == sc.c {
				tokens[i].Surface += tokens[i+1].Surface + tokens[i+2].Surface
				tokens[i].POS = sc.pos
				tokens = cut(tokens, i+1, 2)
				i--
				break
			}
		}
	}
	for i := 0; i+1 < len(tokens); i++ {
		for _, sc := range specialCases2 {
			if tokens[i].Surface == sc.a && tokens[i+1].Surface == sc.b {
				tokens[i].Surface += tokens[i+1].Surface
				tokens[i].POS = sc.pos
				tokens = cut(tokens, i+1, 1)
				i--
				break
			}
		}
	}
	return tokens
}

// fixMisclassified patches individual analyzer misreadings that no general
// rule covers.
func fixMisclassified(tokens []*Token) []*Token {
	for i := 0; i < len(tokens); i++ {
		// sometimes tagged Auxiliary, which would get absorbed below
		if tokens[i].Surface == "でしょう" {
			tokens[i].POS = Expression
		}
	}
	for i := 0; i < len(tokens); i++ {
		switch tokens[i].Surface {
		case "俺の":
			// analyzer reads this as a proper noun
			tokens[i] = &Token{Surface: "俺", POS: Pronoun, Dictionary: "俺"}
			tokens = insert(tokens, i+1, &Token{
				Surface: "の", POS: Particle, Sub1: SubCaseMarkingParticle,
				Dictionary: "の", Reading: "の",
			})
		case "泣きながら":
			tokens[i] = &Token{Surface: "泣き", POS: Noun, Dictionary: "泣き"}
			tokens = insert(tokens, i+1, &Token{
				Surface: "ながら", POS: Particle, Sub1: SubCaseMarkingParticle,
				Dictionary: "ながら", Reading: "ながら",
			})
		}
	}
	return tokens
}

func insert(tokens []*Token, i int, t *Token) []*Token {
	tokens = append(tokens, nil)
	copy(tokens[i+1:], tokens[i:])
	tokens[i] = t
	return tokens
}

func combinePrefixes(tokens []*Token) []*Token {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].POS == Prefix {
			tokens[i+1].Surface = tokens[i].Surface + tokens[i+1].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

func combineAmounts(tokens []*Token) []*Token {
	for i := 0; i+1 < len(tokens); i++ {
		if !tokens[i].HasSub(SubAmount) && !tokens[i].HasSub(SubNumeral) {
			continue
		}
		fw := ToFullWidthDigits(tokens[i].Surface)
		if _, ok := amountCombinations[fw+"+"+tokens[i+1].Surface]; !ok {
			continue
		}
		tokens[i+1].Surface = fw + tokens[i+1].Surface
		tokens[i+1].POS = Noun
		tokens = cut(tokens, i, 1)
		i--
	}
	return tokens
}

func combineSmallTsuTe(tokens []*Token) []*Token {
	for i := 0; i+1 < len(tokens); i++ {
		if strings.HasSuffix(tokens[i].Surface, "っ") && strings.HasPrefix(tokens[i+1].Surface, "て") {
			tokens[i].Surface += tokens[i+1].Surface
			tokens = cut(tokens, i+1, 1)
			i--
		}
	}
	return tokens
}

func combineDependants(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].HasSub(SubDependant) && tokens[i-1].POS == Verb {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	for i := 1; i < len(tokens); i++ {
		if !tokens[i].HasSub(SubPossibleDependant) || tokens[i-1].POS != Verb {
			continue
		}
		if _, keep := independentAuxiliaries[tokens[i].Dictionary]; keep {
			continue
		}
		tokens[i-1].Surface += tokens[i].Surface
		tokens = cut(tokens, i, 1)
		i--
	}
	return tokens
}

func combinePotentialSuru(tokens []*Token) []*Token {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].HasSub(SubPossibleSuru) &&
			tokens[i+1].Dictionary == "する" &&
			tokens[i+1].Surface != "する" && tokens[i+1].Surface != "しない" {
			tokens[i].Surface += tokens[i+1].Surface
			tokens[i].POS = Verb
			tokens = cut(tokens, i+1, 1)
			i--
		}
	}
	return tokens
}

func combineProgressive(tokens []*Token) []*Token {
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].POS == Verb && tokens[i+1].Dictionary == "て" && tokens[i+2].Dictionary == "いる" {
			tokens[i].Surface += tokens[i+1].Surface + tokens[i+2].Surface
			tokens = cut(tokens, i+1, 2)
			i--
		}
	}
	return tokens
}

func combineAdverbialParticles(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].HasSub(SubAdverbialParticle) &&
			(tokens[i].Dictionary == "だり" || tokens[i].Dictionary == "たり") &&
			tokens[i-1].POS == Verb {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

func combineConjunctiveParticles(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		switch tokens[i].Surface {
		case "て", "で", "ながら", "ちゃ", "ば":
		default:
			continue
		}
		if tokens[i].HasSub(SubConjunctionParticle) && tokens[i-1].POS == Verb {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

func combineAuxiliaryVerbStems(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].HasSub(SubAuxiliaryVerbStem) &&
			tokens[i].Surface != "ように" && tokens[i].Surface != "よう" &&
			(tokens[i-1].POS == Verb || tokens[i-1].POS == IAdjective) {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

func combineAuxiliaries(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].POS == Auxiliary &&
			(tokens[i-1].POS == Verb || tokens[i-1].POS == IAdjective) &&
			tokens[i].Surface != "な" && tokens[i].Surface != "に" &&
			tokens[i].Surface != "なら" && tokens[i].Surface != "だろう" &&
			tokens[i].Dictionary != "です" && tokens[i].Dictionary != "らしい" &&
			tokens[i].Dictionary != "べし" && tokens[i].Dictionary != "ようだ" {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
			continue
		}
		if tokens[i].POS == Auxiliary && tokens[i].Surface == "な" &&
			(tokens[i-1].HasSub(SubPossibleNaAdjective) || tokens[i-1].POS == NaAdjective) {
			tokens[i-1].Surface += tokens[i].Surface
			tokens[i-1].POS = NaAdjective
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

func combineSuffixes(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].POS != Suffix && !tokens[i].HasSub(SubSuffix) {
			continue
		}
		if _, standalone := standaloneSuffixes[tokens[i].Dictionary]; standalone {
			continue
		}
		if tokens[i].Dictionary == "たち" && tokens[i-1].POS != Pronoun {
			continue
		}
		tokens[i-1].Surface += tokens[i].Surface
		tokens = cut(tokens, i, 1)
		i--
	}
	return tokens
}

var particlePairs = [][2]string{
	{"に", "は"},
	{"と", "は"},
	{"で", "は"},
	{"の", "に"},
}

func combineParticlePairs(tokens []*Token) []*Token {
	for i := 0; i+1 < len(tokens); i++ {
		for _, p := range particlePairs {
			if tokens[i].Surface == p[0] && tokens[i+1].Surface == p[1] {
				tokens[i].Surface = p[0] + p[1]
				tokens = cut(tokens, i+1, 1)
				break
			}
		}
	}
	return tokens
}

func combineTrailingBa(tokens []*Token) []*Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Surface == "ば" && tokens[i-1].POS == Verb {
			tokens[i-1].Surface += tokens[i].Surface
			tokens = cut(tokens, i, 1)
			i--
		}
	}
	return tokens
}

// separateHonorifics is the one inverse pass: a name token with a glued-on
// honorific gets the honorific split back out as its own Suffix token.
func separateHonorifics(tokens []*Token) []*Token {
	for i := 0; i < len(tokens); i++ {
		if !tokens[i].HasSub(SubPersonName) && !tokens[i].HasSub(SubProperNoun) {
			continue
		}
		for _, h := range honorifics {
			if !strings.HasSuffix(tokens[i].Surface, h) || len(tokens[i].Surface) <= len(h) {
				continue
			}
			tokens[i].Surface = strings.TrimSuffix(tokens[i].Surface, h)
			tokens[i].Dictionary = strings.TrimSuffix(tokens[i].Dictionary, h)
			tokens = insert(tokens, i+1, &Token{Surface: h, POS: Suffix, Dictionary: h})
			i++
			break
		}
	}
	return tokens
}
