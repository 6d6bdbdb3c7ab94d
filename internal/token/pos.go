package token

// PartOfSpeech is the coarse word class reported by the morphological
// analyzer, normalized from the Japanese tag names in its output.
type PartOfSpeech int

const (
	Unknown PartOfSpeech = iota
	Noun
	Verb
	IAdjective
	Adverb
	Particle
	Conjunction
	Auxiliary
	Adnominal
	Interjection
	Symbol
	Prefix
	Filler
	Name
	Pronoun
	NaAdjective
	Suffix
	CommonNoun
	SupplementarySymbol
	BlankSpace
	Expression
	NominalAdjective
	Numeral
)

// SubTag is a finer classification carried in the second to fourth segments
// of the analyzer's tag path. A token carries up to three of them.
type SubTag int

const (
	SubNone SubTag = iota
	SubAmount
	SubAlphabet
	SubFullStop
	SubBlankSpace
	SubSuffix
	SubPronoun
	SubIndependant
	SubDependant
	SubFiller
	SubCommon
	SubSentenceEndingParticle
	SubCounter
	SubParallelMarker
	SubBindingParticle
	SubPotentialAdverb
	SubCaseMarkingParticle
	SubIrregularConjunction
	SubConjunctionParticle
	SubAuxiliaryVerbStem
	SubAdjectivalStem
	SubCompoundWord
	SubQuotation
	SubNounConjunction
	SubAdverbialParticle
	SubConjunctiveParticleClass
	SubAdverbialization
	SubAdverbialOrParallelOrEnding
	SubAdnominalAdjective
	SubProperNoun
	SubSpecial
	SubVerbConjunction
	SubPersonName
	SubFamilyName
	SubOrganization
	SubNotAdjectiveStem
	SubComma
	SubOpeningBracket
	SubClosingBracket
	SubRegion
	SubCountry
	SubNumeral
	SubPossibleDependant
	SubCommonNoun
	SubSubstantiveAdjective
	SubPossibleCounterWord
	SubPossibleSuru
	SubJuntaijoushi
	SubPossibleNaAdjective
	SubVerbLike
	SubPossibleVerbSuruNoun
	SubAdjectival
	SubName
	SubLetter
	SubNaAdjectiveLike
	SubPlaceName
	SubTaruAdjective
)

var posTags = map[string]PartOfSpeech{
	"名詞":    Noun,
	"動詞":    Verb,
	"形容詞":   IAdjective,
	"形状詞":   NaAdjective,
	"副詞":    Adverb,
	"助詞":    Particle,
	"接続詞":   Conjunction,
	"助動詞":   Auxiliary,
	"連体詞":   Adnominal,
	"感動詞":   Interjection,
	"記号":    Symbol,
	"接頭詞":   Prefix,
	"接頭辞":   Prefix,
	"フィラー":  Filler,
	"名":     Name,
	"代名詞":   Pronoun,
	"接尾辞":   Suffix,
	"普通名詞":  CommonNoun,
	"補助記号":  SupplementarySymbol,
	"空白":    BlankSpace,
	"表現":    Expression,
	"形動":    NominalAdjective,
	"数詞":    Numeral,
}

var subTags = map[string]SubTag{
	"数":             SubAmount,
	"アルファベット":       SubAlphabet,
	"句点":            SubFullStop,
	"空白":            SubBlankSpace,
	"接尾":            SubSuffix,
	"代名詞":           SubPronoun,
	"自立":            SubIndependant,
	"非自立":           SubDependant,
	"フィラー":          SubFiller,
	"一般":            SubCommon,
	"終助詞":           SubSentenceEndingParticle,
	"助数詞":           SubCounter,
	"並立助詞":          SubParallelMarker,
	"係助詞":           SubBindingParticle,
	"副詞可能":          SubPotentialAdverb,
	"格助詞":           SubCaseMarkingParticle,
	"サ変接続":          SubIrregularConjunction,
	"接続助詞":          SubConjunctionParticle,
	"助動詞語幹":         SubAuxiliaryVerbStem,
	"形容動詞語幹":        SubAdjectivalStem,
	"連語":            SubCompoundWord,
	"引用":            SubQuotation,
	"名詞接続":          SubNounConjunction,
	"副助詞":           SubAdverbialParticle,
	"助詞類接続":         SubConjunctiveParticleClass,
	"副詞化":           SubAdverbialization,
	"副助詞／並立助詞／終助詞": SubAdverbialOrParallelOrEnding,
	"連体化":           SubAdnominalAdjective,
	"固有名詞":          SubProperNoun,
	"特殊":            SubSpecial,
	"動詞接続":          SubVerbConjunction,
	"人名":            SubPersonName,
	"姓":             SubFamilyName,
	"組織":            SubOrganization,
	"ナイ形容詞語幹":       SubNotAdjectiveStem,
	"読点":            SubComma,
	"括弧開":           SubOpeningBracket,
	"括弧閉":           SubClosingBracket,
	"地域":            SubRegion,
	"国":             SubCountry,
	"数詞":            SubNumeral,
	"非自立可能":         SubPossibleDependant,
	"普通名詞":          SubCommonNoun,
	"名詞的":           SubSubstantiveAdjective,
	"助数詞可能":         SubPossibleCounterWord,
	"サ変可能":          SubPossibleSuru,
	"準体助詞":          SubJuntaijoushi,
	"形状詞可能":         SubPossibleNaAdjective,
	"動詞的":           SubVerbLike,
	"サ変形状詞可能":       SubPossibleVerbSuruNoun,
	"形容詞的":          SubAdjectival,
	"文字":            SubLetter,
	"形状詞的":          SubNaAdjectiveLike,
	"地名":            SubPlaceName,
	"タリ":            SubTaruAdjective,
}

// ParsePOS maps the first segment of an analyzer tag path to a PartOfSpeech.
// Unrecognized tags map to Unknown rather than failing.
func ParsePOS(tag string) PartOfSpeech {
	if pos, ok := posTags[tag]; ok {
		return pos
	}
	return Unknown
}

// ParseSubTag maps one of the finer tag-path segments to a SubTag. The
// placeholder "*" and unrecognized values both map to SubNone.
func ParseSubTag(tag string) SubTag {
	if tag == "名" {
		return SubName
	}
	if sub, ok := subTags[tag]; ok {
		return sub
	}
	return SubNone
}
