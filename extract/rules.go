package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type partOfSpeech int

const (
	posOther partOfSpeech = iota
	posNoun
	posVerb
	posAdjective
)

type entityKind int

const (
	entityNone entityKind = iota
	entityPerson
	entityPlace
	entityOrganization
)

// token is one whitespace-delimited word with its edge punctuation removed.
type token struct {
	text          string // surface form
	name          string // surface form without a possessive suffix
	lower         string
	capital       bool
	acronym       bool
	sentenceStart bool
	breakAfter    bool // punctuation follows the word
	possessive    bool
}

// RuleTagger is a lexicon and suffix-rule implementation of Tagger and
// Recognizer. The zero value is not usable; call NewRuleTagger.
type RuleTagger struct {
	closedClass       map[string]struct{}
	verbs             map[string]struct{}
	adjectives        map[string]struct{}
	nounExceptions    map[string]struct{}
	places            map[string]struct{}
	organizations     map[string]struct{}
	givenNames        map[string]struct{}
	adjectiveSuffixes []string
	verbSuffixes      []string
}

var (
	_ Tagger     = (*RuleTagger)(nil)
	_ Recognizer = (*RuleTagger)(nil)
)

// NewRuleTagger creates a RuleTagger over the built-in word lists.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{
		closedClass:       closedClass,
		verbs:             commonVerbs,
		adjectives:        commonAdjectives,
		nounExceptions:    nounExceptions,
		places:            places,
		organizations:     organizations,
		givenNames:        givenNames,
		adjectiveSuffixes: adjectiveSuffixes,
		verbSuffixes:      verbSuffixes,
	}
}

// AddPlaces extends the place gazetteer.
func (rt *RuleTagger) AddPlaces(names ...string) {
	rt.places = extendSet(rt.places, names)
}

// AddOrganizations extends the list of known single-token organizations.
func (rt *RuleTagger) AddOrganizations(names ...string) {
	rt.organizations = extendSet(rt.organizations, names)
}

// AddGivenNames extends the list of first names used to recognise people.
func (rt *RuleTagger) AddGivenNames(names ...string) {
	rt.givenNames = extendSet(rt.givenNames, names)
}

// extendSet copies the shared built-in set before the first write.
func extendSet(set map[string]struct{}, words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(set)+len(words))
	for w := range set {
		out[w] = struct{}{}
	}
	for _, w := range words {
		out[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return out
}

func (rt *RuleTagger) Nouns(text string) ([]string, error) {
	return rt.termsTagged(text, posNoun), nil
}

func (rt *RuleTagger) Verbs(text string) ([]string, error) {
	return rt.termsTagged(text, posVerb), nil
}

func (rt *RuleTagger) Adjectives(text string) ([]string, error) {
	return rt.termsTagged(text, posAdjective), nil
}

func (rt *RuleTagger) People(text string) ([]string, error) {
	return rt.spansOf(text, entityPerson), nil
}

func (rt *RuleTagger) Places(text string) ([]string, error) {
	return rt.spansOf(text, entityPlace), nil
}

func (rt *RuleTagger) Organizations(text string) ([]string, error) {
	return rt.spansOf(text, entityOrganization), nil
}

func (rt *RuleTagger) termsTagged(text string, want partOfSpeech) []string {
	toks := tokenize(text)
	var out []string
	for i, tok := range toks {
		cue := i > 0 && !toks[i-1].breakAfter && isVerbCue(toks[i-1].lower)
		if rt.partOfSpeech(tok, cue) == want {
			out = append(out, tok.text)
		}
	}
	return out
}

func (rt *RuleTagger) spansOf(text string, want entityKind) []string {
	toks := tokenize(text)
	var out []string
	for _, span := range rt.nameSpans(toks) {
		if rt.classify(span) != want {
			continue
		}
		if want == entityPerson && len(span) > 1 && isHonorific(span[0].lower) {
			span = span[1:]
		}
		out = append(out, joinNames(span))
	}
	return out
}

// partOfSpeech tags a single token. Rules are checked most specific first.
func (rt *RuleTagger) partOfSpeech(tok token, afterVerbCue bool) partOfSpeech {
	w := tok.lower
	switch {
	case !hasLetter(w):
		return posOther
	case rt.isProperNoun(tok):
		return posNoun
	case contains(rt.closedClass, w):
		return posOther
	case len(w) > 4 && strings.HasSuffix(w, "ly") && !contains(rt.adjectives, w):
		return posOther
	case contains(rt.verbs, w):
		return posVerb
	case contains(rt.adjectives, w):
		return posAdjective
	case contains(rt.nounExceptions, w):
		return posNoun
	case afterVerbCue:
		return posVerb
	case len(w) > 4 && hasAnySuffix(w, rt.verbSuffixes):
		return posVerb
	case len(w) > 4 && hasAnySuffix(w, rt.adjectiveSuffixes):
		return posAdjective
	}
	return posNoun
}

func (rt *RuleTagger) isProperNoun(tok token) bool {
	if !tok.capital {
		return false
	}
	if tok.sentenceStart && rt.isCommonWord(tok.lower) {
		return false
	}
	return true
}

func (rt *RuleTagger) isCommonWord(w string) bool {
	return contains(rt.closedClass, w) || contains(rt.verbs, w) || contains(rt.adjectives, w)
}

// nameSpans groups runs of capitalised tokens into candidate names.
// A run ends at punctuation or a possessive. Lowercase connectors such as
// "von" are kept inside a run, and "of" is kept after an institutional head
// word such as "University".
func (rt *RuleTagger) nameSpans(toks []token) [][]token {
	var spans [][]token
	for i := 0; i < len(toks); {
		tok := toks[i]
		if !isNamePart(tok) || (tok.sentenceStart && contains(rt.closedClass, tok.lower)) {
			i++
			continue
		}
		span := []token{tok}
		j := i
		for j+1 < len(toks) && !toks[j].breakAfter && !toks[j].possessive {
			next := toks[j+1]
			if isNamePart(next) {
				span = append(span, next)
				j++
				continue
			}
			k := j + 1
			for k < len(toks) && !toks[k].breakAfter && rt.isConnector(toks[k], span[0]) {
				k++
			}
			if k == j+1 || k >= len(toks) || !isNamePart(toks[k]) {
				break
			}
			span = append(span, toks[j+1:k+1]...)
			j = k
		}
		spans = append(spans, span)
		i = j + 1
	}
	return spans
}

func (rt *RuleTagger) isConnector(tok, head token) bool {
	if tok.capital {
		return false
	}
	return contains(nameConnectors, tok.lower) || (tok.lower == "of" && contains(orgHeads, head.lower))
}

// classify assigns an entity kind to a name span. Organization evidence wins
// over a full gazetteer match, which wins over person evidence.
func (rt *RuleTagger) classify(span []token) entityKind {
	first := strings.ToLower(span[0].name)
	last := strings.ToLower(span[len(span)-1].name)
	full := strings.ToLower(joinNames(span))

	switch {
	case len(span) > 1 && contains(orgSuffixes, last):
		return entityOrganization
	case len(span) > 2 && contains(orgHeads, first) && span[1].lower == "of":
		return entityOrganization
	case len(span) == 1 && contains(rt.organizations, full):
		return entityOrganization
	case contains(rt.places, full):
		return entityPlace
	case len(span) == 1 && span[0].acronym:
		return entityOrganization
	case len(span) > 1 && isHonorific(first):
		return entityPerson
	case contains(rt.givenNames, first):
		return entityPerson
	}
	return entityNone
}

// tokenize splits text on whitespace and records the punctuation around
// each word.
func tokenize(text string) []token {
	var toks []token
	sentenceStart := true
	for _, field := range strings.Fields(text) {
		core := strings.TrimFunc(field, isEdgePunct)
		if core == "" {
			if len(toks) > 0 {
				toks[len(toks)-1].breakAfter = true
			}
			if strings.ContainsAny(field, ".!?") {
				sentenceStart = true
			}
			continue
		}

		at := strings.Index(field, core)
		if at > 0 && len(toks) > 0 {
			toks[len(toks)-1].breakAfter = true
		}
		trailing := field[at+len(core):]

		tok := token{
			text:          core,
			name:          core,
			lower:         strings.ToLower(core),
			sentenceStart: sentenceStart,
		}
		if r, _ := utf8.DecodeRuneInString(core); unicode.IsUpper(r) {
			tok.capital = true
		}
		tok.acronym = isAcronym(core)
		for _, suffix := range []string{"'s", "’s"} {
			if len(core) > len(suffix) && strings.HasSuffix(tok.lower, suffix) {
				tok.name = core[:len(core)-len(suffix)]
				tok.possessive = true
				break
			}
		}

		// "Corp." and "U.S." keep their period.
		if strings.HasPrefix(trailing, ".") && (contains(abbreviations, tok.lower) || strings.Contains(core, ".")) {
			trailing = trailing[1:]
		}
		if trailing != "" {
			tok.breakAfter = true
		}
		sentenceStart = strings.ContainsAny(trailing, ".!?")
		toks = append(toks, tok)
	}
	return toks
}

func isEdgePunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '&'
}

func isNamePart(tok token) bool {
	return tok.capital && hasLetter(tok.lower)
}

func isAcronym(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2 && letters <= 6
}

func isVerbCue(w string) bool {
	return contains(verbCues, w)
}

func isHonorific(w string) bool {
	return contains(honorifics, strings.TrimSuffix(w, "."))
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func contains(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}

func joinNames(span []token) string {
	parts := make([]string, len(span))
	for i, tok := range span {
		parts[i] = tok.name
	}
	return strings.Join(parts, " ")
}
