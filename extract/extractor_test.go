package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/poiesic/gleaner/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTagger returns fixed candidate lists.
type stubTagger struct {
	nouns, verbs, adjectives []string
	err                      error
}

func (s *stubTagger) Nouns(string) ([]string, error)      { return s.nouns, s.err }
func (s *stubTagger) Verbs(string) ([]string, error)      { return s.verbs, nil }
func (s *stubTagger) Adjectives(string) ([]string, error) { return s.adjectives, nil }

// stubRecognizer returns fixed spans and can fail one category.
type stubRecognizer struct {
	people, places, orgs []string
	failPlaces           bool
	panicOrgs            bool
}

func (s *stubRecognizer) People(string) ([]string, error) { return s.people, nil }
func (s *stubRecognizer) Places(string) ([]string, error) {
	if s.failPlaces {
		return []string{"ignored"}, errors.New("recognizer unavailable")
	}
	return s.places, nil
}
func (s *stubRecognizer) Organizations(string) ([]string, error) {
	if s.panicOrgs {
		panic("boom")
	}
	return s.orgs, nil
}

func TestExtractor_Topics_RankingAndFiltering(t *testing.T) {
	e := New(WithTagger(&stubTagger{
		nouns:      []string{"Sports", "match", "U.S.-based", "sports", "goal", "Stadium"},
		verbs:      []string{"scored", "stadium", "sports"},
		adjectives: []string{"thrilling", "big"},
	}))

	got := e.Topics("ignored by the stub")

	// sports x3, stadium x2, then first occurrence order for the rest.
	assert.Equal(t, []string{"sports", "stadium", "match", "usbased", "scored", "thrilling"}, got)
}

func TestExtractor_Topics_TieBreakIsFirstOccurrence(t *testing.T) {
	e := New(WithTagger(&stubTagger{
		nouns: []string{"zebra", "apple", "mango", "apple", "zebra", "mango"},
	}))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, e.Topics("x"))
}

func TestExtractor_Topics_Bound(t *testing.T) {
	var nouns []string
	for i := 0; i < 250; i++ {
		nouns = append(nouns, fmt.Sprintf("term%03d", i))
	}
	// Repeat a few so ranking is exercised alongside the cap.
	nouns = append(nouns, "term200", "term200", "term150")

	e := New(WithTagger(&stubTagger{nouns: nouns}))
	got := e.Topics("x")

	require.Len(t, got, core.MaxTopics)
	assert.Equal(t, "term200", got[0])
	assert.Equal(t, "term150", got[1])
	assert.Equal(t, "term000", got[2])
}

func TestExtractor_Topics_PropertiesOnRealText(t *testing.T) {
	text := strings.Repeat(`The national football team scored a thrilling late goal against
Germany on Saturday, and supporters celebrated across Paris. Analysts expected a
difficult tournament, but the team's improved defence surprised everyone. `, 30)

	got := New().Topics(text)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), core.MaxTopics)

	alnumLower := regexp.MustCompile(`^[a-z0-9]+$`)
	seen := map[string]bool{}
	for _, term := range got {
		assert.Regexp(t, alnumLower, term)
		assert.Greater(t, len(term), 4, term)
		assert.False(t, seen[term], "duplicate topic %q", term)
		seen[term] = true
	}

	// Frequencies must be non-increasing in returned order.
	counts := topicCounts(t, text)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, counts[got[i-1]], counts[got[i]], "%s before %s", got[i-1], got[i])
	}
}

// topicCounts recomputes candidate frequencies from the default tagger.
func topicCounts(t *testing.T, text string) map[string]int {
	t.Helper()
	rt := NewRuleTagger()
	counts := map[string]int{}
	for _, fn := range []func(string) ([]string, error){rt.Nouns, rt.Verbs, rt.Adjectives} {
		terms, err := fn(text)
		require.NoError(t, err)
		for _, term := range terms {
			counts[strings.ToLower(stripNonAlphanumeric(term))]++
		}
	}
	return counts
}

func TestExtractor_EmptyInput(t *testing.T) {
	e := New()
	for _, text := range []string{"", "   ", "\n\t "} {
		topics := e.Topics(text)
		entities := e.Entities(text)
		assert.NotNil(t, topics)
		assert.NotNil(t, entities)
		assert.Empty(t, topics)
		assert.Empty(t, entities)
	}
}

func TestExtractor_Topics_TaggerFailureYieldsPartialResult(t *testing.T) {
	e := New(WithTagger(&stubTagger{
		nouns: []string{"should", "be", "dropped"},
		verbs: []string{"launched"},
		err:   errors.New("tagger down"),
	}))
	assert.Equal(t, []string{"launched"}, e.Topics("x"))
}

func TestExtractor_Entities_OrderAndStripping(t *testing.T) {
	e := New(WithRecognizer(&stubRecognizer{
		people: []string{"Jane Doe", "O'Brien"},
		places: []string{"Paris", "Paris"},
		orgs:   []string{"Acme Corp.", "AT&T"},
	}))

	got := e.Entities("ignored")
	assert.Equal(t, []string{"JaneDoe", "OBrien", "Paris", "Paris", "AcmeCorp", "ATT"}, got)
}

func TestExtractor_Entities_KeepsSpansStrippedEmpty(t *testing.T) {
	e := New(WithRecognizer(&stubRecognizer{
		people: []string{"Jane Doe", "--"},
		orgs:   []string{"&"},
	}))
	assert.Equal(t, []string{"JaneDoe", "", ""}, e.Entities("ignored"))
}

func TestExtractor_Entities_CategoryFailure(t *testing.T) {
	e := New(WithRecognizer(&stubRecognizer{
		people:     []string{"Jane Doe"},
		places:     []string{"Paris"},
		orgs:       []string{"Acme Corp"},
		failPlaces: true,
		panicOrgs:  true,
	}))
	assert.Equal(t, []string{"JaneDoe"}, e.Entities("x"))
}

func TestExtractor_Entities_DefaultTagger(t *testing.T) {
	got := New().Entities("Jane Doe flew to Paris on Monday to meet Acme Corp. executives.")
	assert.Equal(t, []string{"JaneDoe", "Paris", "AcmeCorp"}, got)
}

func TestExtractor_Entities_NotDeduplicated(t *testing.T) {
	got := New().Entities("Paris is busy. Visitors love Paris, and Paris loves them.")
	assert.Equal(t, []string{"Paris", "Paris", "Paris"}, got)
}

func TestExtractor_Enrich(t *testing.T) {
	a := &core.Article{
		Description: "Jane Doe scored twice as London celebrated a famous victory in London.",
		Topics:      []string{"stale"},
	}
	New().Enrich(a)

	assert.Contains(t, a.Topics, "london")
	assert.Equal(t, "london", a.Topics[0])
	assert.NotContains(t, a.Topics, "stale")
	assert.Equal(t, []string{"JaneDoe", "London", "London"}, a.Entities)

	New().Enrich(nil)
}
