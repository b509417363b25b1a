// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extract

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/gleaner/core"
)

// minTopicLength is the exclusive lower bound on stripped topic length.
const minTopicLength = 4

// Extractor derives ranked topics and entity mentions from text.
// It is stateless apart from its capabilities and safe for concurrent use
// when they are.
type Extractor struct {
	tagger     Tagger
	recognizer Recognizer
	maxTopics  int
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTagger replaces the part-of-speech capability.
func WithTagger(t Tagger) Option {
	return func(e *Extractor) {
		if t != nil {
			e.tagger = t
		}
	}
}

// WithRecognizer replaces the named-entity capability.
func WithRecognizer(r Recognizer) Option {
	return func(e *Extractor) {
		if r != nil {
			e.recognizer = r
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// New creates an Extractor backed by a RuleTagger unless options say otherwise.
func New(opts ...Option) *Extractor {
	rt := NewRuleTagger()
	e := &Extractor{
		tagger:     rt,
		recognizer: rt,
		maxTopics:  core.MaxTopics,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Topics returns up to core.MaxTopics lowercase alphanumeric terms longer than
// four characters, most frequent first.
func (e *Extractor) Topics(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var candidates []string
	candidates = append(candidates, e.collect("nouns", text, e.tagger.Nouns)...)
	candidates = append(candidates, e.collect("verbs", text, e.tagger.Verbs)...)
	candidates = append(candidates, e.collect("adjectives", text, e.tagger.Adjectives)...)

	type ranked struct {
		term  string
		count int
		first int
	}
	index := make(map[string]int)
	var terms []*ranked
	for _, c := range candidates {
		term := strings.ToLower(stripNonAlphanumeric(c))
		if len(term) <= minTopicLength {
			continue
		}
		if i, ok := index[term]; ok {
			terms[i].count++
			continue
		}
		index[term] = len(terms)
		terms = append(terms, &ranked{term: term, count: 1, first: len(terms)})
	}

	slices.SortFunc(terms, func(a, b *ranked) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return a.first - b.first
	})

	if len(terms) > e.maxTopics {
		terms = terms[:e.maxTopics]
	}
	out := make([]string, len(terms))
	for i, r := range terms {
		out[i] = r.term
	}
	return out
}

// Entities returns people, then places, then organizations mentioned in text
// with non-alphanumeric characters stripped. Repeated mentions are kept, and
// so are spans that strip to the empty string.
func (e *Extractor) Entities(text string) []string {
	out := []string{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	spans := slices.Concat(
		e.collect("people", text, e.recognizer.People),
		e.collect("places", text, e.recognizer.Places),
		e.collect("organizations", text, e.recognizer.Organizations),
	)
	for _, span := range spans {
		out = append(out, stripNonAlphanumeric(span))
	}
	return out
}

// Enrich replaces the article's topics and entities with those derived from
// its description.
func (e *Extractor) Enrich(a *core.Article) {
	if a == nil {
		return
	}
	a.Topics = e.Topics(a.Description)
	a.Entities = e.Entities(a.Description)
}

// collect runs one capability and degrades a failure to an empty category.
func (e *Extractor) collect(category, text string, fn func(string) ([]string, error)) (terms []string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("extraction capability panicked", "category", category, "panic", r)
			terms = nil
		}
	}()
	terms, err := fn(text)
	if err != nil {
		e.logger.Debug("extraction capability failed", "category", category, "err", err)
		return nil
	}
	return terms
}

// stripNonAlphanumeric keeps only ASCII letters and digits.
func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
