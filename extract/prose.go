package extract

import (
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

var (
	proseModelOnce sync.Once
	proseModel     *prose.Model
	proseModelErr  error
)

// loadProseModel decodes prose's bundled tagging and extraction model once.
func loadProseModel() (*prose.Model, error) {
	proseModelOnce.Do(func() {
		doc, err := prose.NewDocument("Loading.", prose.WithSegmentation(false))
		if err != nil {
			proseModelErr = err
			return
		}
		proseModel = doc.Model
	})
	return proseModel, proseModelErr
}

// ProseTagger implements Tagger and Recognizer with prose's averaged
// perceptron tagger and its PERSON/GPE entity model. prose has no
// organization label, so Organizations comes from a fallback Recognizer.
type ProseTagger struct {
	fallback Recognizer
}

var (
	_ Tagger     = (*ProseTagger)(nil)
	_ Recognizer = (*ProseTagger)(nil)
)

// NewProseTagger creates a ProseTagger. A nil fallback uses a RuleTagger.
func NewProseTagger(fallback Recognizer) *ProseTagger {
	if fallback == nil {
		fallback = NewRuleTagger()
	}
	return &ProseTagger{fallback: fallback}
}

func (pt *ProseTagger) document(text string, extract bool) (*prose.Document, error) {
	model, err := loadProseModel()
	if err != nil {
		return nil, err
	}
	return prose.NewDocument(text,
		prose.UsingModel(model),
		prose.WithSegmentation(false),
		prose.WithExtraction(extract))
}

// tagged returns the tokens whose Penn Treebank tag starts with prefix.
func (pt *ProseTagger) tagged(text, prefix string) ([]string, error) {
	doc, err := pt.document(text, false)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, prefix) {
			out = append(out, tok.Text)
		}
	}
	return out, nil
}

func (pt *ProseTagger) entities(text, label string) ([]string, error) {
	doc, err := pt.document(text, true)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, ent := range doc.Entities() {
		if ent.Label == label {
			out = append(out, ent.Text)
		}
	}
	return out, nil
}

// Nouns returns NN, NNS, NNP and NNPS tokens.
func (pt *ProseTagger) Nouns(text string) ([]string, error) { return pt.tagged(text, "NN") }

// Verbs returns VB* tokens.
func (pt *ProseTagger) Verbs(text string) ([]string, error) { return pt.tagged(text, "VB") }

// Adjectives returns JJ, JJR and JJS tokens.
func (pt *ProseTagger) Adjectives(text string) ([]string, error) { return pt.tagged(text, "JJ") }

func (pt *ProseTagger) People(text string) ([]string, error) { return pt.entities(text, "PERSON") }

// Places returns geopolitical entities.
func (pt *ProseTagger) Places(text string) ([]string, error) { return pt.entities(text, "GPE") }

func (pt *ProseTagger) Organizations(text string) ([]string, error) {
	return pt.fallback.Organizations(text)
}
