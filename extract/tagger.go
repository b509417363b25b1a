package extract

// Tagger yields part-of-speech candidate terms for a text.
// Each returned term is a surface form as it appears in the text.
type Tagger interface {
	Nouns(text string) ([]string, error)
	Verbs(text string) ([]string, error)
	Adjectives(text string) ([]string, error)
}

// Recognizer yields named-entity spans for a text, in order of appearance.
type Recognizer interface {
	People(text string) ([]string, error)
	Places(text string) ([]string, error)
	Organizations(text string) ([]string, error)
}
