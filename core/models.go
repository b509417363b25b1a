package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

const (
	// MaxTopics bounds the number of topic terms kept on an article.
	MaxTopics = 100

	// UnknownAuthor is stored when a feed item carries no byline.
	UnknownAuthor = "Unknown"
)

// ID is a fixed-width identifier derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Article is a stored feed item plus the metadata derived from its text.
// GUID is the identity key; writing an article with an existing GUID
// replaces the stored field set.
type Article struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
	SourceURL   string    `json:"sourceUrl"`
	Topics      []string  `json:"topics"`   // frequency ranked, most frequent first
	Entities    []string  `json:"entities"` // people, then places, then organizations
	Author      []string  `json:"author"`
	CreatedAt   time.Time `json:"createdAt"` // maintained by storage
	UpdatedAt   time.Time `json:"updatedAt"` // maintained by storage
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	c.Topics = cloneStrings(a.Topics)
	c.Entities = cloneStrings(a.Entities)
	c.Author = cloneStrings(a.Author)
	return &c
}

// HasTopic reports whether term is one of the article's topics.
func (a *Article) HasTopic(term string) bool {
	return containsString(a.Topics, term)
}

// HasEntity reports whether name is one of the article's entities.
func (a *Article) HasEntity(name string) bool {
	return containsString(a.Entities, name)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
