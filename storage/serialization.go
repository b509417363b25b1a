package storage

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/poiesic/gleaner/core"
)

// MarshalArticle serializes an Article to bytes.
func MarshalArticle(article *core.Article) ([]byte, error) {
	data, err := json.Marshal(article)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalArticle deserializes an Article from bytes.
func UnmarshalArticle(data []byte) (*core.Article, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrSerializationFailed)
	}
	var article core.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &article, nil
}
