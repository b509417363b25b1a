package storage

import (
	"testing"
	"time"

	"github.com/poiesic/gleaner/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalArticle(t *testing.T) {
	now := time.Date(2024, 2, 3, 4, 5, 6, 7000, time.UTC)
	article := &core.Article{
		GUID:        "urn:1",
		Title:       "Title",
		Description: "Body with \"quotes\" and unicode: café",
		PubDate:     now,
		SourceURL:   "https://example.com/1",
		Topics:      []string{"sports"},
		Entities:    []string{},
		Author:      []string{"Unknown"},
		CreatedAt:   now,
		UpdatedAt:   now.Add(time.Hour),
	}

	data, err := MarshalArticle(article)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sourceUrl":"https://example.com/1"`)

	decoded, err := UnmarshalArticle(data)
	require.NoError(t, err)
	assert.Equal(t, article.GUID, decoded.GUID)
	assert.Equal(t, article.Description, decoded.Description)
	assert.True(t, article.PubDate.Equal(decoded.PubDate))
	assert.True(t, article.UpdatedAt.Equal(decoded.UpdatedAt))
	assert.Equal(t, article.Topics, decoded.Topics)
	assert.Equal(t, article.Entities, decoded.Entities)
}

func TestUnmarshalArticle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"truncated", []byte(`{"guid":"x"`)},
		{"wrong type", []byte(`{"topics":"sports"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalArticle(tt.data)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}
