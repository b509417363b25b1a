package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	assert.Equal(t, "abc   ", fit("abc", 6))
	assert.Equal(t, "a b   ", fit(" a \n b ", 6))
	assert.Equal(t, "abc...", fit("abcdefghij", 6))
	assert.Equal(t, 6, runewidth.StringWidth(fit("東京の天気予報", 6)))
}

func TestRenderTable(t *testing.T) {
	result := &storage.QueryResult{
		Articles: []*core.Article{
			{
				Title:    "東京 weather report",
				PubDate:  time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
				Author:   []string{"Jane Doe"},
				Entities: []string{"Tokyo", "JMA"},
			},
			{
				Title:   "A very long headline that keeps going well past the width of its column",
				PubDate: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
				Author:  []string{core.UnknownAuthor},
			},
		},
		Total: 12,
		Page:  1,
		Limit: 2,
	}

	var buf bytes.Buffer
	renderTable(&buf, result)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "PUBLISHED"))
	assert.True(t, strings.HasPrefix(lines[1], "2024-01-02 10:00"))
	assert.Contains(t, lines[1], "Tokyo, JMA")
	assert.Contains(t, lines[2], "...")

	// Author column starts at the same display offset on every row.
	authorAt := 16 + 2 + 48 + 2
	for _, line := range lines[1:3] {
		assert.GreaterOrEqual(t, runewidth.StringWidth(line), authorAt)
		assert.Equal(t, authorAt, runewidth.StringWidth(runewidth.Truncate(line, authorAt, "")))
	}
	assert.Equal(t, "Page 1 of 6 (12 articles)", lines[4])
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, &storage.QueryResult{Articles: []*core.Article{}, Page: 3, Limit: 10, Total: 4})
	assert.Equal(t, "No articles found (4 total).\n", buf.String())
}
