package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "topic term", content: "football"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("sports") == IDFromContent("sport") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestArticle_Clone(t *testing.T) {
	a := &Article{
		GUID:     "g1",
		Topics:   []string{"sports"},
		Entities: []string{"Paris"},
		Author:   []string{"Jane"},
	}
	c := a.Clone()
	c.Topics[0] = "changed"
	c.Entities[0] = "changed"
	c.Author[0] = "changed"

	if a.Topics[0] != "sports" || a.Entities[0] != "Paris" || a.Author[0] != "Jane" {
		t.Errorf("Clone() shares slices with the original: %+v", a)
	}
	if (*Article)(nil).Clone() != nil {
		t.Errorf("Clone() of nil should be nil")
	}
}

func TestArticle_HasTopicAndEntity(t *testing.T) {
	a := &Article{
		Topics:   []string{"sports", "football"},
		Entities: []string{"Jane Doe"},
	}
	if !a.HasTopic("football") {
		t.Errorf("HasTopic(football) = false, want true")
	}
	if a.HasTopic("Football") {
		t.Errorf("HasTopic is case sensitive, got true for Football")
	}
	if !a.HasEntity("Jane Doe") {
		t.Errorf("HasEntity(Jane Doe) = false, want true")
	}
	if a.HasEntity("Paris") {
		t.Errorf("HasEntity(Paris) = true, want false")
	}
}
