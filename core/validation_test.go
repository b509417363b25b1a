package core

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func validArticle() *Article {
	return &Article{
		GUID:      "urn:news:1",
		Title:     "Local team wins",
		SourceURL: "https://example.com/news/1",
		PubDate:   time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Author:    []string{"Jane Doe"},
	}
}

func TestValidateArticle(t *testing.T) {
	tooMany := validArticle()
	for i := 0; i <= MaxTopics; i++ {
		tooMany.Topics = append(tooMany.Topics, "topic"+strconv.Itoa(i))
	}

	exactly := validArticle()
	exactly.Topics = tooMany.Topics[:MaxTopics]

	tests := []struct {
		name    string
		article func() *Article
		wantErr error
	}{
		{
			name:    "valid article",
			article: validArticle,
		},
		{
			name: "empty description is valid",
			article: func() *Article {
				a := validArticle()
				a.Description = ""
				return a
			},
		},
		{
			name:    "exactly max topics",
			article: func() *Article { return exactly },
		},
		{
			name:    "nil article",
			article: func() *Article { return nil },
			wantErr: ErrInvalidArticle,
		},
		{
			name: "empty guid",
			article: func() *Article {
				a := validArticle()
				a.GUID = ""
				return a
			},
			wantErr: ErrEmptyGUID,
		},
		{
			name: "empty title",
			article: func() *Article {
				a := validArticle()
				a.Title = ""
				return a
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty source url",
			article: func() *Article {
				a := validArticle()
				a.SourceURL = ""
				return a
			},
			wantErr: ErrEmptySourceURL,
		},
		{
			name: "non http source url",
			article: func() *Article {
				a := validArticle()
				a.SourceURL = "ftp://example.com/item"
				return a
			},
			wantErr: ErrInvalidSourceURL,
		},
		{
			name:    "too many topics",
			article: func() *Article { return tooMany },
			wantErr: ErrTooManyTopics,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticle(tt.article())
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateArticle() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateArticle() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidArticle) {
				t.Errorf("ValidateArticle() error = %v, should wrap ErrInvalidArticle", err)
			}
		})
	}
}

func TestIsValidSourceURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/feed.xml", true},
		{"http://example.com", true},
		{"HTTP://example.com", false},
		{"https://", false},
		{"https://exa mple.com", false},
		{"not a url", false},
		{"ftp://example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsValidSourceURL(tt.url); got != tt.want {
				t.Errorf("IsValidSourceURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestNormalizeArticle(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("fills defaults", func(t *testing.T) {
		a := &Article{
			Title:     "  Headline  ",
			SourceURL: " https://example.com/a ",
		}
		NormalizeArticle(a, now)

		if a.Title != "Headline" {
			t.Errorf("Title = %q, want trimmed", a.Title)
		}
		if a.GUID != "https://example.com/a" {
			t.Errorf("GUID = %q, want source url fallback", a.GUID)
		}
		if !a.PubDate.Equal(now) {
			t.Errorf("PubDate = %v, want %v", a.PubDate, now)
		}
		if len(a.Author) != 1 || a.Author[0] != UnknownAuthor {
			t.Errorf("Author = %v, want [%s]", a.Author, UnknownAuthor)
		}
		if a.Topics == nil || a.Entities == nil {
			t.Errorf("Topics/Entities should be non-nil empty slices")
		}
		if err := ValidateArticle(a); err != nil {
			t.Errorf("normalized article should validate: %v", err)
		}
	})

	t.Run("keeps provided values", func(t *testing.T) {
		a := validArticle()
		pub := a.PubDate
		NormalizeArticle(a, now)

		if a.GUID != "urn:news:1" {
			t.Errorf("GUID = %q, want original", a.GUID)
		}
		if !a.PubDate.Equal(pub) {
			t.Errorf("PubDate = %v, want %v", a.PubDate, pub)
		}
		if len(a.Author) != 1 || a.Author[0] != "Jane Doe" {
			t.Errorf("Author = %v, want [Jane Doe]", a.Author)
		}
	})

	t.Run("blank authors become unknown", func(t *testing.T) {
		a := validArticle()
		a.Author = []string{"  ", ""}
		NormalizeArticle(a, now)
		if len(a.Author) != 1 || a.Author[0] != UnknownAuthor {
			t.Errorf("Author = %v, want [%s]", a.Author, UnknownAuthor)
		}
	})

	t.Run("nil is a no-op", func(t *testing.T) {
		NormalizeArticle(nil, now)
	})
}
