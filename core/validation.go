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


package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var sourceURLPattern = regexp.MustCompile(`^https?://\S+$`)

// IsValidSourceURL reports whether s has the http(s)://<non-whitespace> shape.
// No network access or DNS resolution is performed.
func IsValidSourceURL(s string) bool {
	return sourceURLPattern.MatchString(s)
}

// NormalizeArticle fills defaults for fields a feed item may omit.
//
// Normalization rules:
//   - string fields are trimmed
//   - GUID falls back to SourceURL when the item has no identifier
//   - zero PubDate becomes now
//   - empty Author becomes ["Unknown"]
//   - nil Topics and Entities become empty slices
//
// Required fields that are still missing are left for ValidateArticle to reject.
func NormalizeArticle(a *Article, now time.Time) {
	if a == nil {
		return
	}
	a.GUID = strings.TrimSpace(a.GUID)
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	a.SourceURL = strings.TrimSpace(a.SourceURL)

	if a.GUID == "" {
		a.GUID = a.SourceURL
	}
	if a.PubDate.IsZero() {
		a.PubDate = now
	}

	authors := a.Author[:0]
	for _, name := range a.Author {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}
	if len(authors) == 0 {
		authors = []string{UnknownAuthor}
	}
	a.Author = authors

	if a.Topics == nil {
		a.Topics = []string{}
	}
	if a.Entities == nil {
		a.Entities = []string{}
	}
}

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - GUID must not be empty
//   - Title must not be empty
//   - SourceURL must not be empty and must be an http(s) URL
//   - Topics must not exceed MaxTopics
//
// NOT validated:
//   - Description (may be empty)
//   - Entities (unbounded, duplicates allowed)
//   - CreatedAt/UpdatedAt (maintained by storage)
func ValidateArticle(a *Article) error {
	if a == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if a.GUID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyGUID)
	}

	if a.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyTitle)
	}

	if a.SourceURL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptySourceURL)
	}

	if !IsValidSourceURL(a.SourceURL) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArticle, ErrInvalidSourceURL, a.SourceURL)
	}

	if len(a.Topics) > MaxTopics {
		return fmt.Errorf("%w: %w: %d", ErrInvalidArticle, ErrTooManyTopics, len(a.Topics))
	}

	return nil
}
