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

package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/poiesic/gleaner/core"
)

const (
	// DefaultTimeout bounds a single feed request.
	DefaultTimeout = 20 * time.Second

	// DefaultUserAgent is sent with every feed request.
	DefaultUserAgent = "gleaner/1.0"
)

// Client fetches and parses feeds. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source used for items without a publish date.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient creates a feed client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		userAgent:  DefaultUserAgent,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves url and maps every feed item onto an article. The returned
// articles are raw: they carry no topics or entities and have not been
// validated. Any error is a *FetchError.
func (c *Client) Fetch(ctx context.Context, url string) ([]*core.Article, error) {
	if !core.IsValidSourceURL(url) {
		return nil, &FetchError{URL: url, Kind: InvalidURL, Err: fmt.Errorf("malformed url %q", url)}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// gofeed.Parser keeps per-parse state, so each call gets its own.
	parser := gofeed.NewParser()
	parser.Client = c.httpClient
	parser.UserAgent = c.userAgent

	start := time.Now()
	parsed, err := parser.ParseURLWithContext(url, reqCtx)
	if err != nil {
		// A deadline that fires mid-body can surface as a bare read or
		// parse error; make sure it still classifies as a timeout.
		if ctx.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) &&
			!errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		fe := Classify(url, err)
		c.logger.Debug("feed fetch failed", "url", url, "kind", fe.Kind, "status", statusCode(err), "err", err)
		return nil, fe
	}

	now := c.now()
	articles := make([]*core.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, toArticle(item, now))
	}
	c.logger.Debug("feed fetched", "url", url, "title", parsed.Title, "items", len(articles), "elapsed", time.Since(start))
	return articles, nil
}

func toArticle(item *gofeed.Item, now time.Time) *core.Article {
	description := PlainText(item.Description)
	if description == "" {
		description = PlainText(item.Content)
	}

	pubDate := now
	switch {
	case item.PublishedParsed != nil:
		pubDate = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		pubDate = *item.UpdatedParsed
	}

	return &core.Article{
		GUID:        strings.TrimSpace(item.GUID),
		Title:       strings.TrimSpace(item.Title),
		Description: description,
		PubDate:     pubDate,
		SourceURL:   strings.TrimSpace(item.Link),
		Author:      authors(item),
		Topics:      []string{},
		Entities:    []string{},
	}
}

// authors returns the item's first byline, or UnknownAuthor.
func authors(item *gofeed.Item) []string {
	people := append(slices.Clip(item.Authors), item.Author)
	for _, p := range people {
		if p == nil {
			continue
		}
		if name := strings.TrimSpace(p.Name); name != "" {
			return []string{name}
		}
	}
	return []string{core.UnknownAuthor}
}
