package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func serveFile(t *testing.T, path, contentType string) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(opts ...Option) *Client {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewClient(opts...)
}

func TestFetchRSS(t *testing.T) {
	srv := serveFile(t, "testdata/news.rss", "application/rss+xml")

	articles, err := newTestClient().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "launch-2024-03-01", first.GUID)
	assert.Equal(t, "Launch window opens", first.Title)
	assert.Equal(t, "NASA confirmed the launch window. Crews are ready.", first.Description)
	assert.True(t, first.PubDate.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "https://news.example.com/launch", first.SourceURL)
	assert.Equal(t, []string{"Jane Doe"}, first.Author)
	assert.Empty(t, first.Topics)
	assert.Empty(t, first.Entities)

	second := articles[1]
	assert.Empty(t, second.GUID)
	assert.Empty(t, second.Description)
	assert.True(t, second.PubDate.Equal(fixedNow), "missing pubDate falls back to now")
	assert.Equal(t, []string{"Unknown"}, second.Author)
}

func TestFetchAtom(t *testing.T) {
	srv := serveFile(t, "testdata/updates.atom", "application/atom+xml")

	articles, err := newTestClient().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", a.GUID)
	assert.Equal(t, "Version two ships today.", a.Description)
	assert.True(t, a.PubDate.Equal(time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "https://updates.example.com/release", a.SourceURL)
	assert.Equal(t, []string{"Ada Lovelace"}, a.Author)
}

func TestFetchSendsUserAgent(t *testing.T) {
	body, err := os.ReadFile("testdata/news.rss")
	require.NoError(t, err)
	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.UserAgent()
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	_, err = newTestClient(WithUserAgent("test-agent/2")).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/2", <-got)
}

func TestFetchInvalidURL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	for _, url := range []string{"", "not a url", "ftp://example.com/feed", "http://", "http://exa mple.com"} {
		t.Run(url, func(t *testing.T) {
			_, err := newTestClient().Fetch(context.Background(), url)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidURL)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, InvalidURL, fe.Kind)
			assert.Equal(t, url, fe.URL)
		})
	}
	assert.Zero(t, hits)
}

func TestFetchNetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient().Fetch(context.Background(), url)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnreachable)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestClient(WithTimeout(50*time.Millisecond)).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchFailed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			},
		},
		{
			name: "not a feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte("<html><body>hello</body></html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestClient().Fetch(context.Background(), srv.URL)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFetchFailed)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, FetchFailed, fe.Kind)
			assert.Equal(t, srv.URL, fe.URL)
		})
	}
}
