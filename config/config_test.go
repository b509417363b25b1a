package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Feeds)
	assert.Equal(t, 60, cfg.FetchIntervalMinutes)
	assert.Equal(t, 20*time.Second, cfg.FetchTimeout)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, TaggerProse, cfg.Tagger)
	assert.Equal(t, DriverBadger, cfg.Store.Driver)
	assert.Equal(t, "./data/articles", cfg.Store.Path)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), NewConfig())
	})

	t.Run("with options", func(t *testing.T) {
		cfg := NewConfig(
			WithFeeds("https://a.example.com/rss"),
			WithFetchInterval(15),
			WithFetchTimeout(5*time.Second),
			WithWorkers(3),
			WithListenAddr(":8080"),
			WithLogLevel("debug"),
		)
		assert.Equal(t, []string{"https://a.example.com/rss"}, cfg.Feeds)
		assert.Equal(t, 15, cfg.FetchIntervalMinutes)
		assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("with store", func(t *testing.T) {
		cfg := NewConfig(WithStore(DriverPostgres, "postgres://localhost/news"))
		assert.Equal(t, DriverPostgres, cfg.Store.Driver)
		assert.Equal(t, "postgres://localhost/news", cfg.Store.DSN)
		assert.Equal(t, "./data/articles", cfg.Store.Path)

		cfg = NewConfig(WithStore(DriverBadger, "/var/lib/gleaner"))
		assert.Equal(t, "/var/lib/gleaner", cfg.Store.Path)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"interval", func(c *Config) { c.FetchIntervalMinutes = 0 }, ErrInvalidInterval},
		{"timeout", func(c *Config) { c.FetchTimeout = 0 }, ErrInvalidTimeout},
		{"workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"listen", func(c *Config) { c.ListenAddr = "" }, ErrMissingListen},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
		{"driver", func(c *Config) { c.Store.Driver = "mongo" }, ErrInvalidDriver},
		{"tagger", func(c *Config) { c.Tagger = "spacy" }, ErrInvalidTagger},
		{"badger path", func(c *Config) { c.Store.Path = "" }, ErrMissingPath},
		{"postgres dsn", func(c *Config) { c.Store.Driver = DriverPostgres }, ErrMissingDSN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("memory needs no location", func(t *testing.T) {
		cfg := NewConfig(WithStore(DriverMemory, ""))
		cfg.Store.Path = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidateNormalizes(t *testing.T) {
	cfg := NewConfig(
		WithFeeds(" https://a.example.com/rss ", "", "  ", "not a url"),
		WithLogLevel(" WARN "),
		WithTagger(" Rules "),
		WithStore(" Memory ", ""),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"https://a.example.com/rss", "not a url"}, cfg.Feeds)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, TaggerRules, cfg.Tagger)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gleaner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
feeds:
  - https://a.example.com/rss
  - https://b.example.com/atom
fetch_interval_minutes: 30
fetch_timeout: 5s
store:
  driver: postgres
  dsn: postgres://localhost/news?sslmode=disable
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com/rss", "https://b.example.com/atom"}, cfg.Feeds)
	assert.Equal(t, 30, cfg.FetchIntervalMinutes)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":3000", cfg.ListenAddr, "unset fields keep defaults")
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/news?sslmode=disable", cfg.Store.DSN)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("feeds: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("fetch_interval_minutes: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gleaner.yaml")
	cfg := NewConfig(WithFeeds("https://a.example.com/rss"), WithFetchTimeout(90*time.Second))
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.example.com/rss", "https://b.example.com/rss"},
		SplitList(" https://a.example.com/rss,,https://b.example.com/rss , "))
	assert.Nil(t, SplitList(""))
}
