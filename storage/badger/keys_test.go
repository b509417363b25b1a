package badger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticleDateKey_Ordering(t *testing.T) {
	times := []time.Time{
		time.Date(1965, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 1000, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i := 1; i < len(times); i++ {
		prev := makeArticleDateKey(times[i-1], "zzz")
		next := makeArticleDateKey(times[i], "aaa")
		assert.Negative(t, bytes.Compare(prev, next), "%v should sort before %v", times[i-1], times[i])
	}
}

func TestArticleDateKey_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	key := makeArticleDateKey(ts, "urn:guid:1")

	assert.Equal(t, "urn:guid:1", guidFromIndexKey(key, articleDatePrefix))
	assert.Equal(t, sortableMicros(ts), pubDateFromIndexKey(key))
	assert.True(t, bytes.HasPrefix(key, makePartialArticleDateKey(ts)))
}

func TestDateKeyUpperBound(t *testing.T) {
	ts := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	bound := dateKeyUpperBound(ts)

	assert.Positive(t, bytes.Compare(bound, makeArticleDateKey(ts, "any-guid")))
	assert.Negative(t, bytes.Compare(bound, makeArticleDateKey(ts.Add(time.Microsecond), "")))

	all := dateKeyUpperBound(time.Time{})
	assert.Positive(t, bytes.Compare(all, makeArticleDateKey(time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC), "g")))
}

func TestTermKey(t *testing.T) {
	a := makeTermKey(articleTopicPrefix, "sports", "g1")
	b := makeTermKey(articleTopicPrefix, "sports", "g2")
	c := makeTermKey(articleEntityPrefix, "sports", "g1")

	partial := makePartialTermKey(articleTopicPrefix, "sports")
	assert.True(t, bytes.HasPrefix(a, partial))
	assert.True(t, bytes.HasPrefix(b, partial))
	assert.False(t, bytes.HasPrefix(c, partial))
	assert.Equal(t, "g2", guidFromIndexKey(b, articleTopicPrefix))
}
