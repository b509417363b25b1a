package badger

import (
	"encoding/binary"
	"time"

	"github.com/poiesic/gleaner/core"
)

// Key prefixes for different data types
const (
	articlePrefix       = "article"
	articleDatePrefix   = "artdate"
	articleTopicPrefix  = "arttopic"
	articleEntityPrefix = "artentity"
)

// sortableMicros maps a timestamp onto an unsigned value whose big-endian
// encoding sorts in time order, including times before 1970.
func sortableMicros(t time.Time) uint64 {
	return uint64(t.UnixMicro()) ^ (1 << 63)
}

// makeArticleKey generates the primary key for an article.
// Format: prefix:guid
func makeArticleKey(guid string) []byte {
	return []byte(articlePrefix + ":" + guid)
}

// makeArticleDateKey generates a composite key for the publication date index.
// Format: prefix:timestamp:guid
func makeArticleDateKey(pubDate time.Time, guid string) []byte {
	buf := makePartialArticleDateKey(pubDate)
	return append(buf, guid...)
}

// makePartialArticleDateKey generates a partial key for date range scans.
// Format: prefix:timestamp
func makePartialArticleDateKey(pubDate time.Time) []byte {
	prefix := articleDatePrefix + ":"
	buf := make([]byte, len(prefix)+8, len(prefix)+8+64)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], sortableMicros(pubDate))
	return buf
}

// dateKeyUpperBound returns a key that sorts after every date index key at
// or before pubDate. A zero pubDate bounds the whole index.
func dateKeyUpperBound(pubDate time.Time) []byte {
	prefix := articleDatePrefix + ":"
	if pubDate.IsZero() {
		buf := []byte(prefix)
		for range 9 {
			buf = append(buf, 0xFF)
		}
		return buf
	}
	// UTF-8 never contains 0xFF, so this follows every guid.
	return append(makePartialArticleDateKey(pubDate), 0xFF)
}

// makeTermKey generates a composite key for the topic or entity index.
// Terms are hashed so keys have a fixed-width term component.
// Format: prefix:termID:guid
func makeTermKey(prefix, term, guid string) []byte {
	return append(makePartialTermKey(prefix, term), guid...)
}

// makePartialTermKey generates a partial key for term lookups.
// Format: prefix:termID
func makePartialTermKey(prefix, term string) []byte {
	p := prefix + ":"
	buf := make([]byte, len(p)+8, len(p)+8+64)
	offset := copy(buf, p)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(term)))
	return buf
}

// guidFromIndexKey extracts the guid suffix from a date or term index key.
func guidFromIndexKey(key []byte, prefix string) string {
	return string(key[len(prefix)+1+8:])
}

// pubDateFromIndexKey extracts the sortable timestamp from a date index key.
func pubDateFromIndexKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(articleDatePrefix)+1:])
}
