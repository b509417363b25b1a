package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/gleaner/storage"
)

const dateLayout = "2006-01-02"

// Params holds raw search parameters.
type Params struct {
	Title     string
	StartDate string
	EndDate   string
	Topics    string // comma separated
	Entities  string // comma separated
	Page      string
	Limit     string
}

// ParamsFromValues reads Params from URL query values.
func ParamsFromValues(v url.Values) Params {
	return Params{
		Title:     v.Get("title"),
		StartDate: v.Get("startDate"),
		EndDate:   v.Get("endDate"),
		Topics:    v.Get("topics"),
		Entities:  v.Get("entities"),
		Page:      v.Get("page"),
		Limit:     v.Get("limit"),
	}
}

// Query converts the parameters into a normalized storage query.
func (p Params) Query() (storage.Query, error) {
	start, err := parseDate("startDate", p.StartDate, false)
	if err != nil {
		return storage.Query{}, err
	}
	end, err := parseDate("endDate", p.EndDate, true)
	if err != nil {
		return storage.Query{}, err
	}

	q := storage.Query{
		Filter: storage.Filter{
			Title:    strings.TrimSpace(p.Title),
			Start:    start,
			End:      end,
			Topics:   splitList(p.Topics),
			Entities: splitList(p.Entities),
		},
		Page:  parsePositive(p.Page),
		Limit: parsePositive(p.Limit),
	}
	return q.Normalize(), nil
}

// parseDate parses a date bound. An empty value is unbounded. A calendar
// date used as an end bound is extended to the last instant of that day.
func parseDate(name, value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a date", ErrInvalidQueryParameter, name, value)
	}
	return t, nil
}

// splitList splits a comma separated list, dropping blank items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parsePositive returns the integer value of s, or 0 when s is not a
// positive integer. Query.Normalize replaces 0 with the default.
func parsePositive(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
