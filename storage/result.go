package storage

import (
	"fmt"
	"strings"
)

// ItemError records why one article in a bulk write was not written.
type ItemError struct {
	Index int    `json:"index"`
	GUID  string `json:"guid"`
	Err   error  `json:"-"`
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("article %d (%s): %v", e.Index, e.GUID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// BulkResult summarises an unordered bulk upsert. Counts are best-effort:
// an article counted as failed may still have been written if the failure
// happened after commit.
type BulkResult struct {
	Inserted int          `json:"inserted"`
	Replaced int          `json:"replaced"`
	Failed   int          `json:"failed"`
	Errors   []*ItemError `json:"errors,omitempty"`
}

// Written returns the number of articles inserted or replaced.
func (r *BulkResult) Written() int {
	if r == nil {
		return 0
	}
	return r.Inserted + r.Replaced
}

// Fail records a failed article.
func (r *BulkResult) Fail(index int, guid string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, &ItemError{Index: index, GUID: guid, Err: err})
}

// Err returns nil when every article was written, otherwise a *BulkWriteError.
func (r *BulkResult) Err() error {
	if r == nil || r.Failed == 0 {
		return nil
	}
	return &BulkWriteError{Result: r}
}

// BulkWriteError is returned by Upsert when at least one article failed.
// It matches ErrBulkWriteFailed and every item error with errors.Is.
type BulkWriteError struct {
	Result *BulkResult
}

func (e *BulkWriteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d of %d articles not written", ErrBulkWriteFailed, e.Result.Failed, e.Result.Failed+e.Result.Written())
	if len(e.Result.Errors) > 0 {
		fmt.Fprintf(&b, ", first: %v", e.Result.Errors[0])
	}
	return b.String()
}

func (e *BulkWriteError) Unwrap() []error {
	errs := make([]error, 0, len(e.Result.Errors)+1)
	errs = append(errs, ErrBulkWriteFailed)
	for _, ie := range e.Result.Errors {
		errs = append(errs, ie)
	}
	return errs
}
