package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/mmcdole/gofeed"

	"github.com/poiesic/gleaner/core"
)

var (
	ErrInvalidURL         = errors.New("invalid feed url")
	ErrNetworkUnreachable = errors.New("feed network unreachable")
	ErrTimeout            = errors.New("feed request timed out")
	ErrFetchFailed        = errors.New("feed fetch failed")
)

// Kind classifies a fetch failure.
type Kind int

const (
	FetchFailed Kind = iota
	InvalidURL
	NetworkUnreachable
	Timeout
)

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "InvalidUrl"
	case NetworkUnreachable:
		return "NetworkUnreachable"
	case Timeout:
		return "Timeout"
	default:
		return "FetchFailed"
	}
}

// MarshalText renders the kind by name in JSON and logs.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidURL:
		return ErrInvalidURL
	case NetworkUnreachable:
		return ErrNetworkUnreachable
	case Timeout:
		return ErrTimeout
	default:
		return ErrFetchFailed
	}
}

// FetchError is the failure of one source.
type FetchError struct {
	URL  string
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.URL)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *FetchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Classify maps err, returned while fetching url, onto a FetchError.
// The most specific kind wins: InvalidURL, then NetworkUnreachable,
// then Timeout, then FetchFailed. Classify returns nil for a nil err
// and returns err unchanged when it already is a *FetchError with a cause.
// A *FetchError without a cause gets its kind's sentinel as Err.
func Classify(url string, err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		switch {
		case fe == nil:
			return &FetchError{URL: url, Kind: FetchFailed, Err: ErrFetchFailed}
		case fe.Err == nil:
			return &FetchError{URL: fe.URL, Kind: fe.Kind, Err: fe.Kind.sentinel()}
		}
		return fe
	}
	kind := FetchFailed
	switch {
	case !core.IsValidSourceURL(url):
		kind = InvalidURL
	case isUnreachable(err):
		kind = NetworkUnreachable
	case isTimeout(err):
		kind = Timeout
	}
	return &FetchError{URL: url, Kind: kind, Err: err}
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return !dnsErr.IsTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return !opErr.Timeout()
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// statusCode returns the HTTP status carried by err, or 0.
func statusCode(err error) int {
	var httpErr gofeed.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
