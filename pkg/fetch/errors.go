package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed fetch so callers can branch on structure
// instead of parsing error strings.
type Kind int

const (
	// KindRateLimited means the upstream answered 429. Never retried.
	KindRateLimited Kind = iota
	// KindTimeout means a single attempt exceeded its wall-clock budget.
	// Terminal for the call, never retried.
	KindTimeout
	// KindServer means the upstream kept answering 5xx until the retry
	// budget ran out.
	KindServer
	// KindClient means any other non-2xx status (404, 400, ...).
	KindClient
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	case KindServer:
		return "server_error"
	case KindClient:
		return "client_error"
	default:
		return "unknown"
	}
}

// Error is the typed failure surfaced by the fetch policy. It always
// carries the originating URL, and the HTTP status when one was received.
// Transport-level failures below the HTTP layer are not wrapped in Error;
// they pass through as the *url.Error the net/http client produced.
type Error struct {
	Kind   Kind
	Status int
	URL    string
	cause  error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch: %s (%d) from %s", e.Kind, e.Status, e.URL)
	}
	return fmt.Sprintf("fetch: %s from %s", e.Kind, e.URL)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf reports the Kind of err and whether err is a fetch policy error.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a client error with status 404.
// Tool handlers use this to turn "no such resource" into an empty result.
func IsNotFound(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Status == http.StatusNotFound
}

// IsRateLimited reports whether err was caused by an upstream 429.
func IsRateLimited(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindRateLimited
}

// IsTimeout reports whether err was caused by an attempt timeout.
func IsTimeout(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTimeout
}
