package upstream

import (
	"bytes"
	"fmt"
	"net/http"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
)

// errTransient marks failures worth retrying and counting against the breaker.
var errTransient = crerr.New("upstream transient failure")

// ErrResponseTooLarge is returned when a body exceeds the read limit.
var ErrResponseTooLarge = crerr.New("upstream response too large")

// ProviderError is returned for any non-2xx upstream response.
type ProviderError struct {
	API        string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s responded status=%d body=%s", e.API, e.StatusCode, e.Body)
}

// AsProviderError unwraps err into a *ProviderError when one is present.
func AsProviderError(err error) (*ProviderError, bool) {
	var target *ProviderError
	if crerr.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsNotFound reports whether the provider said the resource does not exist.
func IsNotFound(err error) bool {
	perr, ok := AsProviderError(err)
	return ok && perr.StatusCode == http.StatusNotFound
}

// IsTransient reports whether err is a retryable transport or 5xx/429 failure.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

// NewProviderError builds the error for a non-2xx response, marking it
// transient for retryable statuses.
func NewProviderError(api string, status int, body []byte) error {
	perr := &ProviderError{API: api, StatusCode: status, Body: abbreviateBody(bytes.TrimSpace(body))}
	if isRetryableStatus(status) {
		return Transient(perr)
	}
	return perr
}

// Transient marks err as retryable.
func Transient(err error) error {
	return crerr.Mark(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	const limit = 240
	text := string(body)
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
