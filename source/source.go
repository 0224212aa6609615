// Package source downloads show pages from the episode source site.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Fetcher downloads the page of one show.
type Fetcher interface {
	// URL returns the address the page of id is fetched from.
	URL(id string) string

	// Fetch returns the raw markup of the page of id. Errors are *FetchError.
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// FetchError reports a page that could not be downloaded.
// Status is zero when no response was received.
type FetchError struct {
	ID     string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %d %s", e.URL, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the request may succeed.
func (e *FetchError) Temporary() bool {
	if e.Status == 0 {
		return !errors.Is(e.Err, context.Canceled) && !errors.Is(e.Err, context.DeadlineExceeded)
	}
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}
