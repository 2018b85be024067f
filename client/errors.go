package client

import (
	"errors"
	"fmt"

	"github.com/famomatic/ytsearch/internal/innertube"
	"github.com/famomatic/ytsearch/internal/results"
)

var (
	// ErrNoMoreResults indicates GetNextResults was called with nothing
	// left to fetch: either the last page was reached or no fetch has
	// happened yet.
	ErrNoMoreResults = errors.New("no more search results")
	// ErrMalformedResponse indicates the expected results envelope could
	// not be located in an API response.
	ErrMalformedResponse = errors.New("malformed search response")
)

// RequestFailedError reports a non-200 status from the search endpoint.
type RequestFailedError struct {
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("search request failed: status=%d", e.StatusCode)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, results.ErrMalformedEnvelope) {
		return fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	var statusErr *innertube.HTTPStatusError
	if errors.As(err, &statusErr) {
		return &RequestFailedError{StatusCode: statusErr.StatusCode}
	}
	return err
}
