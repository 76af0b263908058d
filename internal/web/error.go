package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
)

// maxErrorBodyBytes caps how much of an error response body ends up in the
// error message.
const maxErrorBodyBytes int64 = 2048

// ExternalAPIError describes a response with an unexpected status code from
// the card endpoint.
type ExternalAPIError struct {
	URL        string
	Message    string
	StatusCode int
}

// NewHTTPErr builds an ExternalAPIError from the given response, reading a
// bounded part of the body as message.
func NewHTTPErr(url string, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		body = []byte(fmt.Sprintf("failed to read response body due to %v", err))
	}

	return &ExternalAPIError{URL: url, StatusCode: resp.StatusCode, Message: string(body)}
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%d: %s (URL: %s)", e.StatusCode, strings.TrimSpace(e.Message), e.URL)
}

// Is matches any ExternalAPIError with the same status code, the url and
// message do not matter.
func (e *ExternalAPIError) Is(target error) bool {
	t, ok := target.(*ExternalAPIError)
	if !ok {
		return false
	}

	return e.StatusCode == t.StatusCode
}

// IsStatusCode reports whether err is an ExternalAPIError carrying one of
// the given status codes.
func IsStatusCode(err error, statusCode ...int) bool {
	if len(statusCode) == 0 {
		return false
	}

	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		return slices.Contains(statusCode, apiErr.StatusCode)
	}

	return false
}
