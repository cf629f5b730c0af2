package github

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// APIError is the single error type surfaced by search operations. Status
// and StatusText are set when the API answered with a non-success status;
// transport failures carry only a message.
type APIError struct {
	Message    string
	Status     int
	StatusText string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// ErrEmptyQuery is returned for blank queries before any request is made.
var ErrEmptyQuery = &APIError{Message: "Search query cannot be empty"}

// translateError maps a go-github error onto *APIError. what names the
// resource in the message, e.g. "repositories". Non-success statuses and
// transport failures become *APIError; anything else, such as an
// undecodable body, is wrapped as is.
func translateError(what string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if resp := errorResponse(err); resp != nil {
		text := statusText(resp)
		return &APIError{
			Message:    fmt.Sprintf("Failed to fetch %s: %d %s", what, resp.StatusCode, text),
			Status:     resp.StatusCode,
			StatusText: text,
			Err:        err,
		}
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &APIError{Message: err.Error(), Err: err}
	}
	return fmt.Errorf("fetching %s: %w", what, err)
}

func errorResponse(err error) *http.Response {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		return errResp.Response
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr.Response
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return abuseErr.Response
	}
	return nil
}

func statusText(resp *http.Response) string {
	if text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
