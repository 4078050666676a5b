package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
)

// maxErrorBody caps the API error text carried in APIError.
const maxErrorBody = 200

// APIError is a non-2xx answer from the GitHub API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &APIError{StatusCode: statusOf(rateErr.Response), Body: truncate(rateErr.Message)}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &APIError{StatusCode: statusOf(abuseErr.Response), Body: truncate(abuseErr.Message)}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		body, mErr := json.Marshal(respErr)
		if mErr != nil {
			body = []byte(respErr.Message)
		}
		return &APIError{StatusCode: statusOf(respErr.Response), Body: truncate(string(body))}
	}

	return err
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxErrorBody {
		return s
	}
	return string(r[:maxErrorBody])
}
