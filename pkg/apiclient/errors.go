package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel error kinds mapped from response status codes. Service
// packages translate these into their own domain errors where the
// endpoint gives them more context (e.g. 404 on /roles/{id} becomes
// ErrRoleNotFound).
var (
	ErrBadRequest   = errors.New("apiclient: bad request")
	ErrUnauthorized = errors.New("apiclient: unauthorized")
	ErrForbidden    = errors.New("apiclient: forbidden")
	ErrNotFound     = errors.New("apiclient: not found")
	ErrConflict     = errors.New("apiclient: conflict")
	ErrRateLimited  = errors.New("apiclient: rate limited")
	ErrServer       = errors.New("apiclient: server error")
)

// APIError is the decoded failure response of a platform endpoint.
// It unwraps to the sentinel kind matching its status code, so both
// errors.Is(err, apiclient.ErrNotFound) and errors.As(err, *APIError)
// work on the same value.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// errorBody is the error envelope platform services respond with.
type errorBody struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	Description string `json:"error_description"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			apiErr.Code = body.Error
			apiErr.Message = body.Message
			if apiErr.Message == "" {
				apiErr.Message = body.Description
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("platform api: %d: %s", e.Status, e.Message)
}

// Unwrap maps the status code onto the matching sentinel kind.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest:
		return ErrBadRequest
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.Status >= http.StatusInternalServerError:
		return ErrServer
	default:
		return nil
	}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
