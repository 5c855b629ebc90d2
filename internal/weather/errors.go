package weather

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-checkable category of a failed lookup.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindAuth       ErrorKind = "auth_error"
	KindNotFound   ErrorKind = "not_found"
	KindRateLimit  ErrorKind = "rate_limited"
	KindTimeout    ErrorKind = "timeout"
	KindUpstream   ErrorKind = "upstream_error"
)

// Error is the structured failure returned by every weather operation.
// It serialises as-is into tool results. StatusCode is the provider's HTTP
// status when one was received.
type Error struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Hint       string    `json:"hint"`
	Suggestion string    `json:"suggestion,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Err        error     `json:"-"`
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return ""
}

// AsError converts any error into a structured *Error. Errors that are not
// already structured become upstream errors.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var werr *Error
	if errors.As(err, &werr) {
		return werr
	}
	return &Error{
		Kind:    KindUpstream,
		Message: "unexpected error while fetching weather data",
		Hint:    "Try again in a few minutes.",
		Err:     err,
	}
}

func validationError(format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
		Hint:    "Fix the request arguments and try again.",
	}
}

func notConfiguredError() *Error {
	return &Error{
		Kind:    KindAuth,
		Message: "API key not configured",
		Hint:    "Set the API_KEY environment variable to an OpenWeatherMap API key.",
	}
}

func invalidKeyError() *Error {
	return &Error{
		Kind:       KindAuth,
		Message:    "invalid or unconfigured API key",
		Hint:       "Verify the API key; new keys can take up to 10 minutes to activate.",
		StatusCode: 401,
	}
}

func notFoundError(location string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("location not recognized: %q", location),
		Hint:       "Check the spelling of the city name and try again.",
		Suggestion: "Try including the ISO country code, e.g. London,GB.",
		StatusCode: 404,
	}
}

func rateLimitError(status int, err error) *Error {
	return &Error{
		Kind:       KindRateLimit,
		Message:    "API rate limit exceeded",
		Hint:       "Wait before making more requests; the free tier allows 60 calls per minute.",
		StatusCode: status,
		Err:        err,
	}
}

func timeoutError(err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "weather API request timed out",
		Hint:    "Check connectivity or raise REQUEST_TIMEOUT_SECONDS, then try again.",
		Err:     err,
	}
}

func upstreamError(status int, err error) *Error {
	msg := "weather API request failed"
	if status != 0 {
		msg = fmt.Sprintf("weather API returned status code %d", status)
	}
	return &Error{
		Kind:       KindUpstream,
		Message:    msg,
		Hint:       "Check the provider's service status and try again in a few minutes.",
		StatusCode: status,
		Err:        err,
	}
}
