package newsapi

import "fmt"

// TransportError is returned when the request to the API failed,
// either on the network level or with a non-successful response.
type TransportError struct {
	StatusCode int    // zero if the response was not received
	Code       string // error code reported by the API, if any
	Message    string // error message reported by the API, if any
	Err        error
}

// Error implements error interface.
func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("request newsapi: %v", e.Err)
	case e.Code != "" || e.Message != "":
		return fmt.Sprintf("newsapi responded with status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("newsapi responded with status %d", e.StatusCode)
	}
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is returned when the response body doesn't match
// the expected document shape.
type ParseError struct {
	Reason string
	Err    error
}

// Error implements error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse response: %s", e.Reason)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }
