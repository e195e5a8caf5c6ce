package advocacy

import "fmt"

// ConfigurationError reports a missing or invalid construction parameter.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("advocacy: configuration: %s %s", e.Field, e.Reason)
}

// UnsupportedVerbError is returned for any verb other than GET, POST, PUT
// and DELETE.
type UnsupportedVerbError struct {
	Verb string
}

func (e *UnsupportedVerbError) Error() string {
	return fmt.Sprintf("advocacy: unsupported HTTP verb %q", e.Verb)
}

// UnknownEndpointError is returned when a (verb, path) pair is not in the
// endpoint table.
type UnknownEndpointError struct {
	Verb string
	Path string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("advocacy: unknown endpoint %s %s", e.Verb, e.Path)
}

// TransportError wraps a network or timeout failure.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("advocacy: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means the response body was empty, JSON null, or
// not JSON at all.
type MalformedResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("advocacy: malformed response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("advocacy: did not receive a JSON response (status %d)", e.StatusCode)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
