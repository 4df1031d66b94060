package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound matches failures caused by a 404 from the catalog service.
	ErrNotFound = errors.New("not found")
	// ErrMethodNotAllowed matches failures caused by a 405 from the catalog service.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrRemote matches any other unexpected status from the catalog service.
	ErrRemote = errors.New("remote error")
	// ErrDecode matches responses whose body could not be decoded.
	ErrDecode = errors.New("decode error")
	// ErrInvalidArgument is returned before any request is sent.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StatusError represents an unexpected HTTP status returned by the catalog service.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

// Code returns the HTTP status code
func (e *StatusError) Code() int {
	return e.StatusCode
}

// Error implements error
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status code %d", e.Method, e.Path, e.StatusCode)
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		msg += ": " + body
	}
	return msg
}

// Is lets errors.Is tell not found and method not allowed apart from other
// remote failures.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrMethodNotAllowed:
		return e.StatusCode == http.StatusMethodNotAllowed
	case ErrRemote:
		return e.StatusCode != http.StatusNotFound && e.StatusCode != http.StatusMethodNotAllowed
	}
	return false
}

// TransportError wraps failures to complete a round trip, including
// cancellation and timeouts.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a response body that does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to parse response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// IsNotFound reports whether err was caused by a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
