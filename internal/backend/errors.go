package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches any *Error caused by an HTTP 404 from the API.
	ErrNotFound = errors.New("resource not found")
	// ErrBackend matches every *Error returned by this package.
	ErrBackend = errors.New("backend request failed")
)

// Kind classifies why a backend call failed.
type Kind int

const (
	KindTransport Kind = iota + 1 // request never produced a response
	KindStatus                    // response had a non-2xx status
	KindDecode                    // response body was not the expected JSON
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error describes a failed call to the API.
type Error struct {
	Op         string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrBackend:
		return true
	case ErrNotFound:
		return e.Kind == KindStatus && e.StatusCode == http.StatusNotFound
	}
	return false
}

// outcome is the metrics label for err.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Kind.String()
	}
	return "unknown"
}
