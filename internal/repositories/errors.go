package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCity      = errors.New("city name cannot be empty")
	ErrInvalidAPIKey    = errors.New("invalid API key")
	ErrLocationNotFound = errors.New("location not found")
	ErrTransport        = errors.New("transport error")
	ErrParse            = errors.New("parse error")
)

// LocationNotFoundError is returned when the provider does not know the queried city.
type LocationNotFoundError struct {
	City string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location not found: %q", e.City)
}

func (e *LocationNotFoundError) Is(target error) bool {
	return target == ErrLocationNotFound
}

// TransportError covers everything between sending the request and holding a 2xx body.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("transport error: %s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("transport error: %s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ParseError is returned when the body does not have the expected shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
