package domain

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNetworkOrStatus marks transport failures and non-2xx responses.
	ErrNetworkOrStatus = errors.New("backend request failed")
	// ErrEmptyOrUnparseable marks bodies that are absent or not usable JSON.
	ErrEmptyOrUnparseable = errors.New("empty or unparseable response")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrHealthCheck        = errors.New("health check failed")
)

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bad status %d", e.Status)
	}
	return fmt.Sprintf("bad status %d: %s", e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrNetworkOrStatus }

// NewStatusError builds a StatusError marked as ErrNetworkOrStatus.
func NewStatusError(status int, body string) error {
	return &StatusError{Status: status, Body: body}
}

// NetworkError wraps a transport failure so errors.Is(err, ErrNetworkOrStatus) holds.
func NetworkError(err error, op string) error {
	return errors.Mark(errors.Wrapf(err, "%s", op), ErrNetworkOrStatus)
}

// Unparseable wraps a decode failure (or nil for an empty body).
func Unparseable(err error, op string) error {
	if err == nil {
		return errors.Mark(errors.Newf("%s: empty response", op), ErrEmptyOrUnparseable)
	}
	return errors.Mark(errors.Wrapf(err, "%s: decode", op), ErrEmptyOrUnparseable)
}

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string        { return "Hotel not found" }
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFound(id string) error { return &NotFoundError{ID: id} }

// ValidationError is a booking form check that failed locally. Message is user facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// HealthCheckError carries the probe status; 0 means the request never got a response.
type HealthCheckError struct {
	Status int
	Cause  error
}

func (e *HealthCheckError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("Health check failed: %v", e.Cause)
	}
	return fmt.Sprintf("Health check failed (%d)", e.Status)
}

func (e *HealthCheckError) Unwrap() error        { return e.Cause }
func (e *HealthCheckError) Is(target error) bool { return target == ErrHealthCheck }
