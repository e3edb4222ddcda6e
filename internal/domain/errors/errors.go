package errors

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidState       = errors.New("invalid state")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError reports malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

// Validation builds a ValidationError for field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StateError reports a lifecycle transition that is not permitted.
type StateError struct {
	From    string
	To      string
	Message string
}

// InvalidTransition builds a StateError for the from -> to transition.
func InvalidTransition(from, to, message string) *StateError {
	return &StateError{From: from, To: to, Message: message}
}

func (e *StateError) Error() string {
	return e.Message
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// ServiceUnavailableError is returned while order admission for a channel is paused.
type ServiceUnavailableError struct {
	Channel   string
	Reason    string
	Remaining time.Duration
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("%s orders are paused (%s), %s remaining", e.Channel, e.Reason, e.Remaining.Round(time.Second))
}

func (e *ServiceUnavailableError) Unwrap() error { return ErrServiceUnavailable }

// RemainingMinutes rounds the remaining pause up to whole minutes.
func (e *ServiceUnavailableError) RemainingMinutes() int {
	return int(math.Ceil(e.Remaining.Minutes()))
}
