package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingEnv       = errors.New("required environment variable is missing")
	ErrResponseDecoding = errors.New("practicum response is not valid json")
)

func MissingEnv(names ...string) error {
	return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(names, ", "))
}

// TransportError means the request never got an HTTP answer.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint %s is unavailable: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type InvalidResponseError struct {
	StatusCode int
	Detail     string
}

func (e *InvalidResponseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unexpected response status code %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected response status code %d: %s", e.StatusCode, e.Detail)
}

type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "unexpected response shape: " + e.Reason
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework has no %q field", e.Field)
}

type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("message to %s is not delivered: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
