package domain

import (
	"errors"
	"fmt"
)

var errNoHotelsFound error = errors.New("No hotels found for this city.")

func ErrNoHotelsFound() error {
	return errNoHotelsFound
}

// BadRequestError marks input the caller can fix.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// UpstreamError carries the status and message the provider responded with.
// StatusCode is zero when the call never produced a response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream responded with %d: %s", e.StatusCode, e.Message)
}

// DeliveryError wraps a failed notification send.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send booking emails: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
