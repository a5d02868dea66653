package irp

import "fmt"

// AuthError indicates the gateway refused our credentials during a token
// exchange
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("irp authentication failed: %s", e.Message)
	}
	return "irp authentication failed"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RejectedError indicates the gateway understood the request and refused it.
// Code and Source are populated when the gateway includes them in the error
// body.
type RejectedError struct {
	Message string
	Code    string
	Source  string
}

func (e *RejectedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("irp rejected request [%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("irp rejected request: %s", e.Message)
}

// UnavailableError indicates we could not get a meaningful answer from the
// gateway: network failure, timeout, or an unparseable error response
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("irp unavailable: %s", e.Message)
	}
	return "irp unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
