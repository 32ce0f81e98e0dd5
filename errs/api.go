package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var Unauthorized = NewUnauthorizedError("Not authorized, no token")

// ApiErr pairs an error with the HTTP status code it should be reported
// with. Every handler failure is converted into one of these before it
// reaches the response writer; the message field of the JSON error body
// is Error().
type ApiErr struct {
	StatusCode int
	err        error
	Cause      error // underlying cause, kept for logging
}

// implements error interface. this allows us to pass an instance of ApiErr
// as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// GetFullError returns the error message including its cause chain.
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// Common error constructors with appropriate HTTP status codes. The message
// is rendered verbatim in the response body.

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewForbiddenError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusForbidden, err: errors.New(message)}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}
