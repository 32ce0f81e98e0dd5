package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingRequiredField = errors.New("missing required field")

// NewValidationError reports a required field rejected by the persistence
// layer. Repos raise these on insert so that handlers surface them as a
// client error, the same way the store's own schema validation would.
func NewValidationError(entity, field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s validation failed: %s is required", entity, field),
		Cause:      ErrMissingRequiredField,
	}
}

// IsValidationError reports whether err is a persistence-layer required
// field failure.
func IsValidationError(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return errors.Is(apiErr.Cause, ErrMissingRequiredField)
	}
	return false
}

// NewDatabaseError wraps a failed query with the operation and entity it
// was serving. Validation errors raised by repos pass through with their
// own status; every other failure, connectivity included, is a server
// error whose message is the underlying error text.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	message := fmt.Sprintf("failed to %s %s", operation, entity)
	if cause != nil {
		message = cause.Error()
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}
