package pkg

import "fmt"

// AppError is the boundary error shape returned by HTTP handlers.
//
// Handlers map use case sentinel errors onto AppError values so that the
// transport layer controls the status code and the client-facing message,
// while the wrapped error (if any) stays server-side for logging.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []FieldError
}

// FieldError points a validation failure at a specific request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError is the JSON body sent to clients.
type HTTPError struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// NewValidationError builds a 400 AppError carrying field-level violations.
// The full list of violations is always reported together; there is no
// partial acceptance of a payload.
func NewValidationError(message string, details []FieldError, httpStatus int) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: httpStatus,
		Details:    details,
	}
}
