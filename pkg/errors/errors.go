package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error codes
const (
	ErrCodeLoadError       = "LOAD_ERROR"
	ErrCodeEmptyBank       = "EMPTY_BANK"
	ErrCodeUnknownQuestion = "UNKNOWN_QUESTION"
	ErrCodeNoSession       = "NO_SESSION"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)
