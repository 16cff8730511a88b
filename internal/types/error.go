package types

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	FetchFailure         ErrorCode = "FETCH_FAILURE"
	RateLimited          ErrorCode = "RATE_LIMITED"
	ServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
	RequestCancelled     ErrorCode = "REQUEST_CANCELLED"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error is the error type returned across service and client boundaries.
// StatusCode is the http status the api layer responds with.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		Err:        errors.New(msg),
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}

func NewValidationFailedError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
	}
}

// NewFetchFailure wraps an upstream call that returned a non-success status
// or a body that could not be decoded.
func NewFetchFailure(source string, err error) *Error {
	return &Error{
		Err:        fmt.Errorf("failed to fetch %s: %w", source, err),
		StatusCode: http.StatusBadGateway,
		ErrorCode:  FetchFailure,
	}
}

// NewContextError reports a request abandoned by its caller or cut by its
// deadline. A deadline maps to 504, a cancellation to 503.
func NewContextError(err error) *Error {
	status := http.StatusServiceUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	return &Error{
		Err:        err,
		StatusCode: status,
		ErrorCode:  RequestCancelled,
	}
}

// IsContextError reports whether err comes from a cancelled or expired
// context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsFetchFailure reports whether err carries a FETCH_FAILURE code.
func IsFetchFailure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.ErrorCode == FetchFailure
}

// InvalidParameterError is returned by derivations that receive a structurally
// invalid input, for example a non-numeric saturation point.
type InvalidParameterError struct {
	Param   string
	Value   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Param, e.Value, e.Message)
}

func NewInvalidParameterError(param, value, msg string) *InvalidParameterError {
	return &InvalidParameterError{
		Param:   param,
		Value:   value,
		Message: msg,
	}
}

func IsInvalidParameterError(err error) bool {
	var e *InvalidParameterError
	return errors.As(err, &e)
}
