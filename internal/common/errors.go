package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies pipeline failures. The retryable split drives the
// batch orchestrator's retry policy; it is a first-class value, not an
// exception hierarchy.
type ErrorKind string

const (
	KindFileNotFound        ErrorKind = "FILE_NOT_FOUND"
	KindFileTooLarge        ErrorKind = "FILE_TOO_LARGE"
	KindUnsupportedMime     ErrorKind = "UNSUPPORTED_MIME"
	KindMissingCredentials  ErrorKind = "MISSING_CREDENTIALS"
	KindRateLimited         ErrorKind = "RATE_LIMITED"
	KindUpstreamUnavailable ErrorKind = "UPSTREAM_UNAVAILABLE"
	KindResponseInvalid     ErrorKind = "RESPONSE_INVALID"
	KindInternal            ErrorKind = "INTERNAL"
)

// AppError represents application-specific errors with a retryable flag.
type AppError struct {
	Kind      ErrorKind
	Message   string
	Retryable bool
	Cause     error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error constructors per kind. Retryability is fixed by the taxonomy.

func FileNotFoundError(message string, cause error) *AppError {
	return &AppError{Kind: KindFileNotFound, Message: message, Cause: cause}
}

func FileTooLargeError(message string) *AppError {
	return &AppError{Kind: KindFileTooLarge, Message: message}
}

func UnsupportedMimeError(mime string) *AppError {
	return &AppError{Kind: KindUnsupportedMime, Message: "unsupported mime type: " + mime}
}

func MissingCredentialsError(provider string) *AppError {
	return &AppError{Kind: KindMissingCredentials, Message: "missing credentials for provider: " + provider}
}

func RateLimitedError(message string, cause error) *AppError {
	return &AppError{Kind: KindRateLimited, Message: message, Retryable: true, Cause: cause}
}

func UpstreamUnavailableError(message string, cause error) *AppError {
	return &AppError{Kind: KindUpstreamUnavailable, Message: message, Retryable: true, Cause: cause}
}

func ResponseInvalidError(message string, cause error) *AppError {
	return &AppError{Kind: KindResponseInvalid, Message: message, Cause: cause}
}

func InternalError(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Cause: cause}
}

// IsRetryable reports whether err (anywhere in its chain) carries a
// retryable AppError. Unknown errors are not retried.
func IsRetryable(err error) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Retryable
	}
	return false
}

// KindOf extracts the error kind, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers for the daemon surface.

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
