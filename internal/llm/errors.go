package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// TransportErrorKind distinguishes provider failures the caller may want to
// react to differently.
type TransportErrorKind string

// Transport error kinds.
const (
	// TransportKindAuth covers invalid or rejected credentials.
	TransportKindAuth TransportErrorKind = "auth"
	// TransportKindRateLimit covers provider rate-limit rejections.
	TransportKindRateLimit TransportErrorKind = "rate_limit"
	// TransportKindTimeout covers call deadline expiry.
	TransportKindTimeout TransportErrorKind = "timeout"
	// TransportKindAPI covers every other network or API failure.
	TransportKindAPI TransportErrorKind = "api"
)

// TransportError represents a failed call to the model endpoint
type TransportError struct {
	Kind    TransportErrorKind
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error (%s): %s", e.Kind, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the endpoint answered without usable content
type EmptyResponseError struct {
	Model string
}

func (e *EmptyResponseError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("empty response from model %s", e.Model)
	}
	return "empty response from model"
}

// UnexpectedToolCallError indicates the model responded with a structured
// call other than the one it was forced to use.
type UnexpectedToolCallError struct {
	Got  string
	Want string
}

func (e *UnexpectedToolCallError) Error() string {
	return fmt.Sprintf("model invoked unexpected tool %q (want %q)", e.Got, e.Want)
}

// IsAuthError reports whether err is an authentication-kind transport failure.
func IsAuthError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Kind == TransportKindAuth
}

// IsRateLimitError reports whether err is a rate-limit-kind transport failure.
func IsRateLimitError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Kind == TransportKindRateLimit
}

// classifyStatus maps an HTTP status code to a transport error kind.
func classifyStatus(status int) TransportErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return TransportKindAuth
	case http.StatusTooManyRequests:
		return TransportKindRateLimit
	default:
		return TransportKindAPI
	}
}

// timeoutError builds the transport error for an expired call deadline.
func timeoutError(model string, cause error) *TransportError {
	return &TransportError{
		Kind:    TransportKindTimeout,
		Message: fmt.Sprintf("model call to %s exceeded its deadline", model),
		Cause:   cause,
	}
}

// isDeadline reports whether err stems from context deadline expiry.
func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
