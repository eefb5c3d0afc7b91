package article

import (
	"fmt"
	"strings"
)

// APICallError represents a failed model invocation during article generation
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a response payload that could not be interpreted as
// an article record. Raw carries the original payload so callers can print it
// for diagnosis.
type ParseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a structurally parsed article that failed the
// acceptance policy: required fields absent, or realized word count below the
// acceptance floor. The two cases never occur together; field presence is
// checked first.
type ValidationError struct {
	MissingFields []string
	TooShort      bool
	Requested     int
	Realized      int
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("validation error: missing required fields: %s", strings.Join(e.MissingFields, ", "))
	}
	if e.TooShort {
		return fmt.Sprintf("validation error: article too short: %d words realized, %d requested", e.Realized, e.Requested)
	}
	return "validation error"
}
