// Package errors provides standardized error handling for folio.
// It defines the three recoverable error kinds the editor surfaces as
// status messages, plus helpers for consistent creation and wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds. Everything except Unknown is recovered at the mode
// controller boundary and shown as a status message.
const (
	Unknown ErrorKind = iota
	// PageIO: a page file is missing, unreadable, or unwritable
	PageIO
	// ParsePageID: a page id token is not numeric
	ParsePageID
	// BadPattern: a search pattern failed to compile
	BadPattern
)

// ApplicationError is the base error type for all folio errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PageError represents an I/O failure on a page file
type PageError struct {
	ApplicationError
	path string
}

// NewPageError creates a new page I/O error
func NewPageError(msg string, path string, err error) *PageError {
	return &PageError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: PageIO,
		},
		path: path,
	}
}

// Error returns the page error message
func (e *PageError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the page file path associated with the error
func (e *PageError) Path() string {
	return e.path
}

// ParseError represents a non-numeric page id token
type ParseError struct {
	ApplicationError
	token string
}

// NewParseError creates a new page-id parse error
func NewParseError(msg string, token string, err error) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ParsePageID,
		},
		token: token,
	}
}

// Error returns the parse error message
func (e *ParseError) Error() string {
	if e.token != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.token, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.token)
	}
	return e.ApplicationError.Error()
}

// Token returns the offending page id token
func (e *ParseError) Token() string {
	return e.token
}

// PatternError represents a search pattern that failed to compile
type PatternError struct {
	ApplicationError
	pattern string
}

// NewPatternError creates a new pattern-compile error
func NewPatternError(msg string, pattern string, err error) *PatternError {
	return &PatternError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: BadPattern,
		},
		pattern: pattern,
	}
}

// Error returns the pattern error message
func (e *PatternError) Error() string {
	if e.pattern != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.pattern, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.pattern)
	}
	return e.ApplicationError.Error()
}

// Pattern returns the pattern associated with the error
func (e *PatternError) Pattern() string {
	return e.pattern
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsPageIO checks if the error is a page I/O error
func IsPageIO(err error) bool {
	var pageErr *PageError
	return errors.As(err, &pageErr)
}

// IsParse checks if the error is a page-id parse error
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsBadPattern checks if the error is a pattern-compile error
func IsBadPattern(err error) bool {
	var patErr *PatternError
	return errors.As(err, &patErr)
}
