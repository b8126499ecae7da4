package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of a domain error
type Kind string

const (
	// KindNotFound is returned when a referenced user/post/comment does not exist
	KindNotFound Kind = "not_found"
	// KindNotAuthorized is returned when the actor lacks permission for a mutation
	KindNotAuthorized Kind = "not_authorized"
	// KindDuplicateEmail is returned on a registration conflict
	KindDuplicateEmail Kind = "duplicate_email"
	// KindInvalidCredentials is returned on an authentication failure
	KindInvalidCredentials Kind = "invalid_credentials"
	// KindEmptyContent is returned when blank text is submitted where content is required
	KindEmptyContent Kind = "empty_content"
)

// Error is the base domain error type. Every failing operation returns one of
// these and leaves all stores unchanged.
type Error struct {
	Kind    Kind
	Message string
	Err     error // Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NotFound reports that the identified resource does not exist
func NotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// NotAuthorized reports that the actor may not perform the operation
func NotAuthorized(actorID, action string) *Error {
	return &Error{Kind: KindNotAuthorized, Message: fmt.Sprintf("user %s is not authorized to %s", actorID, action)}
}

// DuplicateEmail reports a registration conflict on an existing email
func DuplicateEmail(email string) *Error {
	return &Error{Kind: KindDuplicateEmail, Message: fmt.Sprintf("email already registered: %s", email)}
}

// InvalidCredentials reports an authentication failure without echoing the credentials
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
}

// EmptyContent reports blank text where content is required
func EmptyContent(field string) *Error {
	return &Error{Kind: KindEmptyContent, Message: fmt.Sprintf("%s must not be empty", field)}
}

// IsKind checks whether err (or anything it wraps) is a domain error of the given kind
func IsKind(err error, kind Kind) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or the empty string when err is not a domain error
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}
