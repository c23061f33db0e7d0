package errors

import (
	"fmt"
	"strings"
)

// ErrInvalidSession is returned when the remote rejects the session and CSRF
// credentials. Nothing can be synced without a valid session.
var ErrInvalidSession = NewFriendlyError("The LeetCode session is invalid or has expired.\n" +
	"Copy fresh LEETCODE_SESSION and LEETCODE_CSRF_TOKEN values from your " +
	"browser cookies and try again.")

// MissingFieldError represents a missing required field.
type MissingFieldError struct {
	Field string
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", err.Field)
}

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// Transient is a remote failure that is expected to go away if the same
// request is retried: network errors, non-2xx replies and malformed bodies.
type Transient struct {
	Op  string
	Err error
}

func (err Transient) Error() string {
	return fmt.Sprintf("%s: %s", err.Op, err.Err)
}

func (err Transient) Unwrap() error {
	return err.Err
}

// IsTransient returns whether the root cause of `err` is a Transient failure.
func IsTransient(err error) bool {
	_, ok := RootCause(err).(Transient)
	return ok
}

// QueryError is a well-formed reply in which the remote reported that the
// query itself failed, for example because the requested problem doesn't
// exist. Sending the same query again gives the same answer, so it's never
// Transient.
type QueryError struct {
	Op       string
	Messages []string
}

func (err QueryError) Error() string {
	return fmt.Sprintf("%s: query failed: %s", err.Op, strings.Join(err.Messages, "; "))
}
