package errors

import (
	"fmt"
)

// withContext wraps an error with a short description of what was being
// attempted when it occurred. The chain renders as "ctx: ctx: cause".
type withContext struct {
	context string
	err     error
}

// WithContext annotates `err` with `context`. It returns nil if `err` is nil
// so that it can wrap return values directly.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return withContext{context: context, err: err}
}

func (err withContext) Error() string {
	return fmt.Sprintf("%s: %s", err.context, err.err)
}

func (err withContext) Unwrap() error {
	return err.err
}

// New creates an error with a formatted message.
func New(format string, a ...interface{}) error {
	return baseError{fmt.Sprintf(format, a...)}
}

type baseError struct {
	msg string
}

func (err baseError) Error() string {
	return err.msg
}

// FriendlyError is an error whose message is meant to be shown to the user
// as-is, without the chain of contexts that led to it.
type FriendlyError struct {
	msg string
}

// NewFriendlyError creates a FriendlyError with a formatted message.
func NewFriendlyError(format string, a ...interface{}) error {
	return FriendlyError{fmt.Sprintf(format, a...)}
}

func (err FriendlyError) Error() string {
	return err.msg
}

// FriendlyMessage returns the message to show the user.
func (err FriendlyError) FriendlyMessage() string {
	return err.msg
}

// Friendly is implemented by errors that carry a message meant for users.
type Friendly interface {
	FriendlyMessage() string
}

// RootCause unwraps all contexts added by WithContext.
func RootCause(err error) error {
	for {
		wrapped, ok := err.(withContext)
		if !ok {
			return err
		}
		err = wrapped.err
	}
}

// GetPrintableMessage returns the message that should be shown to the user
// for `err`. Friendly errors anywhere in the chain take precedence.
func GetPrintableMessage(err error) string {
	if friendly, ok := RootCause(err).(Friendly); ok {
		return friendly.FriendlyMessage()
	}
	return err.Error()
}
