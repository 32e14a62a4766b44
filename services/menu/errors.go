package menu

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a menu failure for the transport layer.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalidInput"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "notFound"
	KindInternal     ErrorKind = "internal"
)

// MenuError is the only error type returned by MenuService.
type MenuError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *MenuError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *MenuError) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...any) error {
	return &MenuError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func conflict(msg string) error {
	return &MenuError{Kind: KindConflict, Message: msg}
}

func notFound(msg string) error {
	return &MenuError{Kind: KindNotFound, Message: msg}
}

func internal(msg string, err error) error {
	return &MenuError{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err; anything that is not a MenuError is internal.
func KindOf(err error) ErrorKind {
	var me *MenuError
	if errors.As(err, &me) {
		return me.Kind
	}
	return KindInternal
}

// MessageOf returns the human-readable message of err without the kind prefix.
func MessageOf(err error) string {
	var me *MenuError
	if errors.As(err, &me) {
		return me.Message
	}
	return err.Error()
}
