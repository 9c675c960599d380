// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import "fmt"

// Error is the single error type reported by the parser and the writer.
// It carries a human-readable message, an optional wrapped cause, and,
// when the failure occurred while position tracking was active, the
// line and column at which it occurred. There are no subclasses:
// callers discriminate failures, if they need to, by inspecting
// Message.
type Error struct {
	Message string
	At      LineCol // zero value if no location is available
	hasAt   bool
	cause   error
}

func (e *Error) Error() string {
	if e.hasAt {
		return fmt.Sprintf("%s (at %s)", e.Message, e.At)
	}
	return e.Message
}

// Unwrap supports errors.Is / errors.As against the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.cause }

func newError(msg string) *Error { return &Error{Message: msg} }

func newErrorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func wrapError(cause error, msg string) *Error {
	return &Error{Message: msg, cause: cause}
}

func (e *Error) withLocation(at LineCol) *Error {
	e.At, e.hasAt = at, true
	return e
}

// parseError is the internal panic payload used to unwind out of the
// tokenizer and structural state machine without threading an error
// return through every helper call. recoverError converts it back into
// a normal error return at the exported Parser API boundary (Receive and
// Close).
type parseError struct{ err *Error }

func throwf(format string, args ...any) {
	panic(parseError{newErrorf(format, args...)})
}

func throwErr(err *Error) {
	panic(parseError{err})
}

// throwIfErr panics with err wrapped as a parseError, if err is non-nil.
// Used where a helper returns the generic error interface (e.g. Number
// parsing) rather than *Error directly.
func throwIfErr(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(*Error); ok {
		panic(parseError{e})
	}
	panic(parseError{wrapError(err, err.Error())})
}

// handlerError wraps an error returned by a caller-supplied Handler method,
// so recoverError can distinguish "the handler rejected this event" (pass
// the error straight through, not a *Error) from a syntax failure.
type handlerError struct{ error }

func checkHandlerErr(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

// recoverError recovers a panic raised by throwf/throwErr/checkHandlerErr
// and stores it through errp. Any other panic value propagates unchanged.
func recoverError(errp *error) {
	if r := recover(); r != nil {
		switch v := r.(type) {
		case parseError:
			*errp = v.err
		case handlerError:
			*errp = v.error
		default:
			panic(r)
		}
	}
}
