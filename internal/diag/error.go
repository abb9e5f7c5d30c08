package diag

import (
	"fmt"

	"rpl/internal/source"
)

// Error is the value written into a Context when an operation fails.
// Operations never panic or unwind via Go's exception mechanism for
// expected failures (spec §7): they return an *Error (or ok=false) and the
// caller propagates by checking it.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Source  source.Span
	Command string // name of the command that raised the error, if any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Command != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Command)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an Error with no source position attached.
func New(kind Kind, code Code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// At attaches a source position to a copy of the error.
func (e *Error) At(span source.Span) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Source = span
	return &clone
}

// In attaches the name of the failing command to a copy of the error.
func (e *Error) In(command string) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Command = command
	return &clone
}

// Convenience constructors for the error kinds spec §7 enumerates.

func SyntaxError(code Code, format string, args ...any) *Error {
	return New(Syntax, code, format, args...)
}

func TypeError(code Code, format string, args ...any) *Error {
	return New(Type, code, format, args...)
}

func ArithmeticError(code Code, format string, args ...any) *Error {
	return New(Arithmetic, code, format, args...)
}

func ResourceError(code Code, format string, args ...any) *Error {
	return New(Resource, code, format, args...)
}

func IOError(code Code, format string, args ...any) *Error {
	return New(IO, code, format, args...)
}

// Interrupted is the sentinel error a poll point returns once the
// interrupt flag has been observed set.
var Interrupted = New(Cancellation, CancellationInterrupted, "interrupted")
