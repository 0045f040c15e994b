package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op names the operation that failed, e.g. "list.add" or "buffer.read_line".
// Packages define their own Op constants next to the code that uses them.
type Op string

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument" // caller passed an out-of-domain value
	KindOutOfMemory     Kind = "out_of_memory"    // allocator refused the request
	KindEndOfFile       Kind = "end_of_file"      // input exhausted before any data
	KindReadFailed      Kind = "read_failed"      // reading from a source failed
	KindWriteFailed     Kind = "write_failed"     // writing to a sink failed
	KindUnsupported     Kind = "unsupported"      // operation or type not supported
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kinds must match; the target
// Op is compared only when set, so a target of &Error{Kind: KindOutOfMemory}
// matches that kind from any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && e.Op != t.Op {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error with the offending value
func InvalidArgument(op Op, value any, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidArgument,
		Detail: detail,
		Value:  value,
	}
}

// OutOfRange creates an invalid argument error for an index check
func OutOfRange(op Op, index, count int64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf("index %d out of range (count %d)", index, count),
		Value:  index,
	}
}

// NegativeValue creates an invalid argument error for a negative size or count
func NegativeValue(op Op, what string, value int64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf("%s %d is negative", what, value),
		Value:  value,
	}
}

// AllocationFailed creates an out of memory error
func AllocationFailed(op Op, size int64, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Value:  size,
		Cause:  cause,
	}
}

// SizeOverflow creates an out of memory error for a size computation that
// exceeds the addressable range
func SizeOverflow(op Op, count, itemSize int64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("%d items of %d bytes overflow the addressable range", count, itemSize),
		Value:  count,
	}
}

// EndOfFile creates an end of file error
func EndOfFile(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEndOfFile,
		Detail: "no data before end of input",
	}
}

// ReadFailed creates a read failure error
func ReadFailed(op Op, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindReadFailed,
		Detail: "read from source failed",
		Cause:  cause,
	}
}

// WriteFailed creates a write failure error
func WriteFailed(op Op, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindWriteFailed,
		Detail: "write to sink failed",
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Kind predicates. Each reports whether err or any error in its chain is an
// *Error of the given kind.

func IsInvalidArgument(err error) bool { return isKind(err, KindInvalidArgument) }
func IsOutOfMemory(err error) bool     { return isKind(err, KindOutOfMemory) }
func IsEndOfFile(err error) bool       { return isKind(err, KindEndOfFile) }
func IsReadFailed(err error) bool      { return isKind(err, KindReadFailed) }
func IsWriteFailed(err error) bool     { return isKind(err, KindWriteFailed) }
func IsUnsupported(err error) bool     { return isKind(err, KindUnsupported) }

func isKind(err error, kind Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == kind {
			return true
		}
		err = e.Unwrap()
	}
	return false
}
